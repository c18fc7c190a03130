package units

import "github.com/spectra-lab/spectra/pkg/options"

// Builtin unit system names.
const (
	SystemCustom = "Custom"
	SystemSI     = "SI"
	SystemAU     = "AU"
)

// BuiltinSystems returns the unit systems shipped with the platform:
// a customizable default tuned for materials science, strict SI, and
// Hartree atomic units.
func BuiltinSystems() options.Single[System] {
	single := options.Single[System]{Selected: SystemCustom}
	single.Options.Set(SystemCustom, System{
		Label: "Custom",
		Units: map[string]Unit{
			"length":   {Definition: "Å"},
			"time":     {Definition: "fs"},
			"energy":   {Definition: "eV"},
			"pressure": {Definition: "GPa"},
			"angle":    {Definition: "°"},
		},
	})
	single.Options.Set(SystemSI, siSystem())
	single.Options.Set(SystemAU, auSystem())
	return single
}

// siSystem returns the SI unit system with every dimension locked.
func siSystem() System {
	units := make(map[string]Unit, len(Dimensions))
	for _, dimension := range Dimensions {
		units[dimension] = Unit{Definition: siDefaults[dimension], Locked: true}
	}
	return System{Label: "International System of Units (SI)", Units: units}
}

// auSystem returns the Hartree atomic unit system. Dimensions without
// an atomic unit stay at their SI default and remain unlocked.
func auSystem() System {
	return System{
		Label: "Hartree atomic units (AU)",
		Units: map[string]Unit{
			"dimensionless": {Definition: "dimensionless", Locked: true},
			"length":        {Definition: "bohr", Locked: true},
			"mass":          {Definition: "m_e", Locked: true},
			"time":          {Definition: "atomic_unit_of_time", Locked: true},
			"current":       {Definition: "atomic_unit_of_current", Locked: true},
			"temperature":   {Definition: "atomic_unit_of_temperature", Locked: true},
			"force":         {Definition: "atomic_unit_of_force", Locked: true},
			"energy":        {Definition: "Ha", Locked: true},
			"pressure":      {Definition: "atomic_unit_of_pressure", Locked: true},
		},
	}
}
