package units

// Dimensions lists the physical dimensions a unit system can assign a
// unit to, base dimensions first, then derived dimensions with a
// specific name.
var Dimensions = []string{
	// Base dimensions
	"dimensionless",
	"length",
	"mass",
	"time",
	"current",
	"temperature",
	"luminosity",
	"luminous_flux",
	"substance",
	"angle",
	"information",
	// Derived dimensions with a specific name
	"force",
	"energy",
	"power",
	"pressure",
	"charge",
	"resistance",
	"conductance",
	"inductance",
	"magnetic_flux",
	"magnetic_field",
	"frequency",
	"luminance",
	"illuminance",
	"electric_potential",
	"capacitance",
	"activity",
}

// siDefaults maps every dimension to its SI unit. Used to fill the
// dimensions an operator leaves unconfigured.
var siDefaults = map[string]string{
	"dimensionless":      "dimensionless",
	"length":             "m",
	"mass":               "kg",
	"time":               "s",
	"current":            "A",
	"temperature":        "K",
	"luminosity":         "cd",
	"luminous_flux":      "lm",
	"substance":          "mol",
	"angle":              "rad",
	"information":        "bit",
	"force":              "N",
	"energy":             "J",
	"power":              "W",
	"pressure":           "Pa",
	"charge":             "C",
	"resistance":         "Ω",
	"conductance":        "S",
	"inductance":         "H",
	"magnetic_flux":      "Wb",
	"magnetic_field":     "T",
	"frequency":          "Hz",
	"luminance":          "nit",
	"illuminance":        "lx",
	"electric_potential": "V",
	"capacitance":        "F",
	"activity":           "kat",
}

// SIDefault returns the SI unit for a dimension.
func SIDefault(dimension string) (string, bool) {
	unit, ok := siDefaults[dimension]
	return unit, ok
}

// Unit is a single unit assignment within a unit system.
type Unit struct {
	// Definition is the unit definition. It can be a mathematical
	// expression combining several units, e.g. "(kg * m) / s^2". Only
	// units known to the unit registry may be used.
	Definition string `yaml:"definition"`

	// Locked marks the unit as fixed within the unit system it is
	// defined in, so the UI does not offer changing it.
	Locked bool `yaml:"locked,omitempty"`
}

// System maps dimensions to display units.
type System struct {
	// Label is a short, descriptive label for the unit system.
	Label string `yaml:"label"`

	// Units maps each dimension to a unit. Dimensions without an entry
	// receive their SI equivalent when the system is normalized.
	Units map[string]Unit `yaml:"units,omitempty"`
}

// Normalize validates the system against the default registry. See
// NormalizeWith.
func (s *System) Normalize() error {
	return s.NormalizeWith(DefaultRegistry())
}

// NormalizeWith rejects unsupported dimension names, fills every
// missing dimension with its SI default, and checks that all unit
// definitions resolve against the registry. It is called once at
// configuration-load time; a failure is fatal.
func (s *System) NormalizeWith(registry *Registry) error {
	for dimension := range s.Units {
		if _, ok := siDefaults[dimension]; !ok {
			return &UnsupportedValueError{What: "dimension", Value: dimension}
		}
	}

	if s.Units == nil {
		s.Units = make(map[string]Unit, len(Dimensions))
	}
	for _, dimension := range Dimensions {
		if _, ok := s.Units[dimension]; !ok {
			s.Units[dimension] = Unit{Definition: siDefaults[dimension]}
		}
	}

	for _, unit := range s.Units {
		if err := registry.Parse(unit.Definition); err != nil {
			return err
		}
	}
	return nil
}
