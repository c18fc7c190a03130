package units

import (
	"strings"
	"unicode"
)

// Registry holds the unit symbols that definitions may refer to.
// Symbols can be combined into expressions such as "(kg * m) / s^2";
// metric prefixes are resolved automatically, so "GPa" or "fs" do not
// need their own entries.
type Registry struct {
	symbols map[string]struct{}
}

// baseSymbols are the unit symbols registered by default. They cover
// the SI base and derived units, the common scientific units used in
// materials science, and the Hartree atomic units.
var baseSymbols = []string{
	// SI base units
	"m", "g", "s", "A", "K", "cd", "mol",
	// SI derived units
	"rad", "sr", "Hz", "N", "Pa", "J", "W", "C", "V", "F", "S",
	"Wb", "T", "H", "lm", "lx", "kat", "Ω",
	// aliases and non-SI units accepted by the platform
	"ohm", "nit", "bit", "byte", "bar", "L", "min", "h", "u",
	"eV", "Å", "angstrom", "degree", "°", "dimensionless",
	// Hartree atomic units
	"bohr", "m_e", "Ha", "atomic_unit_of_time", "atomic_unit_of_current",
	"atomic_unit_of_temperature", "atomic_unit_of_force",
	"atomic_unit_of_pressure",
}

// metricPrefixes in decreasing symbol length, so that "da" is tried
// before "d".
var metricPrefixes = []string{
	"da",
	"Y", "Z", "E", "P", "T", "G", "M", "k", "h",
	"d", "c", "m", "µ", "n", "p", "f", "a", "z", "y",
}

// NewRegistry creates a registry pre-populated with the default
// symbols.
func NewRegistry() *Registry {
	r := &Registry{symbols: make(map[string]struct{}, len(baseSymbols))}
	r.Register(baseSymbols...)
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared registry used by configuration
// validation.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds symbols to the registry.
func (r *Registry) Register(symbols ...string) {
	for _, symbol := range symbols {
		r.symbols[symbol] = struct{}{}
	}
}

// Resolve reports whether symbol names a known unit, either directly or
// as a metric-prefixed form of a known unit.
func (r *Registry) Resolve(symbol string) bool {
	if _, ok := r.symbols[symbol]; ok {
		return true
	}
	// Exact symbols win over prefixed readings, e.g. "T" is tesla, not
	// tera. Only then try to split off a metric prefix.
	for _, prefix := range metricPrefixes {
		rest, ok := strings.CutPrefix(symbol, prefix)
		if !ok || rest == "" {
			continue
		}
		if _, ok := r.symbols[rest]; ok {
			return true
		}
	}
	return false
}

// Parse checks that definition is a well-formed unit expression whose
// symbols all resolve against the registry. Definitions may combine
// units with "*", "/", exponents ("^" or "**") and parentheses, e.g.
// "(kg * m) / s^2". Returns an UnsupportedValueError otherwise.
func (r *Registry) Parse(definition string) error {
	tokens, err := lexUnits(definition)
	if err != nil {
		return err
	}
	p := &unitParser{registry: r, definition: definition, tokens: tokens}
	if err := p.parseExpr(); err != nil {
		return err
	}
	if p.pos != len(p.tokens) {
		return &UnsupportedValueError{What: "unit expression", Value: definition}
	}
	return nil
}

type unitToken struct {
	kind rune // 's' symbol, 'n' number, or the operator rune
	text string
}

// lexUnits splits a unit expression into tokens.
func lexUnits(definition string) ([]unitToken, error) {
	var tokens []unitToken
	runes := []rune(definition)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isSymbolRune(r):
			start := i
			for i < len(runes) && (isSymbolRune(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, unitToken{kind: 's', text: string(runes[start:i])})
		case unicode.IsDigit(r) || r == '-':
			start := i
			i++
			// A sign on its own is not a number.
			if r == '-' && (i >= len(runes) || !unicode.IsDigit(runes[i])) {
				return nil, &UnsupportedValueError{What: "unit expression", Value: definition}
			}
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, unitToken{kind: 'n', text: string(runes[start:i])})
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				tokens = append(tokens, unitToken{kind: '^', text: "**"})
				i += 2
			} else {
				tokens = append(tokens, unitToken{kind: '*', text: "*"})
				i++
			}
		case r == '/' || r == '^' || r == '(' || r == ')':
			tokens = append(tokens, unitToken{kind: r, text: string(r)})
			i++
		default:
			return nil, &UnsupportedValueError{What: "unit expression", Value: definition}
		}
	}

	if len(tokens) == 0 {
		return nil, &UnsupportedValueError{What: "unit expression", Value: definition}
	}
	return tokens, nil
}

// isSymbolRune reports whether r can start or continue a unit symbol.
// The degree sign is not a letter in Unicode but appears in definitions
// like "°".
func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '°'
}

type unitParser struct {
	registry   *Registry
	definition string
	tokens     []unitToken
	pos        int
}

func (p *unitParser) peek() (unitToken, bool) {
	if p.pos >= len(p.tokens) {
		return unitToken{}, false
	}
	return p.tokens[p.pos], true
}

// parseExpr parses term (('*' | '/') term)*.
func (p *unitParser) parseExpr() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.kind != '*' && tok.kind != '/') {
			return nil
		}
		p.pos++
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
}

// parseTerm parses factor (('^' | '**') number)?.
func (p *unitParser) parseTerm() error {
	if err := p.parseFactor(); err != nil {
		return err
	}
	if tok, ok := p.peek(); ok && tok.kind == '^' {
		p.pos++
		exp, ok := p.peek()
		if !ok || exp.kind != 'n' {
			return &UnsupportedValueError{What: "unit expression", Value: p.definition}
		}
		p.pos++
	}
	return nil
}

// parseFactor parses '(' expr ')', a unit symbol, or a numeric factor.
func (p *unitParser) parseFactor() error {
	tok, ok := p.peek()
	if !ok {
		return &UnsupportedValueError{What: "unit expression", Value: p.definition}
	}
	switch tok.kind {
	case '(':
		p.pos++
		if err := p.parseExpr(); err != nil {
			return err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != ')' {
			return &UnsupportedValueError{What: "unit expression", Value: p.definition}
		}
		p.pos++
		return nil
	case 's':
		if !p.registry.Resolve(tok.text) {
			return &UnsupportedValueError{What: "unit", Value: tok.text}
		}
		p.pos++
		return nil
	case 'n':
		p.pos++
		return nil
	default:
		return &UnsupportedValueError{What: "unit expression", Value: p.definition}
	}
}
