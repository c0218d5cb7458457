package parts

import (
	"fmt"
	"strconv"
)

type capacitanceKind uint8

const (
	picoFarads capacitanceKind = iota
	attoFarads
	nonStandard
)

// Capacitance is one of:
//
//   - an atto-farad precision count, used below 10pF
//   - a whole number of picofarads, used from 10pF up
//   - NonStandard, for values no code describes
//
// Keeping integer counts avoids fractional picofarads in floating point.
type Capacitance struct {
	kind  capacitanceKind
	value uint64
}

var NonStandard = Capacitance{kind: nonStandard}

func AttoFarads(count uint32) Capacitance {
	return Capacitance{kind: attoFarads, value: uint64(count)}
}

func PicoFarads(count uint64) Capacitance {
	return Capacitance{kind: picoFarads, value: count}
}

func (c Capacitance) AttoFarads() (uint32, bool) {
	return uint32(c.value), c.kind == attoFarads
}

func (c Capacitance) PicoFarads() (uint64, bool) {
	return c.value, c.kind == picoFarads
}

func (c Capacitance) IsNonStandard() bool { return c.kind == nonStandard }

// Below10pF is true for every atto-farad reading and for picofarad values
// under 10. A non-standard capacitance is neither.
func (c Capacitance) Below10pF() bool {
	switch c.kind {
	case attoFarads:
		return true
	case picoFarads:
		return c.value < 10
	}
	return false
}

func (c Capacitance) Format(style Style) string {
	p, n, u := "pF", "nF", "uF"
	infix := style == Compact
	if infix {
		p, n, u = "P", "N", "U"
	}

	switch c.kind {
	case attoFarads:
		if c.value < 1000 {
			if infix {
				return fmt.Sprintf("0P%d", c.value/100)
			}
			return fmt.Sprintf("0.%dpF", c.value/100)
		}
		if infix {
			return fmt.Sprintf("%dP%s", c.value/1000, fraction(c.value%1000))
		}
		return fmt.Sprintf("%d.%spF", c.value/1000, fraction(c.value%1000))

	case picoFarads:
		pf := c.value
		if pf < 1000 {
			return fmt.Sprintf("%d%s", pf, p)
		}

		unit, infixUnit := n, "N"
		if pf >= 1000000 {
			pf /= 1000
			unit, infixUnit = u, "U"
		}
		whole, frac := pf/1000, pf%1000
		if frac == 0 {
			return fmt.Sprintf("%d%s", whole, unit)
		}
		if infix {
			return fmt.Sprintf("%d%s%s", whole, infixUnit, fraction(frac))
		}
		return fmt.Sprintf("%d.%s%s", whole, fraction(frac), unit)
	}

	return "NonSTD"
}

func (c Capacitance) String() string { return c.Format(Verbose) }

// ParseCompactCapacitance reads the infix rendering ("2U2", "220N", "0P3").
// A P value with a fraction is read back at atto-farad precision.
func ParseCompactCapacitance(s string) (Capacitance, error) {
	if s == "NonSTD" {
		return NonStandard, nil
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return Capacitance{}, fmt.Errorf("capacitance %q is not an infix value", s)
	}
	whole, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return Capacitance{}, fmt.Errorf("capacitance %q: %w", s, err)
	}

	unit, digits := s[i], s[i+1:]
	var frac uint64
	if digits != "" {
		var ok bool
		if frac, ok = thousandths(digits); !ok {
			return Capacitance{}, fmt.Errorf("capacitance %q has a bad fraction", s)
		}
	}

	switch unit {
	case 'P':
		if digits == "" {
			return PicoFarads(whole), nil
		}
		return AttoFarads(uint32(whole*1000 + frac)), nil
	case 'N':
		return PicoFarads(whole*1000 + frac), nil
	case 'U':
		return PicoFarads((whole*1000 + frac) * 1000), nil
	}
	return Capacitance{}, fmt.Errorf("capacitance %q has unknown unit %q", s, unit)
}
