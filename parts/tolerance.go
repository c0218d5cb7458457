package parts

import "fmt"

// ToleranceBand names the standard tolerance bands.
type ToleranceBand uint8

const (
	PM05 ToleranceBand = iota // ±0.5%
	PM1                       // ±1%
	PM2                       // ±2%
	P5                        // +5%
	M5                        // -5%
	PM5                       // ±5%
	PM10                      // ±10%
	PM20                      // ±20%
	PM0pF1                    // ±0.1pF
	PM0pF25                   // ±0.25pF
	PM0pF5                    // ±0.5pF
	PM1pF                     // ±1pF
	bandCount

	percentBand
	attoFaradBand
)

var bandTable = [bandCount]struct {
	text  string
	class ToleranceClass
}{
	PM05:    {"±0.5%", UltraPrecise},
	PM1:     {"±1%", Precise},
	PM2:     {"±2%", Precise},
	P5:      {"+5%", Precise},
	M5:      {"-5%", Precise},
	PM5:     {"±5%", Precise},
	PM10:    {"±10%", Standard},
	PM20:    {"±20%", Coarse},
	PM0pF1:  {"±0.1pF", UltraPrecise},
	PM0pF25: {"±0.25pF", Precise},
	PM0pF5:  {"±0.5pF", Standard},
	PM1pF:   {"±1pF", Coarse},
}

func AllToleranceBands() []ToleranceBand {
	all := make([]ToleranceBand, 0, bandCount)
	for b := ToleranceBand(0); b < bandCount; b++ {
		all = append(all, b)
	}
	return all
}

// ToleranceClass is the one-letter precision grade used in compact codes.
type ToleranceClass uint8

const (
	UltraPrecise ToleranceClass = iota
	Precise
	Standard
	Coarse
)

func (c ToleranceClass) String() string {
	switch c {
	case UltraPrecise:
		return "U"
	case Precise:
		return "P"
	case Standard:
		return "S"
	case Coarse:
		return "C"
	}
	return fmt.Sprintf("ToleranceClass(%d)", uint8(c))
}

func ParseToleranceClass(s string) (ToleranceClass, bool) {
	switch s {
	case "U":
		return UltraPrecise, true
	case "P":
		return Precise, true
	case "S":
		return Standard, true
	case "C":
		return Coarse, true
	}
	return 0, false
}

// Tolerance is a named band, or a custom band given as minus and plus
// either in percent or at atto-farad precision.
type Tolerance struct {
	band ToleranceBand

	percentMinus, percentPlus uint8
	attoMinus, attoPlus       uint64
}

func NamedTolerance(b ToleranceBand) Tolerance {
	return Tolerance{band: b}
}

func PercentTolerance(minus, plus uint8) Tolerance {
	return Tolerance{band: percentBand, percentMinus: minus, percentPlus: plus}
}

func AttoFaradTolerance(minus, plus uint64) Tolerance {
	return Tolerance{band: attoFaradBand, attoMinus: minus, attoPlus: plus}
}

// Band returns the named band, if t is one.
func (t Tolerance) Band() (ToleranceBand, bool) {
	return t.band, t.band < bandCount
}

// Percent returns the custom percentage band, if t is one.
func (t Tolerance) Percent() (minus, plus uint8, ok bool) {
	return t.percentMinus, t.percentPlus, t.band == percentBand
}

// AttoFarads returns the custom absolute band, if t is one.
func (t Tolerance) AttoFarads() (minus, plus uint64, ok bool) {
	return t.attoMinus, t.attoPlus, t.band == attoFaradBand
}

func (t Tolerance) Class() ToleranceClass {
	switch t.band {
	case percentBand:
		switch widest := max(t.percentMinus, t.percentPlus); {
		case widest < 1:
			return UltraPrecise
		case widest <= 5:
			return Precise
		case widest <= 10:
			return Standard
		}
		return Coarse
	case attoFaradBand:
		switch widest := max(t.attoMinus, t.attoPlus); {
		case widest <= 100:
			return UltraPrecise
		case widest <= 250:
			return Precise
		case widest <= 500:
			return Standard
		}
		return Coarse
	}
	return bandTable[t.band].class
}

func (t Tolerance) Format(style Style) string {
	if style == Compact {
		return t.Class().String()
	}

	switch t.band {
	case percentBand:
		if t.percentMinus == t.percentPlus {
			return fmt.Sprintf("±%d%%", t.percentPlus)
		}
		return fmt.Sprintf("-%d+%d%%", t.percentMinus, t.percentPlus)
	case attoFaradBand:
		if t.attoMinus == t.attoPlus {
			return "±" + attoText(t.attoPlus)
		}
		return "-" + attoText(t.attoMinus) + "+" + attoText(t.attoPlus)
	}
	return bandTable[t.band].text
}

func (t Tolerance) String() string { return t.Format(Verbose) }

// attoText renders an atto-farad precision count on the capacitance scale.
func attoText(x uint64) string {
	if x%1000 == 0 {
		return fmt.Sprintf("%dpF", x/1000)
	}
	return fmt.Sprintf("%d.%spF", x/1000, fraction(x%1000))
}
