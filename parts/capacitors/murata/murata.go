// Package murata decodes Murata multilayer ceramic capacitor part numbers,
// for example GRM033R61A224ME90#:
//
//	GRM  03  3  R6  1A  224  M  E90#
//	|    |   |  |   |   |    |  `- packaging and options, kept verbatim
//	|    |   |  |   |   |    `---- tolerance
//	|    |   |  |   |   `--------- capacitance
//	|    |   |  |   `------------- rated voltage
//	|    |   |  `----------------- temperature characteristic
//	|    |   `-------------------- height
//	|    `------------------------ dimensions
//	`----------------------------- series
package murata

import (
	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors"
)

const Manufacturer = "Murata"

// field offsets; all fields up to and including the tolerance are required
const (
	seriesEnd     = 3
	dimensionsAt  = 3
	heightAt      = 5
	dielectricAt  = 6
	voltageAt     = 8
	capacitanceAt = 10
	toleranceAt   = 13
	minLength     = 14
)

func init() {
	capacitors.Register(Decoder{})
}

type Decoder struct{}

func (Decoder) Manufacturer() string { return Manufacturer }

func (Decoder) Decode(partNumber string) (capacitors.Capacitor, error) {
	return Decode(partNumber)
}

// Decode reads every field left to right and stops at the first one that
// does not decode.
func Decode(partNumber string) (capacitors.Capacitor, error) {
	fail := func(offset int, code string, err error) (capacitors.Capacitor, error) {
		return capacitors.Capacitor{}, capacitors.FieldError(Manufacturer, partNumber, offset, code, err)
	}

	if len(partNumber) < seriesEnd {
		return fail(0, "", capacitors.UnknownSeries)
	}
	series, ok := ParseSeries(partNumber[:seriesEnd])
	if !ok {
		return fail(0, partNumber[:seriesEnd], capacitors.UnknownSeries)
	}

	if len(partNumber) < minLength {
		return fail(0, "", capacitors.InsufficientData)
	}

	code := partNumber[dimensionsAt:heightAt]
	dimensions, ok := ParseDimensions(code)
	if !ok {
		return fail(dimensionsAt, code, capacitors.WrongDimensionCode)
	}

	code = partNumber[heightAt:dielectricAt]
	height, err := ParseHeight(partNumber[heightAt])
	if err != nil {
		return fail(heightAt, code, err)
	}

	code = partNumber[dielectricAt:voltageAt]
	dielectric, err := ParseDielectric(code)
	if err != nil {
		return fail(dielectricAt, code, err)
	}

	code = partNumber[voltageAt:capacitanceAt]
	voltage, err := ParseVoltage(code)
	if err != nil {
		return fail(voltageAt, code, err)
	}

	code = partNumber[capacitanceAt:toleranceAt]
	capacitance, err := ParseCapacitance(code)
	if err != nil {
		return fail(capacitanceAt, code, err)
	}

	code = partNumber[toleranceAt:minLength]
	tolerance, err := ParseTolerance(capacitance, partNumber[toleranceAt])
	if err != nil {
		return fail(toleranceAt, code, err)
	}

	return capacitors.Capacitor{
		PartNumber:  partNumber,
		Series:      series,
		Size:        Sizes.ToEIA(dimensions),
		MaxHeight:   height,
		Dielectric:  dielectric,
		Voltage:     voltage,
		Capacitance: capacitance,
		Tolerance:   tolerance,
		Other:       partNumber[minLength:],
	}, nil
}

func ParseHeight(code byte) (parts.Height, error) {
	switch code {
	case '1':
		return parts.NewHeight(0, 125), nil
	case '2':
		return parts.NewHeight(0, 2), nil
	case '3':
		return parts.NewHeight(0, 3), nil
	case '4':
		return parts.NewHeight(0, 4), nil
	case '5':
		return parts.NewHeight(0, 5), nil
	case '6':
		return parts.NewHeight(0, 6), nil
	case '7':
		return parts.NewHeight(0, 7), nil
	case '8':
		return parts.NewHeight(0, 8), nil
	case '9':
		return parts.NewHeight(0, 85), nil
	case 'A':
		return parts.NewHeight(1, 0), nil
	case 'B':
		return parts.NewHeight(1, 25), nil
	case 'C':
		return parts.NewHeight(1, 6), nil
	case 'D':
		return parts.NewHeight(2, 0), nil
	case 'E':
		return parts.NewHeight(2, 5), nil
	case 'M':
		return parts.NewHeight(1, 15), nil
	case 'Q':
		return parts.NewHeight(1, 5), nil
	case 'X':
		// height depends on the individual part
		return parts.NewHeight(0, 0), nil
	}
	return parts.Height{}, capacitors.WrongHeightCode
}

var dielectricCodes = map[string]parts.Dielectric{
	"5C": parts.C0G,
	"R7": parts.X7R,
	"R6": parts.X5R,
	"C8": parts.X6S,
	"1X": parts.SL,
	"2C": parts.CH,
	"3C": parts.CJ,
	"3U": parts.UJ,
	"4C": parts.CK,
	"5G": parts.X8G,
	"7U": parts.U2J,
	"B1": parts.B,
	"B3": parts.B,
	"C7": parts.X7S,
	"D7": parts.X7T,
	"D8": parts.X6T,
	"E7": parts.X7U,
	"R1": parts.R,
}

func ParseDielectric(code string) (parts.Dielectric, error) {
	if d, ok := dielectricCodes[code]; ok {
		return d, nil
	}
	return 0, capacitors.WrongDielectricCode
}

var voltageCodes = map[string]parts.RatedVoltage{
	"0E": parts.StandardVoltage(parts.DC2V5),
	"0G": parts.StandardVoltage(parts.DC4V),
	"0J": parts.StandardVoltage(parts.DC6V3),
	"1A": parts.StandardVoltage(parts.DC10V),
	"1C": parts.StandardVoltage(parts.DC16V),
	"1E": parts.StandardVoltage(parts.DC25V),
	"1H": parts.StandardVoltage(parts.DC50V),
	"1J": parts.StandardVoltage(parts.DC63V),
	"2A": parts.StandardVoltage(parts.DC100V),
	"2D": parts.StandardVoltage(parts.DC200V),
	"2E": parts.StandardVoltage(parts.DC250V),
	"2W": parts.StandardVoltage(parts.DC450V),
	"2H": parts.StandardVoltage(parts.DC500V),
	"2J": parts.StandardVoltage(parts.DC630V),
	"3A": parts.StandardVoltage(parts.DC1kV),
	"3D": parts.StandardVoltage(parts.DC2kV),
	"3F": parts.CustomDC(3150),
	"E2": parts.StandardVoltage(parts.AC250V),
	"GB": parts.StandardVoltage(parts.AC250V),
	"GD": parts.StandardVoltage(parts.AC250V),
	"GF": parts.StandardVoltage(parts.AC250V),
	"YA": parts.StandardVoltage(parts.DC35V),
}

func ParseVoltage(code string) (parts.RatedVoltage, error) {
	if v, ok := voltageCodes[code]; ok {
		return v, nil
	}
	return parts.RatedVoltage{}, capacitors.WrongVoltageCode
}

// ParseCapacitance reads a three character code. R marks the decimal point:
//
//	R33 -> 330 at atto-farad precision
//	3R3 -> 33 at atto-farad precision
//	33R -> invalid
//	224 -> 22 * 10^4 pF
func ParseCapacitance(code string) (parts.Capacitance, error) {
	if len(code) != 3 {
		return parts.Capacitance{}, capacitors.WrongCapacitanceCode
	}

	digit := func(i int) (uint64, bool) {
		if code[i] < '0' || code[i] > '9' {
			return 0, false
		}
		return uint64(code[i] - '0'), true
	}

	switch {
	case code[0] == 'R':
		d1, ok1 := digit(1)
		d2, ok2 := digit(2)
		if !ok1 || !ok2 {
			break
		}
		return parts.AttoFarads(uint32(d1*10+d2) * 10), nil

	case code[1] == 'R':
		d0, ok0 := digit(0)
		d2, ok2 := digit(2)
		if !ok0 || !ok2 {
			break
		}
		return parts.AttoFarads(uint32(d0*10 + d2)), nil

	case code[2] == 'R':
		// the decimal point cannot trail the significant digits

	default:
		d0, ok0 := digit(0)
		d1, ok1 := digit(1)
		exponent, ok2 := digit(2)
		if !ok0 || !ok1 || !ok2 {
			break
		}
		pf := d0*10 + d1
		for i := uint64(0); i < exponent; i++ {
			pf *= 10
		}
		return parts.PicoFarads(pf), nil
	}

	return parts.Capacitance{}, capacitors.WrongCapacitanceCode
}

// ParseTolerance needs the decoded capacitance: D is ±0.5pF below 10pF and
// ±0.5% from 10pF up.
func ParseTolerance(capacitance parts.Capacitance, code byte) (parts.Tolerance, error) {
	switch code {
	case 'W':
		return parts.AttoFaradTolerance(50, 50), nil
	case 'B':
		return parts.AttoFaradTolerance(100, 100), nil
	case 'C':
		return parts.AttoFaradTolerance(250, 250), nil
	case 'D':
		if capacitance.IsNonStandard() {
			break
		}
		if capacitance.Below10pF() {
			return parts.AttoFaradTolerance(500, 500), nil
		}
		return parts.NamedTolerance(parts.PM05), nil
	case 'F':
		return parts.NamedTolerance(parts.PM1), nil
	case 'G':
		return parts.NamedTolerance(parts.PM2), nil
	case 'J':
		return parts.NamedTolerance(parts.PM5), nil
	case 'K':
		return parts.NamedTolerance(parts.PM10), nil
	case 'M':
		return parts.NamedTolerance(parts.PM20), nil
	}
	return parts.Tolerance{}, capacitors.WrongToleranceCode
}
