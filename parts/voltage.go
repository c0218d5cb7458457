package parts

import (
	"fmt"
	"strconv"
	"strings"
)

// Voltage is one of the standard rated voltages.
type Voltage uint8

const (
	DC2V5 Voltage = iota
	DC4V
	DC6V3
	DC10V
	DC16V
	DC25V
	DC35V
	DC50V
	DC63V
	DC100V
	DC200V
	DC250V
	DC450V
	DC500V
	DC630V
	DC1kV
	DC2kV
	DC3kV
	DC3kV15
	AC250V
	voltageCount
)

var voltageTable = [voltageCount]struct {
	whole, fraction uint32
	ac              bool
}{
	DC2V5:   {2, 5, false},
	DC4V:    {4, 0, false},
	DC6V3:   {6, 3, false},
	DC10V:   {10, 0, false},
	DC16V:   {16, 0, false},
	DC25V:   {25, 0, false},
	DC35V:   {35, 0, false},
	DC50V:   {50, 0, false},
	DC63V:   {63, 0, false},
	DC100V:  {100, 0, false},
	DC200V:  {200, 0, false},
	DC250V:  {250, 0, false},
	DC450V:  {450, 0, false},
	DC500V:  {500, 0, false},
	DC630V:  {630, 0, false},
	DC1kV:   {1000, 0, false},
	DC2kV:   {2000, 0, false},
	DC3kV:   {3000, 0, false},
	DC3kV15: {3150, 0, false},
	AC250V:  {250, 0, true},
}

func AllVoltages() []Voltage {
	all := make([]Voltage, 0, voltageCount)
	for v := Voltage(0); v < voltageCount; v++ {
		all = append(all, v)
	}
	return all
}

func (v Voltage) Valid() bool { return v < voltageCount }

// RatedVoltage is either a standard Voltage or a custom whole number of
// volts, AC or DC. The zero value is DC 2.5V.
type RatedVoltage struct {
	standard Voltage
	custom   bool
	volts    uint32
	ac       bool
}

func StandardVoltage(v Voltage) RatedVoltage {
	return RatedVoltage{standard: v}
}

func CustomDC(volts uint32) RatedVoltage {
	return RatedVoltage{custom: true, volts: volts}
}

func CustomAC(volts uint32) RatedVoltage {
	return RatedVoltage{custom: true, volts: volts, ac: true}
}

// Standard returns the standard rating, if r is one.
func (r RatedVoltage) Standard() (Voltage, bool) {
	return r.standard, !r.custom
}

func (r RatedVoltage) IsCustom() bool { return r.custom }

func (r RatedVoltage) AC() bool {
	if r.custom {
		return r.ac
	}
	return voltageTable[r.standard].ac
}

func (r RatedVoltage) parts() (whole, fraction uint32, ac bool) {
	if r.custom {
		return r.volts, 0, r.ac
	}
	row := voltageTable[r.standard]
	return row.whole, row.fraction, row.ac
}

func (r RatedVoltage) Format(style Style) string {
	whole, fraction, ac := r.parts()
	if fraction != 0 {
		if style == Compact {
			return fmt.Sprintf("%dV%d", whole, fraction)
		}
		return fmt.Sprintf("%d.%dV", whole, fraction)
	}
	if ac {
		return fmt.Sprintf("%dVAC", whole)
	}
	return fmt.Sprintf("%dV", whole)
}

func (r RatedVoltage) String() string { return r.Format(Verbose) }

// ParseRatedVoltage reads either rendering. Text matching a standard rating
// yields it; any other whole voltage is custom.
func ParseRatedVoltage(s string) (RatedVoltage, error) {
	for v := Voltage(0); v < voltageCount; v++ {
		r := StandardVoltage(v)
		if r.Format(Compact) == s || r.Format(Verbose) == s {
			return r, nil
		}
	}

	ac := strings.HasSuffix(s, "VAC")
	digits := strings.TrimSuffix(strings.TrimSuffix(s, "VAC"), "V")
	if digits == s {
		return RatedVoltage{}, fmt.Errorf("voltage %q has no unit", s)
	}
	volts, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return RatedVoltage{}, fmt.Errorf("voltage %q: %w", s, err)
	}
	if ac {
		return CustomAC(uint32(volts)), nil
	}
	return CustomDC(uint32(volts)), nil
}
