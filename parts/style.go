package parts

import (
	"fmt"
	"strings"
)

// Style selects one of the two renderings every value type supports:
// Verbose ("2.2uF", "±5%", "6.3V") or Compact ("2U2", "P", "6V3"), where a
// unit letter stands in for the decimal point.
type Style uint8

const (
	Verbose Style = iota
	Compact
)

func (s Style) String() string {
	switch s {
	case Verbose:
		return "verbose"
	case Compact:
		return "compact"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "verbose", "":
		return Verbose, nil
	case "compact", "infix":
		return Compact, nil
	}
	return 0, fmt.Errorf("unknown style %q", s)
}

// fraction renders the thousandths x (0-999) with at most two trailing
// zeros stripped, so 200 is "2", 470 is "47", 50 is "05" and 0 is "0"
func fraction(x uint64) string {
	digits := fmt.Sprintf("%03d", x%1000)
	for i := 0; i < 2 && strings.HasSuffix(digits, "0"); i++ {
		digits = digits[:len(digits)-1]
	}
	return digits
}

// thousandths is the inverse of fraction: "2" is 200, "05" is 50
func thousandths(digits string) (uint64, bool) {
	if len(digits) == 0 || len(digits) > 3 {
		return 0, false
	}
	var x uint64
	for i := 0; i < 3; i++ {
		x *= 10
		if i < len(digits) {
			d := digits[i]
			if d < '0' || d > '9' {
				return 0, false
			}
			x += uint64(d - '0')
		}
	}
	return x, true
}
