package parts

import "fmt"

// Height is a maximum mounted height in millimeters. Fraction holds the
// sub-millimeter digits as written, so Height{0, 125} is 0.125mm and
// Height{1, 25} is 1.25mm.
type Height struct {
	Whole    uint8
	Fraction uint8
}

func NewHeight(whole, fraction uint8) Height {
	return Height{Whole: whole, Fraction: fraction}
}

func (h Height) Format(style Style) string {
	if style == Compact {
		return fmt.Sprintf("%dM%d", h.Whole, h.Fraction)
	}
	if h.Fraction == 0 {
		return fmt.Sprintf("%dmm", h.Whole)
	}
	return fmt.Sprintf("%d.%dmm", h.Whole, h.Fraction)
}

func (h Height) String() string { return h.Format(Verbose) }
