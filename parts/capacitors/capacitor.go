package capacitors

import (
	"fmt"
	"strings"

	"github.com/xoviat/capcode/parts"
)

// Series identifies the product family a capacitor was decoded from. Each
// manufacturer package has its own series type; the manufacturer name tells
// them apart.
type Series interface {
	Manufacturer() string
	String() string
}

// Capacitor is a fully decoded part number. Decoders only build one when
// every field decoded, and it is passed around by value.
type Capacitor struct {
	PartNumber  string
	Series      Series
	Size        parts.EIAInchCode
	MaxHeight   parts.Height
	Dielectric  parts.Dielectric
	Voltage     parts.RatedVoltage
	Capacitance parts.Capacitance
	Tolerance   parts.Tolerance
	// packaging and environmental suffix, not decoded
	Other string
}

func (c Capacitor) Manufacturer() string {
	if c.Series == nil {
		return ""
	}
	return c.Series.Manufacturer()
}

// Verbose renders the record for people:
//
//	CAP 220nF±20% 10V X5R 0201(0603 Metric) Height=0.3mm
func (c Capacitor) Verbose() string {
	metric := []string{}
	for _, m := range c.Size.IECCandidates() {
		metric = append(metric, m.String())
	}

	return fmt.Sprintf("CAP %s%s %s %s %s(%s Metric) Height=%s",
		c.Capacitance.Format(parts.Verbose),
		c.Tolerance.Format(parts.Verbose),
		c.Voltage.Format(parts.Verbose),
		c.Dielectric.Format(parts.Verbose),
		c.Size,
		strings.Join(metric, "/"),
		c.MaxHeight.Format(parts.Verbose),
	)
}

// Compact renders the normalized code:
//
//	C0201_220NC10VX5R
func (c Capacitor) Compact() string {
	return fmt.Sprintf("C%s_%s%s%s%s",
		c.Size,
		c.Capacitance.Format(parts.Compact),
		c.Tolerance.Format(parts.Compact),
		c.Voltage.Format(parts.Compact),
		c.Dielectric.Format(parts.Compact),
	)
}

func (c Capacitor) Format(style parts.Style) string {
	if style == parts.Compact {
		return c.Compact()
	}
	return c.Verbose()
}

func (c Capacitor) String() string { return c.Verbose() }
