// Package samsung holds the Samsung Electro-Mechanics series and dimension
// tables. There is no part-number grammar yet, so nothing is registered
// with the dispatcher.
package samsung

import (
	"fmt"

	"github.com/xoviat/capcode/parts"
)

const Manufacturer = "Samsung"

type Series uint8

const (
	CL Series = iota
	seriesCount
)

func AllSeries() []Series {
	return []Series{CL}
}

func ParseSeries(prefix string) (Series, bool) {
	if prefix == "CL" {
		return CL, true
	}
	return 0, false
}

func (Series) Manufacturer() string { return Manufacturer }

func (s Series) String() string {
	if s >= seriesCount {
		return fmt.Sprintf("Series(%d)", uint8(s))
	}
	return "CL"
}

type Dimensions uint8

const (
	D02 Dimensions = iota
	D03
	D05
	D10
	D21
	D31
	D32
	D42
	D43
	D55
	dimensionsCount
)

var dimensionsTable = [dimensionsCount]struct {
	code string
	size parts.EIAInchCode
}{
	D02: {"02", parts.EIA01005},
	D03: {"03", parts.EIA0201},
	D05: {"05", parts.EIA0402},
	D10: {"10", parts.EIA0603},
	D21: {"21", parts.EIA0805},
	D31: {"31", parts.EIA1206},
	D32: {"32", parts.EIA1210},
	D42: {"42", parts.EIA1808},
	D43: {"43", parts.EIA1812},
	D55: {"55", parts.EIA2220},
}

func AllDimensions() []Dimensions {
	all := make([]Dimensions, 0, dimensionsCount)
	for d := Dimensions(0); d < dimensionsCount; d++ {
		all = append(all, d)
	}
	return all
}

func ParseDimensions(code string) (Dimensions, bool) {
	for d := Dimensions(0); d < dimensionsCount; d++ {
		if dimensionsTable[d].code == code {
			return d, true
		}
	}
	return 0, false
}

func (d Dimensions) String() string {
	if d >= dimensionsCount {
		return fmt.Sprintf("Dimensions(%d)", uint8(d))
	}
	return dimensionsTable[d].code
}

type sizes struct{}

var Sizes parts.SizeCode[Dimensions] = sizes{}

func (sizes) ToEIA(code Dimensions) parts.EIAInchCode {
	return dimensionsTable[code].size
}

func (sizes) ToMFCode(size parts.EIAInchCode) (Dimensions, bool) {
	for d := Dimensions(0); d < dimensionsCount; d++ {
		if dimensionsTable[d].size == size {
			return d, true
		}
	}
	return 0, false
}
