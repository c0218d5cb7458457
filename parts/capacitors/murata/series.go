package murata

import (
	"fmt"

	"github.com/xoviat/capcode/parts"
)

type Series uint8

const (
	GA2 Series = iota
	GA3
	GJM
	GMA
	GMD
	GQM
	GR3
	GR4
	GRJ
	GRM
	KR3
	KRM
	LLA
	LLL
	LLM
	LLR
	seriesCount
)

var seriesNames = [seriesCount]string{
	GA2: "GA2",
	GA3: "GA3",
	GJM: "GJM",
	GMA: "GMA",
	GMD: "GMD",
	GQM: "GQM",
	GR3: "GR3",
	GR4: "GR4",
	GRJ: "GRJ",
	GRM: "GRM",
	KR3: "KR3",
	KRM: "KRM",
	LLA: "LLA",
	LLL: "LLL",
	LLM: "LLM",
	LLR: "LLR",
}

func AllSeries() []Series {
	all := make([]Series, 0, seriesCount)
	for s := Series(0); s < seriesCount; s++ {
		all = append(all, s)
	}
	return all
}

func ParseSeries(prefix string) (Series, bool) {
	for s := Series(0); s < seriesCount; s++ {
		if seriesNames[s] == prefix {
			return s, true
		}
	}
	return 0, false
}

func (Series) Manufacturer() string { return Manufacturer }

func (s Series) String() string {
	if s >= seriesCount {
		return fmt.Sprintf("Series(%d)", uint8(s))
	}
	return seriesNames[s]
}

// Dimensions is the two character length/width code.
type Dimensions uint8

const (
	D01 Dimensions = iota
	D02
	D0D
	D03
	D05
	D08
	D1U
	D15
	D18
	D21
	D22
	D31
	D32
	D42
	D43
	D52
	D55
	dimensionsCount
)

var dimensionsTable = [dimensionsCount]struct {
	code string
	size parts.EIAInchCode
}{
	D01: {"01", parts.EIA008004},
	D02: {"02", parts.EIA01005},
	D0D: {"0D", parts.EIA015015},
	D03: {"03", parts.EIA0201},
	D05: {"05", parts.EIA0202},
	D08: {"08", parts.EIA0303},
	D1U: {"1U", parts.EIA02404},
	D15: {"15", parts.EIA0402},
	D18: {"18", parts.EIA0603},
	D21: {"21", parts.EIA0805},
	D22: {"22", parts.EIA1111},
	D31: {"31", parts.EIA1206},
	D32: {"32", parts.EIA1210},
	D42: {"42", parts.EIA1808},
	D43: {"43", parts.EIA1812},
	D52: {"52", parts.EIA2211},
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

// Sizes maps Murata dimension codes to EIA inch codes and back.
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
