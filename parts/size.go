package parts

import "fmt"

// EIA inch package codes, in hundredths of an inch
type EIAInchCode uint8

const (
	EIA008004 EIAInchCode = iota
	EIA009005
	EIA01005
	EIA015015
	EIA0201
	EIA0202
	EIA02404
	EIA0302
	EIA0303
	EIA0402
	EIA0504
	EIA0603
	EIA0805
	EIA1008
	EIA1111
	EIA1206
	EIA1210
	EIA1410
	EIA1515
	EIA1806
	EIA1808
	EIA1812
	EIA1825
	EIA2010
	EIA2020
	EIA2211
	EIA2220
	EIA2225
	EIA2512
	EIA2520
	EIA2920
	EIA3333
	EIA3640
	EIA4040
	EIA5550
	EIA8060
	eiaCount
)

// IEC metric package codes, in tenths of a millimeter
type IECMetricCode uint8

const (
	IEC0201 IECMetricCode = iota
	IEC03015
	IEC0402
	IEC0404
	IEC0505
	IEC0603
	IEC0610
	IEC0805
	IEC0808
	IEC1005
	IEC1310
	IEC1608
	IEC2012
	IEC2520
	IEC2828
	IEC3216
	IEC3225
	IEC3625
	IEC3838
	IEC4516
	IEC4520
	IEC4532
	IEC4564
	IEC5025
	IEC5050
	IEC5664
	IEC5728
	IEC5750
	IEC5764
	IEC6332
	IEC6432
	IEC6450
	IEC7450
	IEC8484
	IEC9210
	IEC100100
	IEC140127
	IEC203153
	iecCount
)

// one row per EIA code: the name, the canonical metric code and, for the
// sizes where the standards disagree, the alternate metric code
var eiaTable = [eiaCount]struct {
	name      string
	metric    IECMetricCode
	alternate IECMetricCode
	ambiguous bool
}{
	EIA008004: {name: "008004", metric: IEC0201},
	EIA009005: {name: "009005", metric: IEC03015},
	EIA01005:  {name: "01005", metric: IEC0402},
	EIA015015: {name: "015015", metric: IEC0404},
	EIA0201:   {name: "0201", metric: IEC0603},
	EIA0202:   {name: "0202", metric: IEC0505},
	EIA02404:  {name: "02404", metric: IEC0610},
	EIA0302:   {name: "0302", metric: IEC0805},
	EIA0303:   {name: "0303", metric: IEC0808},
	EIA0402:   {name: "0402", metric: IEC1005},
	EIA0504:   {name: "0504", metric: IEC1310},
	EIA0603:   {name: "0603", metric: IEC1608},
	EIA0805:   {name: "0805", metric: IEC2012},
	EIA1008:   {name: "1008", metric: IEC2520},
	EIA1111:   {name: "1111", metric: IEC2828},
	EIA1206:   {name: "1206", metric: IEC3216},
	EIA1210:   {name: "1210", metric: IEC3225},
	EIA1410:   {name: "1410", metric: IEC3625},
	EIA1515:   {name: "1515", metric: IEC3838},
	EIA1806:   {name: "1806", metric: IEC4516},
	EIA1808:   {name: "1808", metric: IEC4520},
	EIA1812:   {name: "1812", metric: IEC4532},
	EIA1825:   {name: "1825", metric: IEC4564},
	EIA2010:   {name: "2010", metric: IEC5025},
	EIA2020:   {name: "2020", metric: IEC5050},
	EIA2211:   {name: "2211", metric: IEC5728},
	EIA2220:   {name: "2220", metric: IEC5750},
	EIA2225:   {name: "2225", metric: IEC5764, alternate: IEC5664, ambiguous: true},
	EIA2512:   {name: "2512", metric: IEC6332, alternate: IEC6432, ambiguous: true},
	EIA2520:   {name: "2520", metric: IEC6450},
	EIA2920:   {name: "2920", metric: IEC7450},
	EIA3333:   {name: "3333", metric: IEC8484},
	EIA3640:   {name: "3640", metric: IEC9210},
	EIA4040:   {name: "4040", metric: IEC100100},
	EIA5550:   {name: "5550", metric: IEC140127},
	EIA8060:   {name: "8060", metric: IEC203153},
}

var iecTable = [iecCount]struct {
	name string
	inch EIAInchCode
}{
	IEC0201:   {"0201", EIA008004},
	IEC03015:  {"03015", EIA009005},
	IEC0402:   {"0402", EIA01005},
	IEC0404:   {"0404", EIA015015},
	IEC0505:   {"0505", EIA0202},
	IEC0603:   {"0603", EIA0201},
	IEC0610:   {"0610", EIA02404},
	IEC0805:   {"0805", EIA0302},
	IEC0808:   {"0808", EIA0303},
	IEC1005:   {"1005", EIA0402},
	IEC1310:   {"1310", EIA0504},
	IEC1608:   {"1608", EIA0603},
	IEC2012:   {"2012", EIA0805},
	IEC2520:   {"2520", EIA1008},
	IEC2828:   {"2828", EIA1111},
	IEC3216:   {"3216", EIA1206},
	IEC3225:   {"3225", EIA1210},
	IEC3625:   {"3625", EIA1410},
	IEC3838:   {"3838", EIA1515},
	IEC4516:   {"4516", EIA1806},
	IEC4520:   {"4520", EIA1808},
	IEC4532:   {"4532", EIA1812},
	IEC4564:   {"4564", EIA1825},
	IEC5025:   {"5025", EIA2010},
	IEC5050:   {"5050", EIA2020},
	IEC5664:   {"5664", EIA2225},
	IEC5728:   {"5728", EIA2211},
	IEC5750:   {"5750", EIA2220},
	IEC5764:   {"5764", EIA2225},
	IEC6332:   {"6332", EIA2512},
	IEC6432:   {"6432", EIA2512},
	IEC6450:   {"6450", EIA2520},
	IEC7450:   {"7450", EIA2920},
	IEC8484:   {"8484", EIA3333},
	IEC9210:   {"9210", EIA3640},
	IEC100100: {"100100", EIA4040},
	IEC140127: {"140127", EIA5550},
	IEC203153: {"203153", EIA8060},
}

func AllEIAInchCodes() []EIAInchCode {
	codes := make([]EIAInchCode, 0, eiaCount)
	for c := EIAInchCode(0); c < eiaCount; c++ {
		codes = append(codes, c)
	}
	return codes
}

func AllIECMetricCodes() []IECMetricCode {
	codes := make([]IECMetricCode, 0, iecCount)
	for c := IECMetricCode(0); c < iecCount; c++ {
		codes = append(codes, c)
	}
	return codes
}

func (c EIAInchCode) Valid() bool { return c < eiaCount }

func (c EIAInchCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("EIAInchCode(%d)", uint8(c))
	}
	return eiaTable[c].name
}

func (c EIAInchCode) Long() string { return c.String() + " Inch" }

// IEC returns the canonical metric code. For 2225 and 2512 the industry uses
// two metric codes; see IECCandidates. An invalid code maps to an invalid
// metric code.
func (c EIAInchCode) IEC() IECMetricCode {
	if !c.Valid() {
		return iecCount
	}
	return eiaTable[c].metric
}

func (c EIAInchCode) Ambiguous() bool {
	return c.Valid() && eiaTable[c].ambiguous
}

// IECCandidates lists every metric code the size is sold under, canonical first.
// It is empty for an invalid code.
func (c EIAInchCode) IECCandidates() []IECMetricCode {
	if !c.Valid() {
		return nil
	}
	row := eiaTable[c]
	if row.ambiguous {
		return []IECMetricCode{row.metric, row.alternate}
	}
	return []IECMetricCode{row.metric}
}

func (c IECMetricCode) Valid() bool { return c < iecCount }

func (c IECMetricCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("IECMetricCode(%d)", uint8(c))
	}
	return iecTable[c].name
}

func (c IECMetricCode) Long() string { return c.String() + " Metric" }

// EIA returns the inch code, or an invalid inch code for an invalid c.
func (c IECMetricCode) EIA() EIAInchCode {
	if !c.Valid() {
		return eiaCount
	}
	return iecTable[c].inch
}

// Shared reports whether another metric code maps to the same inch code.
func (c IECMetricCode) Shared() bool {
	return c.Valid() && eiaTable[iecTable[c].inch].ambiguous
}

func ParseEIAInchCode(s string) (EIAInchCode, bool) {
	for c := EIAInchCode(0); c < eiaCount; c++ {
		if eiaTable[c].name == s {
			return c, true
		}
	}
	return 0, false
}

func ParseIECMetricCode(s string) (IECMetricCode, bool) {
	for c := IECMetricCode(0); c < iecCount; c++ {
		if iecTable[c].name == s {
			return c, true
		}
	}
	return 0, false
}

// SizeCode projects a manufacturer's dimension code onto the EIA inch code.
// ToEIA is total; ToMFCode is partial since no manufacturer makes every size.
type SizeCode[C any] interface {
	ToEIA(code C) EIAInchCode
	ToMFCode(size EIAInchCode) (C, bool)
}

// VendorCode renders the manufacturer code for an EIA size, if there is one.
func VendorCode[C fmt.Stringer](sc SizeCode[C], size EIAInchCode) (string, bool) {
	code, ok := sc.ToMFCode(size)
	if !ok {
		return "", false
	}
	return code.String(), true
}

// RoundTrips reports whether code survives a trip through the EIA code.
func RoundTrips[C comparable](sc SizeCode[C], code C) bool {
	back, ok := sc.ToMFCode(sc.ToEIA(code))
	return ok && back == code
}
