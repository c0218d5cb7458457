package parts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEIATablesAreTotal(t *testing.T) {
	require.Len(t, AllEIAInchCodes(), 36)
	require.Len(t, AllIECMetricCodes(), 38)

	for _, c := range AllEIAInchCodes() {
		assert.NotEmpty(t, eiaTable[c].name, "EIA code %d has no name", c)
		assert.True(t, c.IEC().Valid(), "EIA %s maps outside the metric table", c)
	}
	for _, c := range AllIECMetricCodes() {
		assert.NotEmpty(t, iecTable[c].name, "IEC code %d has no name", c)
		assert.True(t, c.EIA().Valid(), "IEC %s maps outside the inch table", c)
	}
}

func TestIECRoundTrip(t *testing.T) {
	for _, e := range AllEIAInchCodes() {
		assert.Equal(t, e.IEC(), e.IEC().EIA().IEC(), "EIA %s", e)
		assert.Equal(t, e, e.IEC().EIA(), "EIA %s", e)
	}

	// every metric code lands on an inch code whose candidates include it
	for _, m := range AllIECMetricCodes() {
		assert.Contains(t, m.EIA().IECCandidates(), m, "IEC %s", m)
	}
}

func TestAmbiguousSizes(t *testing.T) {
	var ambiguous []EIAInchCode
	for _, e := range AllEIAInchCodes() {
		if e.Ambiguous() {
			ambiguous = append(ambiguous, e)
		}
	}
	assert.Equal(t, []EIAInchCode{EIA2225, EIA2512}, ambiguous)

	assert.Equal(t, []IECMetricCode{IEC5764, IEC5664}, EIA2225.IECCandidates())
	assert.Equal(t, []IECMetricCode{IEC6332, IEC6432}, EIA2512.IECCandidates())
	assert.Equal(t, []IECMetricCode{IEC1608}, EIA0603.IECCandidates())

	for _, m := range []IECMetricCode{IEC5664, IEC5764, IEC6332, IEC6432} {
		assert.True(t, m.Shared(), "IEC %s", m)
	}
	assert.False(t, IEC1608.Shared())
	assert.Equal(t, EIA2225, IEC5664.EIA())
	assert.Equal(t, EIA2225, IEC5764.EIA())
	assert.Equal(t, EIA2512, IEC6332.EIA())
	assert.Equal(t, EIA2512, IEC6432.EIA())
}

func TestInvalidSizeCodes(t *testing.T) {
	bad := EIAInchCode(eiaCount)
	assert.False(t, bad.Valid())
	assert.NotPanics(t, func() {
		assert.False(t, bad.IEC().Valid())
		assert.Empty(t, bad.IECCandidates())
		assert.False(t, bad.Ambiguous())
		assert.Equal(t, "EIAInchCode(36)", bad.String())
	})

	badMetric := IECMetricCode(255)
	assert.False(t, badMetric.Valid())
	assert.NotPanics(t, func() {
		assert.False(t, badMetric.EIA().Valid())
		assert.False(t, badMetric.Shared())
		assert.Equal(t, "IECMetricCode(255)", badMetric.String())
	})
}

func TestSizeNames(t *testing.T) {
	assert.Equal(t, "0201", EIA0201.String())
	assert.Equal(t, "0201 Inch", EIA0201.Long())
	assert.Equal(t, "0603 Metric", IEC0603.Long())
	assert.Equal(t, "008004", EIA008004.String())
	assert.Equal(t, "203153", IEC203153.String())
	assert.Equal(t, "EIAInchCode(200)", EIAInchCode(200).String())

	for _, e := range AllEIAInchCodes() {
		back, ok := ParseEIAInchCode(e.String())
		require.True(t, ok, e.String())
		assert.Equal(t, e, back)
	}
	for _, m := range AllIECMetricCodes() {
		back, ok := ParseIECMetricCode(m.String())
		require.True(t, ok, m.String())
		assert.Equal(t, m, back)
	}

	_, ok := ParseEIAInchCode("9999")
	assert.False(t, ok)
}

type testDims uint8

func (d testDims) String() string { return fmt.Sprintf("T%d", uint8(d)) }

type testSizes struct{}

func (testSizes) ToEIA(d testDims) EIAInchCode {
	if d == 1 {
		return EIA0402
	}
	return EIA0603
}

func (testSizes) ToMFCode(size EIAInchCode) (testDims, bool) {
	switch size {
	case EIA0402:
		return 1, true
	case EIA0603:
		return 2, true
	}
	return 0, false
}

func TestSizeCodeHelpers(t *testing.T) {
	var sc SizeCode[testDims] = testSizes{}

	code, ok := VendorCode(sc, EIA0402)
	assert.True(t, ok)
	assert.Equal(t, "T1", code)

	_, ok = VendorCode(sc, EIA1206)
	assert.False(t, ok)

	assert.True(t, RoundTrips(sc, testDims(1)))
	assert.True(t, RoundTrips(sc, testDims(2)))
	// 3 lands on 0603, which belongs to 2
	assert.False(t, RoundTrips(sc, testDims(3)))
}
