package samsung

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors"
)

func TestSeries(t *testing.T) {
	s, ok := ParseSeries("CL")
	require.True(t, ok)
	assert.Equal(t, CL, s)
	assert.Equal(t, "CL", s.String())
	assert.Equal(t, Manufacturer, s.Manufacturer())

	_, ok = ParseSeries("GRM")
	assert.False(t, ok)

	var _ capacitors.Series = CL
}

func TestSizes(t *testing.T) {
	require.Len(t, AllDimensions(), 10)
	for _, d := range AllDimensions() {
		back, ok := ParseDimensions(d.String())
		require.True(t, ok, d.String())
		assert.Equal(t, d, back)
		assert.True(t, parts.RoundTrips(Sizes, d), d.String())
	}

	assert.Equal(t, parts.EIA0603, Sizes.ToEIA(D10))

	code, ok := parts.VendorCode(Sizes, parts.EIA0402)
	require.True(t, ok)
	assert.Equal(t, "05", code)

	_, ok = Sizes.ToMFCode(parts.EIA008004)
	assert.False(t, ok)
}

func TestNotRegistered(t *testing.T) {
	for _, d := range capacitors.Decoders() {
		assert.NotEqual(t, Manufacturer, d.Manufacturer())
	}
}
