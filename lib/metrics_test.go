package lib

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoviat/capcode/parts/capacitors"
	"github.com/xoviat/capcode/parts/capacitors/murata"
)

func TestDecodeMetrics(t *testing.T) {
	m := NewDecodeMetrics()

	c, err := murata.Decode("GRM033R61A224ME90#")
	require.NoError(t, err)
	m.Observe(c, nil, time.Microsecond)

	_, err = murata.Decode("GRM03ZR61A224ME90#")
	m.Observe(capacitors.Capacitor{}, err, time.Microsecond)

	m.Observe(capacitors.Capacitor{}, &capacitors.DecodeError{Kind: capacitors.UnknownSeries, PartNumber: "X"}, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues("Murata", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues("Murata", "wrong_height_code")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues("unknown", "unknown_series")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.Decodes))

	path := filepath.Join(t.TempDir(), "capcode.prom")
	require.NoError(t, m.WriteTextfile(path))

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(text), "capcode_decodes_total")
	assert.Contains(t, string(text), "capcode_decode_duration_seconds_count 3")
}
