package lib

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/xoviat/capcode/parts/capacitors"
)

// DecodeMetrics counts batch decodes on a private registry, so a run can
// dump exactly its own numbers to a node_exporter textfile.
type DecodeMetrics struct {
	registry *prometheus.Registry

	Decodes  *prometheus.CounterVec
	Duration prometheus.Histogram
}

func NewDecodeMetrics() *DecodeMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &DecodeMetrics{
		registry: registry,
		Decodes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capcode_decodes_total",
				Help: "Part numbers decoded, by manufacturer and outcome",
			},
			[]string{"manufacturer", "outcome"},
		),
		Duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "capcode_decode_duration_seconds",
				Help:    "Time taken to decode one part number",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
		),
	}
}

func (m *DecodeMetrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one decode. Failures are labelled with the error kind,
// e.g. "wrong_voltage_code".
func (m *DecodeMetrics) Observe(capacitor capacitors.Capacitor, err error, elapsed time.Duration) {
	manufacturer, outcome := capacitor.Manufacturer(), "ok"
	if err != nil {
		outcome = "error"
		if kind, ok := capacitors.KindOf(err); ok {
			outcome = strings.ReplaceAll(kind.String(), " ", "_")
		}

		manufacturer = ""
		var derr *capacitors.DecodeError
		if errors.As(err, &derr) {
			manufacturer = derr.Manufacturer
		}
	}
	if manufacturer == "" {
		manufacturer = "unknown"
	}

	m.Decodes.WithLabelValues(manufacturer, outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

func (m *DecodeMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
