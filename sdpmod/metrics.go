// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmod

import (
	"github.com/emiago/sdpmunge"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts parsed SDPs. Pass it to parse with sdpmunge.WithObserver.
type Metrics struct {
	parsed       *prometheus.CounterVec
	lines        prometheus.Histogram
	unknownLines prometheus.Counter
	media        *prometheus.CounterVec
}

// NewMetrics registers metrics on reg. Use prometheus.DefaultRegisterer for global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		parsed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sdpmunge",
			Name:      "parsed_total",
			Help:      "Number of parsed SDPs by result.",
		}, []string{"result"}),
		lines: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sdpmunge",
			Name:      "lines",
			Help:      "Number of lines per parsed SDP.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 7),
		}),
		unknownLines: f.NewCounter(prometheus.CounterOpts{
			Namespace: "sdpmunge",
			Name:      "unknown_lines_total",
			Help:      "Number of lines not recognized by grammar.",
		}),
		media: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sdpmunge",
			Name:      "media_total",
			Help:      "Number of parsed media blocks by type.",
		}, []string{"type"}),
	}
}

func (m *Metrics) ObserveParse(stats sdpmunge.ParseStats, err error) {
	if err != nil {
		m.parsed.WithLabelValues("error").Inc()
		return
	}
	m.parsed.WithLabelValues("ok").Inc()
	m.lines.Observe(float64(stats.Lines))
	m.unknownLines.Add(float64(stats.UnknownLines))
	for _, t := range stats.Media {
		m.media.WithLabelValues(string(t)).Inc()
	}
}
