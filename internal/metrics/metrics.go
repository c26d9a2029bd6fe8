// Package metrics exposes Prometheus counters for loot generation
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// Metric names
const (
	MetricNameGenerations        = "loot_generations_total"
	MetricNameGenerationDuration = "loot_generation_duration_seconds"
	MetricNameItemsDrafted       = "loot_items_drafted_total"
	MetricNameWarnings           = "loot_warnings_total"
	MetricNameApplies            = "loot_applies_total"
)

// Label names
const (
	LabelMode   = "mode"
	LabelRarity = "rarity"
	LabelCode   = "code"
)

// Generation modes
const (
	ModePreview = "preview"
	ModeApply   = "apply"
	ModeAuto    = "auto"
	ModeReroll  = "reroll"
)

// Metrics groups the loot collectors. A nil *Metrics records nothing.
type Metrics struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	items       *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	applies     prometheus.Counter
}

// New registers the loot collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameGenerations,
				Help: "Token loot results generated, by mode",
			},
			[]string{LabelMode},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricNameGenerationDuration,
				Help:    "Time to generate loot for one request",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{LabelMode},
		),
		items: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameItemsDrafted,
				Help: "Items drafted, by normalized rarity",
			},
			[]string{LabelRarity},
		),
		warnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameWarnings,
				Help: "Recovered conditions surfaced on results, by code",
			},
			[]string{LabelCode},
		),
		applies: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricNameApplies,
				Help: "Token results applied to actors",
			},
		),
	}
}

// RecordResult counts one token result
func (m *Metrics) RecordResult(mode string, result *loot.GenerationResult) {
	if m == nil || result == nil {
		return
	}

	m.generations.WithLabelValues(mode).Inc()
	for _, item := range result.Items {
		m.items.WithLabelValues(string(item.Rarity())).Inc()
	}
	for _, w := range result.Warnings {
		m.warnings.WithLabelValues(string(w.Code)).Inc()
	}
}

// ObserveDuration records how long a request took
func (m *Metrics) ObserveDuration(mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(mode).Observe(d.Seconds())
}

// RecordApply counts applied token results
func (m *Metrics) RecordApply(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.applies.Add(float64(count))
}
