// Package prometheus bridges the statix aggregation engine into a
// Prometheus registry. The collector re-reads the composite's export
// surface on every scrape; nothing is cached between scrapes.
package prometheus

import (
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/linchenxuan/statix/stats"
)

// CollectorConfig contains configuration for the Prometheus bridge.
type CollectorConfig struct {
	Tag       string            `mapstructure:"tag"`       // Plugin instance tag
	Namespace string            `mapstructure:"namespace"` // Metric name prefix
	ExtLabels map[string]string `mapstructure:"extLabels"` // Labels attached to every metric
}

// Collector adapts the aggregator's export surface to prometheus.Collector.
// Every exported sample becomes one const gauge, so each scrape observes the
// accumulators at that instant.
type Collector struct {
	exporter  stats.Exporter
	namespace string
	extLabels map[string]string
}

var _ prom.Collector = (*Collector)(nil)

// NewCollector creates a collector reading from the given exporter.
func NewCollector(exporter stats.Exporter, cfg *CollectorConfig) *Collector {
	c := &Collector{exporter: exporter}
	if cfg != nil {
		c.namespace = sanitize(cfg.Namespace)
		c.extLabels = cfg.ExtLabels
	}
	return c
}

// FactoryName implements plugin.Plugin.
func (c *Collector) FactoryName() string {
	return "prometheus"
}

// Describe implements prometheus.Collector. The metric set depends on which
// entities have been observed, so the collector is unchecked and sends no
// descriptors.
func (c *Collector) Describe(ch chan<- *prom.Desc) {}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prom.Metric) {
	c.collect(ch, c.exporter.ExportCounterSamples())
	c.collect(ch, c.exporter.ExportServiceCounterSamples())
	c.collect(ch, c.exporter.ExportRTSamples())
}

func (c *Collector) collect(ch chan<- prom.Metric, samples []stats.Sample) {
	for _, s := range samples {
		labels := make(prom.Labels, len(s.Tags)+len(c.extLabels))
		for k, v := range c.extLabels {
			labels[sanitize(k)] = v
		}
		for k, v := range s.Tags {
			labels[sanitize(k)] = v
		}

		desc := prom.NewDesc(prom.BuildFQName(c.namespace, "", sanitize(s.Key)), s.Desc, nil, labels)
		m, err := prom.NewConstMetric(desc, prom.GaugeValue, float64(s.Value))
		if err != nil {
			log.Error().Err(err).Str("key", s.Key).Msg("prometheus collect")
			continue
		}
		ch <- m
	}
}

// sanitize rewrites dotted statix keys into Prometheus name segments.
func sanitize(s string) string {
	return strings.ReplaceAll(s, ".", "_")
}
