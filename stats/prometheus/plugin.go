package prometheus

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/linchenxuan/statix/plugin"
	"github.com/linchenxuan/statix/stats"
)

// Factory builds Prometheus bridge plugins around one aggregation engine.
type Factory struct {
	// Exporter is the read side of the composite fed to collectors.
	Exporter stats.Exporter
	// Registerer receives the collector; defaults to prometheus.DefaultRegisterer.
	Registerer prom.Registerer
}

// Type returns the plugin type.
func (f *Factory) Type() plugin.Type {
	return plugin.Exporter
}

// Name returns the name of the plugin implementation.
func (f *Factory) Name() string {
	return "prometheus"
}

// ConfigType returns an empty struct that represents the plugin's configuration.
// This struct will be populated by the manager using mapstructure.
func (f *Factory) ConfigType() any {
	return &CollectorConfig{}
}

// Setup initializes a collector based on the configuration and registers it.
func (f *Factory) Setup(cfgAny any) (plugin.Plugin, error) {
	cfg, ok := cfgAny.(*CollectorConfig)
	if !ok {
		return nil, fmt.Errorf("prometheus setup: unexpected config type %T", cfgAny)
	}
	if f.Exporter == nil {
		return nil, errors.New("prometheus setup: factory has no exporter")
	}

	c := NewCollector(f.Exporter, cfg)
	if err := f.registerer().Register(c); err != nil {
		return nil, fmt.Errorf("prometheus setup: %w", err)
	}

	log.Info().Str("namespace", cfg.Namespace).Msg("prometheus bridge registered")
	return c, nil
}

// Destroy unregisters the collector.
func (f *Factory) Destroy(p plugin.Plugin) {
	c, ok := p.(*Collector)
	if !ok {
		log.Error().Str("plugin", p.FactoryName()).Msg("prometheus destroy: unexpected plugin type")
		return
	}
	f.registerer().Unregister(c)
}

func (f *Factory) registerer() prom.Registerer {
	if f.Registerer != nil {
		return f.Registerer
	}
	return prom.DefaultRegisterer
}
