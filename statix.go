// Package statix wires the concurrent metrics aggregation engine together
// with its exporter plugins: one Composite instance per process, constructed
// from configuration and handed to writers and exporters by reference.
package statix

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/linchenxuan/statix/plugin"
	"github.com/linchenxuan/statix/stats"
	"github.com/linchenxuan/statix/stats/prometheus"
)

// Statix is the core application struct, holding the single aggregation
// engine instance and the plugin manager wired around it.
type Statix struct {
	Composite     *stats.Composite
	PluginManager *plugin.Manager
}

// New creates a new Statix application instance from the given config.
// It initializes the logger, builds the composite and sets up exporter
// plugins.
func New(cfg *Config) (*Statix, error) {
	if cfg == nil {
		return nil, fmt.Errorf("statix: nil config")
	}

	// 1. Initialize the process logger
	if err := setupLogger(cfg.Log); err != nil {
		return nil, err
	}

	// 2. Build the aggregation engine
	composite := stats.New(cfg.Stats.Spec())

	// 3. Initialize the plugin manager and register exporter factories
	pluginManager := plugin.NewManager()
	pluginManager.RegisterFactory(&prometheus.Factory{Exporter: composite})

	if err := pluginManager.SetupPlugins(cfg.Plugin); err != nil {
		return nil, fmt.Errorf("statix: %w", err)
	}

	s := &Statix{
		Composite:     composite,
		PluginManager: pluginManager,
	}

	log.Info().
		Int("appClasses", len(cfg.Stats.AppClasses)).
		Int("serviceClasses", len(cfg.Stats.ServiceClasses)).
		Msg("statix initialized")
	return s, nil
}

// Stop tears down the exporter plugins. The composite itself has process
// lifetime and needs no teardown.
func (s *Statix) Stop() {
	log.Info().Msg("statix shutting down")
	s.PluginManager.DestroyPlugins()
}

func setupLogger(cfg LogConfig) error {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("statix: invalid log level %q: %w", cfg.Level, err)
		}
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}
