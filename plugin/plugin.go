// Package plugin manages the exporter plugins wired around the statix
// aggregation engine. Factories register by (type, name); the manager sets
// instances up from raw configuration maps decoded into each factory's
// typed config struct.
package plugin

// Type is the type of plugin supported by the system.
type Type string

const (
	// Exporter plugins consume the aggregator's exported samples,
	// e.g. the Prometheus bridge.
	Exporter Type = "exporter"
)

// Factory is the interface for plugin factories.
type Factory interface {
	// Type returns the plugin type.
	Type() Type
	// Name returns the name of the plugin implementation.
	Name() string
	// ConfigType returns an empty struct that represents the plugin's configuration.
	// This struct will be populated by the manager using mapstructure.
	ConfigType() any
	// Setup initializes a plugin instance based on the configuration.
	Setup(any) (Plugin, error)

	Destroy(Plugin)
}

// Plugin is a set-up plugin instance.
type Plugin interface {
	FactoryName() string
}
