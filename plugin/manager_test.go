package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// SinkConfig is a mock exporter configuration struct for testing structured config.
type SinkConfig struct {
	Namespace string
	Interval  int
	Tag       string // Used for duplicate tag testing
}

// SinkFactory is a mock implementation of the Factory interface for testing.
type SinkFactory struct {
	PType Type
	PName string
	// Test helpers
	SetupCount   int
	DestroyCount int
	LastConfig   *SinkConfig
}

func (m *SinkFactory) Type() Type   { return m.PType }
func (m *SinkFactory) Name() string { return m.PName }
func (m *SinkFactory) ConfigType() any {
	return &SinkConfig{}
}
func (m *SinkFactory) Setup(config any) (Plugin, error) {
	m.SetupCount++
	if cfg, ok := config.(*SinkConfig); ok {
		m.LastConfig = cfg
	}
	return &SinkPlugin{FName: m.PName}, nil
}
func (m *SinkFactory) Destroy(p Plugin) {
	m.DestroyCount++
}

// SinkPlugin is a mock plugin instance for testing.
type SinkPlugin struct {
	FName string
}

func (sp *SinkPlugin) FactoryName() string {
	return sp.FName
}

func TestManager(t *testing.T) {
	factory := &SinkFactory{PType: Exporter, PName: "mocksink"}

	t.Run("RegisterFactory", func(t *testing.T) {
		manager := NewManager()
		manager.RegisterFactory(factory)
		assert.NotNil(t, manager.factories[Exporter])
		assert.Equal(t, factory, manager.factories[Exporter]["mocksink"])
	})

	t.Run("SetupAndGetPlugins", func(t *testing.T) {
		manager := NewManager()

		pluginConf := map[string]any{
			"exporter": map[string]any{
				"mocksink": map[string]any{
					"namespace": "statix",
					"interval":  30,
					"tag":       "default",
				},
				"anothersink": map[string]any{
					"namespace": "other",
				},
			},
		}

		anotherFactory := &SinkFactory{PType: Exporter, PName: "anothersink"}
		manager.RegisterFactory(anotherFactory)
		manager.RegisterFactory(factory)

		err := manager.SetupPlugins(pluginConf)
		assert.NoError(t, err)

		p, err := manager.GetPlugin(Exporter, "default")
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.IsType(t, &SinkPlugin{}, p)

		dp, err := manager.GetDefaultPlugin(Exporter)
		assert.NoError(t, err)
		assert.IsType(t, &SinkPlugin{}, dp)
		assert.Equal(t, p, dp)

		np, err := manager.GetPlugin(Exporter, "anothersink")
		assert.NoError(t, err)
		assert.NotNil(t, np)
	})

	t.Run("ErrorOnDuplicateTag", func(t *testing.T) {
		manager := NewManager()

		manager.RegisterFactory(&SinkFactory{PType: Exporter, PName: "sink1"})
		manager.RegisterFactory(&SinkFactory{PType: Exporter, PName: "sink2"})

		pluginConf := map[string]any{
			"exporter": map[string]any{
				"sink1": map[string]any{
					"tag": "default",
				},
				"sink2": map[string]any{
					"tag": "default", // Duplicate tag
				},
			},
		}

		err := manager.SetupPlugins(pluginConf)
		assert.ErrorIs(t, err, ErrDuplicatePlugin)
	})

	t.Run("ErrorOnMissingFactory", func(t *testing.T) {
		manager := NewManager()

		manager.RegisterFactory(&SinkFactory{PType: Exporter, PName: "realsink"})

		pluginConf := map[string]any{
			"exporter": map[string]any{
				"nonexistent": map[string]any{},
			},
		}
		err := manager.SetupPlugins(pluginConf)
		assert.ErrorIs(t, err, ErrPluginNotFound)
	})

	t.Run("UnknownTypeSectionIgnored", func(t *testing.T) {
		manager := NewManager()
		manager.RegisterFactory(&SinkFactory{PType: Exporter, PName: "sink"})

		pluginConf := map[string]any{
			"tracer": map[string]any{
				"zipkin": map[string]any{},
			},
		}
		assert.NoError(t, manager.SetupPlugins(pluginConf))
	})

	t.Run("TestConfigDecoding", func(t *testing.T) {
		t.Run("SuccessfulDecoding", func(t *testing.T) {
			manager := NewManager()
			sinkFactory := &SinkFactory{PType: Exporter, PName: "sink"}
			manager.RegisterFactory(sinkFactory)

			pluginConf := map[string]any{
				"exporter": map[string]any{
					"sink": map[string]any{
						"namespace": "statix",
						"interval":  15,
					},
				},
			}
			err := manager.SetupPlugins(pluginConf)
			assert.NoError(t, err)
			assert.NotNil(t, sinkFactory.LastConfig)
			assert.Equal(t, "statix", sinkFactory.LastConfig.Namespace)
			assert.Equal(t, 15, sinkFactory.LastConfig.Interval)
		})

		t.Run("FailedDecoding_InvalidType", func(t *testing.T) {
			manager := NewManager()
			manager.RegisterFactory(&SinkFactory{PType: Exporter, PName: "sink"})

			pluginConf := map[string]any{
				"exporter": map[string]any{
					"sink": map[string]any{
						"namespace": 123, // Invalid type for string
					},
				},
			}
			err := manager.SetupPlugins(pluginConf)
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigDecode)
		})

		t.Run("FailedDecoding_InvalidFormat", func(t *testing.T) {
			manager := NewManager()
			manager.RegisterFactory(&SinkFactory{PType: Exporter, PName: "sink"})

			pluginConf := map[string]any{
				"exporter": "not-a-map", // Invalid format for plugins map
			}
			err := manager.SetupPlugins(pluginConf)
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfigFormat)
		})
	})

	t.Run("DestroyPlugins", func(t *testing.T) {
		manager := NewManager()
		sinkFactory := &SinkFactory{PType: Exporter, PName: "sink"}
		manager.RegisterFactory(sinkFactory)

		pluginConf := map[string]any{
			"exporter": map[string]any{
				"sink": map[string]any{},
			},
		}
		assert.NoError(t, manager.SetupPlugins(pluginConf))

		manager.DestroyPlugins()
		assert.Equal(t, 1, sinkFactory.DestroyCount)

		_, err := manager.GetPlugin(Exporter, "sink")
		assert.ErrorIs(t, err, ErrPluginNotFound)
	})
}
