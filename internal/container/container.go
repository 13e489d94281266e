// Package container wires core promptloom services using go.uber.org/dig.
package container

import (
	"log/slog"
	"os"
	"time"

	"go.uber.org/dig"

	"github.com/promptloom/promptloom/internal/config"
	"github.com/promptloom/promptloom/internal/providers"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	log      *slog.Logger
	selector *providers.Selector
	presets  config.Presets
}

func (c *Container) Config() *config.Config        { return c.cfg }
func (c *Container) Logger() *slog.Logger          { return c.log }
func (c *Container) Selector() *providers.Selector { return c.selector }
func (c *Container) Presets() config.Presets       { return c.presets }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newLogger); err != nil {
		return nil, err
	}
	if err := d.Provide(newSelector); err != nil {
		return nil, err
	}
	if err := d.Provide(loadPresets); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		log *slog.Logger,
		selector *providers.Selector,
		presets config.Presets,
	) {
		result = &Container{
			cfg:      cfg,
			log:      log,
			selector: selector,
			presets:  presets,
		}
	})
	return result, err
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newSelector(cfg *config.Config, log *slog.Logger) *providers.Selector {
	opts := providers.SelectorOptions{
		Providers:    map[string]providers.Params{},
		DefaultText:  cfg.Defaults.TextProvider,
		DefaultImage: cfg.Defaults.ImageProvider,
		DefaultVideo: cfg.Defaults.VideoProvider,
		Logger:       log,
	}

	for _, name := range []string{
		config.ProviderOpenAI,
		config.ProviderGroq,
		config.ProviderNvidia,
		config.ProviderOllama,
		config.ProviderRhymes,
		config.ProviderHuggingFace,
	} {
		pc := cfg.Providers.ByName(name)
		opts.Providers[name] = providers.Params{
			Provider:     name,
			APIKey:       pc.APIKey,
			VideoAPIKey:  pc.VideoAPIKey,
			BaseURL:      pc.APIBase,
			ModelName:    pc.Model,
			Naming:       pc.Naming,
			ImageSize:    pc.ImageSize,
			ImageQuality: pc.ImageQuality,
			Temperature:  cfg.Defaults.Temperature,
			TopP:         cfg.Defaults.TopP,
			MaxTokens:    cfg.Defaults.MaxTokens,
			Stream:       cfg.Defaults.Stream,
			MaxAttempts:  cfg.Polling.MaxAttempts,
			Wait:         time.Duration(cfg.Polling.WaitSeconds) * time.Second,
			Logger:       log,
		}
	}
	return providers.NewSelector(opts)
}

func loadPresets() (config.Presets, error) {
	return config.LoadPresets("")
}
