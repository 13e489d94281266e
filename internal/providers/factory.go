package providers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/promptloom/promptloom/internal/schema"
)

// SelectorOptions are the raw values needed to construct a Selector.
// Extracted from config.Config by the caller to avoid an import cycle.
type SelectorOptions struct {
	// Providers maps registry names to their configured request parameters.
	// Missing entries fall back entirely to spec defaults and env vars.
	Providers map[string]Params

	// Default provider per capability, used when the caller passes "".
	DefaultText  string
	DefaultImage string
	DefaultVideo string

	Logger *slog.Logger
}

// Selector resolves a (provider id, capability) pair into a freshly
// constructed adapter. Every resolution builds a new adapter instance, so
// concurrent callers never share mutable adapter state.
type Selector struct {
	opts SelectorOptions
}

func NewSelector(opts SelectorOptions) *Selector {
	return &Selector{opts: opts}
}

// Text returns a text adapter for the named provider, or the configured
// default when name is empty.
func (s *Selector) Text(name string) (schema.TextGenerator, error) {
	_, p, err := s.resolve(name, s.opts.DefaultText, schema.CapabilityText)
	if err != nil {
		return nil, err
	}
	return NewOpenAIAdapter(p), nil
}

// Image returns an image adapter for the named provider, or the configured
// default when name is empty.
func (s *Selector) Image(name string) (schema.ImageGenerator, error) {
	spec, p, err := s.resolve(name, s.opts.DefaultImage, schema.CapabilityImage)
	if err != nil {
		return nil, err
	}
	// The enhancement pass needs a text adapter from the same family,
	// resolved for the text capability so it gets the chat base URL.
	llm, err := s.Text(spec.Name)
	if err != nil {
		return nil, err
	}
	switch spec.Name {
	case "huggingface":
		return NewHuggingFaceImageAdapter(p, llm), nil
	default:
		return NewOpenAIImageAdapter(p, llm), nil
	}
}

// Video returns a video adapter for the named provider, or the configured
// default when name is empty. The inner text adapter used for prompt
// enhancement comes from the default text provider, since video models
// cannot answer chat requests. It is resolved lazily: a submission with
// enhancement off needs only the video credential.
func (s *Selector) Video(name string) (schema.VideoGenerator, error) {
	_, p, err := s.resolve(name, s.opts.DefaultVideo, schema.CapabilityVideo)
	if err != nil {
		return nil, err
	}
	return NewAllegroAdapter(p, &lazyText{s: s}), nil
}

// lazyText defers text-adapter resolution until the first query. A missing
// text credential then surfaces as an error envelope on the call that
// actually needed it, not as a construction failure.
type lazyText struct {
	s    *Selector
	name string
	llm  schema.TextGenerator
}

func (l *lazyText) Query(ctx context.Context, systemPrompt, userInput, enhancementText string, unified bool) schema.ResultSet {
	if l.llm == nil {
		llm, err := l.s.Text(l.name)
		if err != nil {
			return schema.Errorf("%v", err)
		}
		l.llm = llm
	}
	return l.llm.Query(ctx, systemPrompt, userInput, enhancementText, unified)
}

// resolve validates the (provider, capability) pair and assembles the
// request parameters: configured values win, then env vars, then the
// registry spec's defaults.
func (s *Selector) resolve(name, fallback string, cap schema.Capability) (*ProviderSpec, Params, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		return nil, Params{}, fmt.Errorf("no provider configured for %s generation", cap)
	}
	spec := FindByName(name)
	if spec == nil {
		return nil, Params{}, fmt.Errorf("unsupported provider %q", name)
	}
	if !spec.Supports(cap) {
		return nil, Params{}, fmt.Errorf("provider %q does not support %s generation", name, cap)
	}

	p := s.opts.Providers[name]
	p.Provider = name
	p.APIKey = checkEnv(p.APIKey, spec.EnvKey)
	p.VideoAPIKey = checkEnv(p.VideoAPIKey, spec.VideoEnvKey)
	p.ModelName = checkEnv(p.ModelName, spec.ModelEnvKey)
	if p.BaseURL == "" {
		if cap == schema.CapabilityImage && spec.ImageAPIBase != "" {
			p.BaseURL = spec.ImageAPIBase
		} else {
			p.BaseURL = spec.DefaultAPIBase
		}
	}
	if p.Naming == nil && spec.Naming != nil {
		p.Naming = spec.Naming
	}
	if len(p.Stop) == 0 {
		p.Stop = spec.Stop
	}
	if p.Logger == nil {
		p.Logger = s.opts.Logger
	}

	if !spec.IsLocal && p.APIKey == "" && (cap != schema.CapabilityVideo || p.VideoAPIKey == "") {
		return nil, Params{}, fmt.Errorf("no API key configured for provider %q", name)
	}
	return spec, p, nil
}

// checkEnv returns the configured value, falling back to the env var.
func checkEnv(cfgVal, envKey string) string {
	if cfgVal != "" || envKey == "" {
		return cfgVal
	}
	return os.Getenv(envKey)
}
