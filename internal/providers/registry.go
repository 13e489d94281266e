package providers

import (
	"strings"

	"github.com/promptloom/promptloom/internal/schema"
)

// ProviderSpec is the metadata record for one generation provider family.
// Adding a provider means adding a spec here plus an adapter implementation;
// this is a static lookup table, not a plugin system.
type ProviderSpec struct {
	// Identity
	Name        string // registry id, e.g. "rhymes"
	DisplayName string // shown in `promptloom status`

	// Capabilities this family is registered for.
	Capabilities []schema.Capability

	// Credentials and defaults
	EnvKey         string // env var holding the API key
	VideoEnvKey    string // separate credential for the async video API
	ModelEnvKey    string // env var holding the default model name
	DefaultAPIBase string // fallback base URL when none is configured
	ImageAPIBase   string // separate base URL for image generation, if any

	// Wire behaviour
	Naming        map[string]string // overrides merged over DefaultNaming
	Stop          []string          // default stop sequences
	SuccessTokens []string          // async status values meaning success
	RawAuth       bool              // send the key as-is instead of "Bearer <key>"
	IsLocal       bool              // local runtime, no API key required
}

// Label returns the display name, defaulting to Title-cased Name.
func (s ProviderSpec) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return strings.ToTitle(s.Name[:1]) + s.Name[1:]
}

// Supports reports whether the family is registered for the capability.
func (s ProviderSpec) Supports(cap schema.Capability) bool {
	for _, c := range s.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// rhymesSuccessTokens are the status values the Rhymes video API uses to
// signal success on both submission and status-check responses.
var rhymesSuccessTokens = []string{"success", "Success", "成功"}

// PROVIDERS is the registry. Order = display order in `promptloom status`.
var PROVIDERS = []ProviderSpec{
	{
		Name:         "openai",
		DisplayName:  "OpenAI",
		Capabilities: []schema.Capability{schema.CapabilityText, schema.CapabilityImage},
		EnvKey:       "OPENAI_API_KEY",
		ModelEnvKey:  "OPENAI_MODEL",
	},
	{
		Name:           "groq",
		DisplayName:    "Groq",
		Capabilities:   []schema.Capability{schema.CapabilityText},
		EnvKey:         "GROQ_API_KEY",
		ModelEnvKey:    "GROQ_MODEL",
		DefaultAPIBase: "https://api.groq.com/openai/v1",
	},
	{
		Name:           "nvidia",
		DisplayName:    "NVIDIA",
		Capabilities:   []schema.Capability{schema.CapabilityText},
		EnvKey:         "NVIDIA_API_KEY",
		ModelEnvKey:    "NVIDIA_MODEL",
		DefaultAPIBase: "https://integrate.api.nvidia.com/v1",
	},
	{
		Name:           "ollama",
		DisplayName:    "Ollama",
		Capabilities:   []schema.Capability{schema.CapabilityText},
		ModelEnvKey:    "OLLAMA_MODEL",
		DefaultAPIBase: "http://localhost:11434/v1",
		IsLocal:        true,
	},
	{
		Name:           "rhymes",
		DisplayName:    "Rhymes (Aria / Allegro)",
		Capabilities:   []schema.Capability{schema.CapabilityText, schema.CapabilityVideo},
		EnvKey:         "RHYMES_ARIA_API_KEY",
		VideoEnvKey:    "RHYMES_ALLEGRO_API_KEY",
		ModelEnvKey:    "RHYMES_MODEL_NAME",
		DefaultAPIBase: "https://api.rhymes.ai/v1",
		Stop:           []string{"<|im_end|>"},
		SuccessTokens:  rhymesSuccessTokens,
		RawAuth:        true,
	},
	{
		Name:           "huggingface",
		DisplayName:    "Hugging Face",
		Capabilities:   []schema.Capability{schema.CapabilityText, schema.CapabilityImage},
		EnvKey:         "HUGGINGFACE_API_KEY",
		ModelEnvKey:    "HUGGINGFACE_MODEL",
		DefaultAPIBase: "https://router.huggingface.co/v1",
		ImageAPIBase:   "https://api-inference.huggingface.co/models",
	},
}

// FindByName returns the ProviderSpec whose Name equals name, or nil.
func FindByName(name string) *ProviderSpec {
	for i := range PROVIDERS {
		if PROVIDERS[i].Name == name {
			return &PROVIDERS[i]
		}
	}
	return nil
}
