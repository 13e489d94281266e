// Package config defines the configuration schema for promptloom.
//
// The core only requires that credentials and defaults arrive as plain
// key/value strings; this package is the environment/config collaborator
// that delivers them.
package config

import (
	"os"
	"path/filepath"
)

// Provider registry names. These must match the specs in internal/providers.
const (
	ProviderOpenAI      = "openai"
	ProviderGroq        = "groq"
	ProviderNvidia      = "nvidia"
	ProviderOllama      = "ollama"
	ProviderRhymes      = "rhymes"
	ProviderHuggingFace = "huggingface"
)

// ProviderConfig holds credentials and defaults for one provider family.
// Empty fields fall back to env vars and registry defaults downstream.
type ProviderConfig struct {
	APIKey      string            `json:"apiKey,omitempty"`
	VideoAPIKey string            `json:"videoApiKey,omitempty"` // async video credential (Rhymes Allegro)
	APIBase     string            `json:"apiBase,omitempty"`
	Model       string            `json:"model,omitempty"`
	Naming      map[string]string `json:"naming,omitempty"` // canonical key → wire key overrides

	// Image generation knobs for image-capable providers.
	ImageSize    string `json:"imageSize,omitempty"`
	ImageQuality string `json:"imageQuality,omitempty"`
}

// ProvidersConfig holds credentials for all supported provider families.
type ProvidersConfig struct {
	OpenAI      ProviderConfig `json:"openai"`
	Groq        ProviderConfig `json:"groq"`
	Nvidia      ProviderConfig `json:"nvidia"`
	Ollama      ProviderConfig `json:"ollama"`
	Rhymes      ProviderConfig `json:"rhymes"`
	HuggingFace ProviderConfig `json:"huggingface"`
}

// ByName returns a pointer to the ProviderConfig field matching the given
// registry name. Returns nil if the name is unknown.
func (p *ProvidersConfig) ByName(name string) *ProviderConfig {
	switch name {
	case ProviderOpenAI:
		return &p.OpenAI
	case ProviderGroq:
		return &p.Groq
	case ProviderNvidia:
		return &p.Nvidia
	case ProviderOllama:
		return &p.Ollama
	case ProviderRhymes:
		return &p.Rhymes
	case ProviderHuggingFace:
		return &p.HuggingFace
	}
	return nil
}

// GenerationDefaults selects the default provider per capability and carries
// the generation tuning values. Tuning values are strings on purpose: that is
// the shape the parameter mapper coerces from, and it keeps "unset" distinct
// from zero.
type GenerationDefaults struct {
	TextProvider  string `json:"textProvider"`
	ImageProvider string `json:"imageProvider"`
	VideoProvider string `json:"videoProvider"`
	Temperature   string `json:"temperature,omitempty"`
	TopP          string `json:"topP,omitempty"`
	MaxTokens     string `json:"maxTokens,omitempty"`
	Stream        string `json:"stream,omitempty"` // "1" enables streaming
}

// PollingConfig bounds the video status-check loop.
type PollingConfig struct {
	MaxAttempts int `json:"maxAttempts"`
	WaitSeconds int `json:"waitSeconds"`
}

// Config is the root configuration document.
type Config struct {
	Providers ProvidersConfig    `json:"providers"`
	Defaults  GenerationDefaults `json:"defaults"`
	Polling   PollingConfig      `json:"polling"`
	Verbose   bool               `json:"verbose"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Defaults: GenerationDefaults{
			TextProvider:  ProviderOpenAI,
			ImageProvider: ProviderOpenAI,
			VideoProvider: ProviderRhymes,
		},
		Polling: PollingConfig{
			MaxAttempts: 10,
			WaitSeconds: 60,
		},
	}
}

// DataDir returns the promptloom data directory: ~/.promptloom.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".promptloom"
	}
	return filepath.Join(home, ".promptloom")
}
