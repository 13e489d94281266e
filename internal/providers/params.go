package providers

import (
	"log/slog"
	"strconv"
	"time"
)

// Canonical parameter keys recognised by MapParams. Providers disagree on
// field names and accepted types for the same semantic setting; mapping is
// centralised here so adapters stay focused on transport.
const (
	keyModel       = "model"
	keyModelName   = "model_name"
	keyMessages    = "messages"
	keyStop        = "stop"
	keyTemperature = "temperature"
	keyTopP        = "top_p"
	keyMaxTokens   = "max_tokens"
	keyStream      = "stream"
	keyProvider    = "provider"
	keyAPIKey      = "api_key"
	keyBaseURL     = "base_url"
)

// DefaultNaming is the wire-name table used when a provider family does not
// override it: identity for every key except model_name, which becomes model.
func DefaultNaming() map[string]string {
	return map[string]string{keyModelName: keyModel}
}

// Params is the per-request configuration an adapter is constructed with.
// It is owned by the request; adapters never mutate it or share it across
// calls. Tuning values arrive as strings (the shape the config collaborator
// delivers) and are coerced by MapParams.
type Params struct {
	Provider    string
	APIKey      string
	VideoAPIKey string // async video credential, when distinct from APIKey
	BaseURL     string
	ModelName   string
	Temperature string
	TopP        string
	MaxTokens   string
	Stream      string
	Stop        []string
	Naming      map[string]string

	// Image generation knobs, used only by image-capable adapters.
	ImageSize    string
	ImageQuality string

	// Video polling budget. Zero values fall back to the poller defaults.
	MaxAttempts int
	Wait        time.Duration

	Logger *slog.Logger
}

// canonical flattens the request configuration into the canonical parameter
// map MapParams consumes.
func (p Params) canonical() map[string]any {
	out := map[string]any{
		keyProvider:    p.Provider,
		keyAPIKey:      p.APIKey,
		keyBaseURL:     p.BaseURL,
		keyModelName:   p.ModelName,
		keyTemperature: p.Temperature,
		keyTopP:        p.TopP,
		keyMaxTokens:   p.MaxTokens,
		keyStream:      p.Stream,
	}
	if len(p.Stop) > 0 {
		out[keyStop] = p.Stop
	}
	return out
}

// MapParams translates a canonical parameter set into a provider's wire names
// and types using the given naming table (nil means DefaultNaming).
//
// Pass-through keys are emitted only when their value is non-empty, so a
// zero-valued numeric parameter reads as "unset" — callers wanting a literal
// zero must override downstream. An empty stop list is never emitted.
// Temperature is coerced to float, top_p and max_tokens to int, and stream to
// bool, where both the literal string "1" and boolean true activate it.
//
// When forWireAPI is set, provider, api_key, base_url and stop are surfaced
// unconditionally for adapters that need them to construct a transport
// client. When the resolved model identifier is the local Ollama runtime,
// temperature is nested under an options sub-map per that provider's
// configuration convention.
func MapParams(params map[string]any, naming map[string]string, forWireAPI bool) map[string]any {
	if naming == nil {
		naming = DefaultNaming()
	}
	wireName := func(key string) string {
		if n, ok := naming[key]; ok {
			return n
		}
		return key
	}

	out := map[string]any{}
	for _, key := range []string{keyModel, keyModelName, keyMessages, keyStop} {
		if v, ok := params[key]; ok && truthy(v) {
			out[wireName(key)] = v
		}
	}
	if v, ok := params[keyTemperature]; ok && truthy(v) {
		if f, ok := toFloat(v); ok {
			out[wireName(keyTemperature)] = f
		}
	}
	for _, key := range []string{keyTopP, keyMaxTokens} {
		if v, ok := params[key]; ok && truthy(v) {
			if n, ok := toInt(v); ok {
				out[wireName(key)] = n
			}
		}
	}
	if v, ok := params[keyStream]; ok && truthy(v) {
		out[wireName(keyStream)] = v == "1" || v == true
	}

	if forWireAPI {
		out[keyProvider] = params[keyProvider]
		out[keyAPIKey] = params[keyAPIKey]
		out[keyBaseURL] = params[keyBaseURL]
		out[keyStop] = params[keyStop]
	}

	if resolvedModel(params) == "ollama" {
		if t, ok := out[keyTemperature]; ok {
			out["options"] = map[string]any{keyTemperature: t}
			delete(out, keyTemperature)
		}
	}
	return out
}

// resolvedModel returns the effective model identifier: an explicit model
// wins over the configured model_name.
func resolvedModel(params map[string]any) string {
	if m, ok := params[keyModel].(string); ok && m != "" {
		return m
	}
	m, _ := params[keyModelName].(string)
	return m
}

// truthy reports whether a canonical value counts as "present": empty
// strings, zero numbers, false and empty lists all read as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case []string:
		return len(t) > 0
	case []any:
		return len(t) > 0
	case []map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		return n, err == nil
	}
	return 0, false
}
