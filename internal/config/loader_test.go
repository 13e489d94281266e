package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	def := DefaultConfig()
	if cfg.Defaults.TextProvider != def.Defaults.TextProvider {
		t.Errorf("expected default text provider %q, got %q", def.Defaults.TextProvider, cfg.Defaults.TextProvider)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, map[string]any{
		"providers": map[string]any{
			"groq": map[string]any{
				"apiKey": "gsk-test",
				"model":  "llama-3.3-70b-versatile",
			},
			"openai": map[string]any{
				"imageSize":    "512x512",
				"imageQuality": "hd",
			},
		},
		"defaults": map[string]any{
			"textProvider": "groq",
			"temperature":  "0.4",
		},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Providers.Groq.APIKey != "gsk-test" {
		t.Errorf("expected apiKey %q, got %q", "gsk-test", cfg.Providers.Groq.APIKey)
	}
	if cfg.Defaults.TextProvider != "groq" {
		t.Errorf("expected text provider %q, got %q", "groq", cfg.Defaults.TextProvider)
	}
	if cfg.Defaults.Temperature != "0.4" {
		t.Errorf("expected temperature %q, got %q", "0.4", cfg.Defaults.Temperature)
	}
	if cfg.Providers.OpenAI.ImageSize != "512x512" || cfg.Providers.OpenAI.ImageQuality != "hd" {
		t.Errorf("image settings not loaded: %+v", cfg.Providers.OpenAI)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for invalid JSON (falls back to default), got: %v", err)
	}
	def := DefaultConfig()
	if cfg.Defaults.VideoProvider != def.Defaults.VideoProvider {
		t.Errorf("expected default video provider %q, got %q", def.Defaults.VideoProvider, cfg.Defaults.VideoProvider)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	original := DefaultConfig()
	original.Providers.OpenAI.APIKey = "sk-roundtrip"
	original.Polling.MaxAttempts = 5
	original.Polling.WaitSeconds = 15

	if err := Save(&original, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Providers.OpenAI.APIKey != original.Providers.OpenAI.APIKey {
		t.Errorf("apiKey mismatch: got %q, want %q", loaded.Providers.OpenAI.APIKey, original.Providers.OpenAI.APIKey)
	}
	if loaded.Polling.MaxAttempts != 5 || loaded.Polling.WaitSeconds != 15 {
		t.Errorf("polling mismatch: got %+v", loaded.Polling)
	}
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := DefaultConfig()
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected permissions 0600, got %04o", perm)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "dir", "config.json")

	cfg := DefaultConfig()
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestLoad_PartialConfig_UsesDefaults(t *testing.T) {
	dir := t.TempDir()
	// Only set one field; the rest should come from DefaultConfig.
	path := writeConfig(t, dir, map[string]any{
		"defaults": map[string]any{
			"imageProvider": "huggingface",
		},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultConfig()
	if cfg.Defaults.ImageProvider != "huggingface" {
		t.Errorf("expected image provider %q, got %q", "huggingface", cfg.Defaults.ImageProvider)
	}
	// Unset fields should retain their defaults.
	if cfg.Defaults.TextProvider != def.Defaults.TextProvider {
		t.Errorf("expected default text provider %q, got %q", def.Defaults.TextProvider, cfg.Defaults.TextProvider)
	}
	if cfg.Polling.MaxAttempts != def.Polling.MaxAttempts {
		t.Errorf("expected default maxAttempts %d, got %d", def.Polling.MaxAttempts, cfg.Polling.MaxAttempts)
	}
}

func TestProvidersConfig_ByName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Providers.Rhymes.VideoAPIKey = "allegro-key"

	pc := cfg.Providers.ByName(ProviderRhymes)
	if pc == nil {
		t.Fatal("expected rhymes provider config, got nil")
	}
	if pc.VideoAPIKey != "allegro-key" {
		t.Errorf("expected videoApiKey %q, got %q", "allegro-key", pc.VideoAPIKey)
	}
	if got := cfg.Providers.ByName("unknown"); got != nil {
		t.Errorf("expected nil for unknown provider, got %+v", got)
	}
}
