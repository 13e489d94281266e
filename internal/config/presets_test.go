package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/promptloom/promptloom/internal/providers"
)

func TestLoadPresets_MissingFile(t *testing.T) {
	presets, err := LoadPresets("/nonexistent/presets.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if presets[DefaultPreset] != providers.DefaultEnhancementText {
		t.Errorf("expected built-in default preset, got %q", presets[DefaultPreset])
	}
}

func TestLoadPresets_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	body := "cinematic: |\n  Rewrite the prompt with cinematic lighting and camera language.\nterse: Shorten the prompt to its essentials.\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if presets["terse"] != "Shorten the prompt to its essentials." {
		t.Errorf("unexpected terse preset: %q", presets["terse"])
	}
	// Built-in default survives when the file does not override it.
	if presets[DefaultPreset] != providers.DefaultEnhancementText {
		t.Errorf("expected built-in default preset to survive, got %q", presets[DefaultPreset])
	}
}

func TestLoadPresets_OverrideDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(path, []byte("default: Use my house style.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if presets[DefaultPreset] != "Use my house style." {
		t.Errorf("expected overridden default, got %q", presets[DefaultPreset])
	}
}

func TestSavePresets_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "presets.yaml")

	original := Presets{
		DefaultPreset: "Base instructions.",
		"noir":        "Rewrite in a noir register.",
	}
	if err := SavePresets(original, path); err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if loaded["noir"] != original["noir"] {
		t.Errorf("noir mismatch: got %q, want %q", loaded["noir"], original["noir"])
	}
	if loaded[DefaultPreset] != original[DefaultPreset] {
		t.Errorf("default mismatch: got %q, want %q", loaded[DefaultPreset], original[DefaultPreset])
	}
}
