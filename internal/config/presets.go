package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/promptloom/promptloom/internal/providers"
)

// DefaultPreset is the name of the built-in enhancement preset that is always
// available even when no presets file exists.
const DefaultPreset = "default"

// Presets maps preset names to enhancement instruction texts for the
// secondary rewrite pass.
type Presets map[string]string

// PresetsPath returns the default presets file path:
// ~/.promptloom/presets.yaml.
func PresetsPath() string {
	return filepath.Join(DataDir(), "presets.yaml")
}

// LoadPresets reads the presets file at path. If path is empty, PresetsPath()
// is used. A missing file is not an error; the built-in default preset is
// always present in the returned map unless the file overrides it.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		path = PresetsPath()
	}

	presets := Presets{DefaultPreset: providers.DefaultEnhancementText}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return presets, nil
		}
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	if _, ok := presets[DefaultPreset]; !ok {
		presets[DefaultPreset] = providers.DefaultEnhancementText
	}
	return presets, nil
}

// SavePresets writes presets to path as YAML.
// If path is empty, PresetsPath() is used.
func SavePresets(presets Presets, path string) error {
	if path == "" {
		path = PresetsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create presets dir: %w", err)
	}
	data, err := yaml.Marshal(presets)
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write presets %s: %w", path, err)
	}
	return nil
}
