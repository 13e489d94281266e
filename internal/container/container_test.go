package container

import (
	"testing"

	"github.com/promptloom/promptloom/internal/config"
)

func TestNew_WiresServices(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Providers.OpenAI.APIKey = "sk-test"
	cfg.Providers.Rhymes.VideoAPIKey = "allegro-test"

	c, err := New(&cfg)
	if err != nil {
		t.Fatalf("container build failed: %v", err)
	}

	if c.Config() != &cfg {
		t.Error("expected the container to hold the given config")
	}
	if c.Logger() == nil {
		t.Fatal("expected a logger")
	}
	if c.Presets()[config.DefaultPreset] == "" {
		t.Error("expected the built-in enhancement preset")
	}
	if _, err := c.Selector().Text(""); err != nil {
		t.Errorf("default text provider must resolve: %v", err)
	}
	if _, err := c.Selector().Video(""); err != nil {
		t.Errorf("default video provider must resolve: %v", err)
	}
}

func TestNew_VerboseControlsLogLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	c, err := New(&cfg)
	if err != nil {
		t.Fatalf("container build failed: %v", err)
	}
	if c.Logger() == nil {
		t.Fatal("expected a logger")
	}
}
