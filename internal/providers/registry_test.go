package providers

import (
	"testing"

	"github.com/promptloom/promptloom/internal/schema"
)

func TestFindByName(t *testing.T) {
	spec := FindByName("rhymes")
	if spec == nil {
		t.Fatal("expected rhymes spec")
	}
	if !spec.RawAuth {
		t.Error("rhymes must use raw auth")
	}
	if spec.VideoEnvKey != "RHYMES_ALLEGRO_API_KEY" {
		t.Errorf("unexpected video env key %q", spec.VideoEnvKey)
	}
	if FindByName("bedrock") != nil {
		t.Error("expected nil for unknown provider")
	}
}

func TestProviderSpec_Supports(t *testing.T) {
	cases := []struct {
		provider string
		cap      schema.Capability
		want     bool
	}{
		{"openai", schema.CapabilityText, true},
		{"openai", schema.CapabilityImage, true},
		{"openai", schema.CapabilityVideo, false},
		{"groq", schema.CapabilityText, true},
		{"groq", schema.CapabilityImage, false},
		{"rhymes", schema.CapabilityVideo, true},
		{"huggingface", schema.CapabilityImage, true},
		{"ollama", schema.CapabilityText, true},
		{"ollama", schema.CapabilityImage, false},
	}
	for _, tc := range cases {
		spec := FindByName(tc.provider)
		if spec == nil {
			t.Fatalf("missing spec for %s", tc.provider)
		}
		if got := spec.Supports(tc.cap); got != tc.want {
			t.Errorf("%s supports %s: got %v, want %v", tc.provider, tc.cap, got, tc.want)
		}
	}
}

func TestProviderSpec_Label(t *testing.T) {
	if got := FindByName("nvidia").Label(); got != "NVIDIA" {
		t.Errorf("unexpected label %q", got)
	}
	anon := ProviderSpec{Name: "mistral"}
	if got := anon.Label(); got != "Mistral" {
		t.Errorf("unexpected fallback label %q", got)
	}
}

func TestOllamaIsLocal(t *testing.T) {
	spec := FindByName("ollama")
	if spec == nil || !spec.IsLocal {
		t.Fatal("ollama must be marked local")
	}
	if spec.DefaultAPIBase != "http://localhost:11434/v1" {
		t.Errorf("unexpected base %q", spec.DefaultAPIBase)
	}
}
