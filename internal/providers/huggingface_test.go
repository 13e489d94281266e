package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func hfParams(baseURL string) Params {
	return Params{
		Provider:  "huggingface",
		APIKey:    "hf-test",
		BaseURL:   baseURL,
		ModelName: "stabilityai/stable-diffusion-xl",
	}
}

func TestHuggingFaceImageAdapter_GenerateImage(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stabilityai/stable-diffusion-xl" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		if body["inputs"] != "a fox" {
			t.Errorf("unexpected inputs: %v", body["inputs"])
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	a := NewHuggingFaceImageAdapter(hfParams(srv.URL), &scriptedLLM{})
	res := a.GenerateImage(context.Background(), "a fox", "")

	if res.Error {
		t.Fatalf("unexpected error: %s", res.ErrorMessage)
	}
	if len(res.ImageURLs) != 1 {
		t.Fatalf("expected 1 image URL, got %v", res.ImageURLs)
	}
	if !strings.HasPrefix(res.ImageURLs[0], "data:image/png;base64,") {
		t.Errorf("expected a data URL, got %q", res.ImageURLs[0])
	}
}

func TestHuggingFaceImageAdapter_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "model is loading"})
	}))
	defer srv.Close()

	a := NewHuggingFaceImageAdapter(hfParams(srv.URL), &scriptedLLM{})
	res := a.GenerateImage(context.Background(), "a fox", "")

	if !res.Error {
		t.Fatal("expected error envelope")
	}
	if res.ErrorMessage != "model is loading" {
		t.Errorf("unexpected message: %q", res.ErrorMessage)
	}
}

func TestHuggingFaceImageAdapter_UnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "not an image")
	}))
	defer srv.Close()

	a := NewHuggingFaceImageAdapter(hfParams(srv.URL), &scriptedLLM{})
	res := a.GenerateImage(context.Background(), "a fox", "")

	if !res.Error {
		t.Fatal("expected error envelope")
	}
	if !strings.Contains(res.ErrorMessage, "[IAIG-E030]") {
		t.Errorf("unexpected message: %q", res.ErrorMessage)
	}
}
