package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/promptloom/promptloom/internal/schema"
	"github.com/promptloom/promptloom/internal/shared/stringutils"
)

// HuggingFaceImageAdapter generates images through the Hugging Face inference
// API, which returns raw image bytes rather than hosted URLs. The bytes are
// wrapped into a data URL so the caller still receives a URL list.
//
// Text generation for this family rides the router's OpenAI-compatible
// endpoint through OpenAIAdapter; only image generation needs its own path.
type HuggingFaceImageAdapter struct {
	base
	llm schema.TextGenerator
}

func NewHuggingFaceImageAdapter(p Params, llm schema.TextGenerator) *HuggingFaceImageAdapter {
	return &HuggingFaceImageAdapter{base: newBase(p), llm: llm}
}

// GenerateImage implements schema.ImageGenerator.
func (a *HuggingFaceImageAdapter) GenerateImage(ctx context.Context, userInput, enhancementText string) schema.ResultSet {
	pam, errRes := promptsAndMessages(ctx, a.llm, "", userInput, enhancementText, true)
	if errRes != nil {
		return *errRes
	}

	baseURL := a.params.BaseURL
	if baseURL == "" && a.spec != nil {
		baseURL = a.spec.ImageAPIBase
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return schema.Errorf("client construction failed: %v", err)
	}

	payload := map[string]any{"inputs": pam.UserInput}
	data, err := json.Marshal(payload)
	if err != nil {
		return schema.Errorf("marshal request: %v", err)
	}

	apiURL := strings.TrimRight(baseURL, "/") + "/" + a.params.ModelName
	a.log.Debug("image generation request", "model", a.params.ModelName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(data))
	if err != nil {
		return schema.Errorf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.params.APIKey)

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return schema.Errorf("%v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return schema.Errorf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return schema.Errorf("request failed with status code %d: %s",
			resp.StatusCode, stringutils.Truncate(strings.TrimSpace(string(raw)), 300))
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		// The inference API reports model errors as JSON with 200 on some
		// routes; surface the provider's own message when present.
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
			return schema.ErrorResult(apiErr.Error)
		}
		res := schema.ErrorResult(
			"ERROR [IAIG-E030] unexpected response type received from image generation API")
		res.RefinedPrompt = pam.RefinedPrompt
		return res
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s",
		contentType, base64.StdEncoding.EncodeToString(raw))
	res := schema.NewResultSet()
	res.Response = []string{dataURL}
	res.ImageURLs = []string{dataURL}
	res.RefinedPrompt = pam.RefinedPrompt
	return res
}
