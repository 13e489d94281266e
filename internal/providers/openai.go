package providers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/promptloom/promptloom/internal/schema"
	"github.com/promptloom/promptloom/internal/shared/stringutils"
)

const defaultOpenAIBase = "https://api.openai.com/v1"

// base carries the per-request state shared by every adapter: the request
// configuration, the registry spec and a logger tagged with a correlation id.
type base struct {
	params Params
	spec   *ProviderSpec
	log    *slog.Logger
}

func newBase(p Params) base {
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}
	return base{
		params: p,
		spec:   FindByName(p.Provider),
		log:    log.With("provider", p.Provider, "call_id", uuid.NewString()),
	}
}

func (b *base) naming() map[string]string {
	if b.params.Naming != nil {
		return b.params.Naming
	}
	return DefaultNaming()
}

// modelArgs merges caller overrides over the request configuration and maps
// the result to wire names and types. Caller-supplied values win.
func (b *base) modelArgs(extra map[string]any, forWireAPI bool) map[string]any {
	merged := b.params.canonical()
	for k, v := range extra {
		merged[k] = v
	}
	return MapParams(merged, b.naming(), forWireAPI)
}

// httpClient returns the transport client for one call. Nothing is shared
// across calls; configuration is read-only input.
func (b *base) httpClient() *http.Client {
	return &http.Client{Timeout: 180 * time.Second}
}

// OpenAIAdapter performs chat completions against any OpenAI-compatible
// endpoint. OpenAI, Groq, NVIDIA, Ollama, the Hugging Face router and
// Rhymes Aria all ride this path with family-specific defaults merged in by
// the selector.
type OpenAIAdapter struct {
	base
}

func NewOpenAIAdapter(p Params) *OpenAIAdapter {
	return &OpenAIAdapter{base: newBase(p)}
}

// Query implements schema.TextGenerator.
func (a *OpenAIAdapter) Query(ctx context.Context, systemPrompt, userInput, enhancementText string, unified bool) schema.ResultSet {
	pam, errRes := promptsAndMessages(ctx, a, systemPrompt, userInput, enhancementText, unified)
	if errRes != nil {
		return *errRes
	}

	wire := a.modelArgs(map[string]any{
		keyMessages: pam.Messages.WireMaps(),
	}, true)

	a.log.Debug("chat completion request",
		"model", wire[keyModel], "messages", pam.Messages.Len())
	res := callChatAPI(ctx, a.httpClient(), wire)
	res.RefinedPrompt = pam.RefinedPrompt
	a.log.Debug("chat completion response",
		"error", res.Error, "content", stringutils.Truncate(res.Text(), 120))
	return res
}

// callChatAPI issues one OpenAI-compatible chat completion from mapped wire
// parameters. Every expected failure — an unusable base URL, a transport
// error, a non-200 status, an unrecognised payload — is converted into the
// canonical error envelope, never raised.
func callChatAPI(ctx context.Context, client *http.Client, wire map[string]any) schema.ResultSet {
	baseURL, _ := wire[keyBaseURL].(string)
	if baseURL == "" {
		baseURL = defaultOpenAIBase
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return schema.Errorf("client construction failed: %v", err)
	}
	apiKey, _ := wire[keyAPIKey].(string)

	body := make(map[string]any, len(wire))
	for k, v := range wire {
		switch k {
		case keyProvider, keyAPIKey, keyBaseURL:
			continue // client configuration, not request body
		case keyStop:
			// Never send an empty stop list.
			if !truthy(v) {
				continue
			}
		}
		body[k] = v
	}
	streaming := body[keyStream] == true

	data, err := json.Marshal(body)
	if err != nil {
		return schema.Errorf("marshal request: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(baseURL, "/")+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return schema.Errorf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return schema.Errorf("%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return schema.Errorf("request failed with status code %d: %s",
			resp.StatusCode, stringutils.Truncate(strings.TrimSpace(string(raw)), 300))
	}

	if streaming {
		return readChatStream(resp.Body)
	}
	return readChatCompletion(resp.Body)
}

// chatRespBody is the subset of the chat completion response we care about.
type chatRespBody struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func readChatCompletion(r io.Reader) schema.ResultSet {
	raw, err := io.ReadAll(r)
	if err != nil {
		return schema.Errorf("read response: %v", err)
	}
	var body chatRespBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return schema.ErrorResult("unexpected response type received from chat completion API")
	}
	if len(body.Choices) == 0 {
		return schema.ErrorResult("unexpected response type received from chat completion API")
	}
	res := schema.NewResultSet()
	res.Response = body.Choices[0].Message.Content
	return res
}

// readChatStream concatenates incremental SSE content chunks in arrival
// order into the final text.
func readChatStream(r io.Reader) schema.ResultSet {
	var sb strings.Builder
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return schema.Errorf("read stream: %v", err)
		}
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}
		var chunk struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue // partial line, keep going
		}
		if len(chunk.Choices) > 0 {
			sb.WriteString(chunk.Choices[0].Delta.Content)
		}
	}
	res := schema.NewResultSet()
	res.Response = sb.String()
	return res
}

// OpenAIImageAdapter generates images through the DALL-E style
// /images/generations endpoint. The enhancement pass runs through a separate
// text adapter since image endpoints cannot rewrite prompts.
type OpenAIImageAdapter struct {
	base
	llm     schema.TextGenerator
	size    string
	quality string
}

func NewOpenAIImageAdapter(p Params, llm schema.TextGenerator) *OpenAIImageAdapter {
	size := p.ImageSize
	if size == "" {
		size = "1024x1024"
	}
	return &OpenAIImageAdapter{
		base:    newBase(p),
		llm:     llm,
		size:    size,
		quality: p.ImageQuality,
	}
}

// GenerateImage implements schema.ImageGenerator.
func (a *OpenAIImageAdapter) GenerateImage(ctx context.Context, userInput, enhancementText string) schema.ResultSet {
	pam, errRes := promptsAndMessages(ctx, a.llm, "", userInput, enhancementText, true)
	if errRes != nil {
		return *errRes
	}

	payload := map[string]any{
		keyModel: a.params.ModelName,
		"prompt": pam.UserInput,
		"size":   a.size,
		"n":      1,
	}
	if a.quality != "" {
		payload["quality"] = a.quality
	}

	baseURL := a.params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBase
	}
	a.log.Debug("image generation request", "model", a.params.ModelName)

	data, err := json.Marshal(payload)
	if err != nil {
		return schema.Errorf("marshal request: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(baseURL, "/")+"/images/generations", bytes.NewReader(data))
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

	var body struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Data) == 0 {
		res := schema.ErrorResult(
			"ERROR [IAIG-E030] unexpected response type received from image generation API")
		res.RefinedPrompt = pam.RefinedPrompt
		return res
	}

	urls := make([]string, 0, len(body.Data))
	for _, img := range body.Data {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	res := schema.NewResultSet()
	res.Response = urls
	res.ImageURLs = urls
	res.RefinedPrompt = pam.RefinedPrompt
	return res
}
