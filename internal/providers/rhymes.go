package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/promptloom/promptloom/internal/schema"
	"github.com/promptloom/promptloom/internal/shared/stringutils"
)

// Allegro endpoint paths under the Rhymes API base.
const (
	allegroSubmitPath = "/generateVideoSyn"
	allegroStatusPath = "/videoQuery"
)

// Allegro generation defaults.
const (
	allegroNumSteps = 50
	allegroCfgScale = 7.5
)

// AllegroAdapter drives Rhymes' asynchronous text-to-video API: a submission
// call that returns a request id, then repeated status checks through the
// poller until the video URL is ready.
//
// Text queries (including the enhancement pass) are delegated to a separate
// Aria text adapter, since the video model cannot answer chat requests.
type AllegroAdapter struct {
	base
	llm    schema.TextGenerator
	poller Poller
}

func NewAllegroAdapter(p Params, llm schema.TextGenerator) *AllegroAdapter {
	b := newBase(p)
	return &AllegroAdapter{
		base: b,
		llm:  llm,
		poller: Poller{
			MaxAttempts: p.MaxAttempts,
			Wait:        p.Wait,
			Log:         b.log,
		},
	}
}

// Query implements schema.TextGenerator by delegating to the text adapter.
func (a *AllegroAdapter) Query(ctx context.Context, systemPrompt, userInput, enhancementText string, unified bool) schema.ResultSet {
	return a.llm.Query(ctx, systemPrompt, userInput, enhancementText, unified)
}

// GenerateVideo implements schema.VideoGenerator. It runs the optional
// enhancement pass, submits the generation request, and interprets the
// submission response. The poller is never invoked here; callers pass the
// returned submission to FollowUp.
func (a *AllegroAdapter) GenerateVideo(ctx context.Context, userInput, enhancementText string) schema.ResultSet {
	pam, errRes := promptsAndMessages(ctx, a.llm, "", userInput, enhancementText, true)
	if errRes != nil {
		return *errRes
	}

	var refined any
	if pam.RefinedPrompt != nil {
		refined = *pam.RefinedPrompt
	}
	payload := map[string]any{
		"refined_prompt": refined,
		"user_prompt":    userInput,
		"num_step":       allegroNumSteps,
		"rand_seed":      time.Now().Unix(),
		"cfg_scale":      allegroCfgScale,
	}

	a.log.Debug("video generation submission", "prompt", stringutils.Truncate(userInput, 120))
	res := a.call(ctx, http.MethodPost, allegroSubmitPath, nil, payload)
	res.RefinedPrompt = pam.RefinedPrompt
	if res.Error {
		return res
	}

	// A response with data but no message still counts as accepted; only a
	// non-success message or a missing request id rejects the submission.
	message, data := statusFields(res.Response)
	if (message != "" && !a.successToken(message)) || data == "" {
		if message == "" {
			message = "No message and no data"
		}
		res.Error = true
		res.ErrorMessage = message
	}
	return res
}

// FollowUp implements schema.VideoGenerator. It extracts the request id from
// the submission result and drives the bounded polling loop until the video
// URL is available, the budget is exhausted, or a check fails hard.
func (a *AllegroAdapter) FollowUp(ctx context.Context, submission schema.ResultSet) schema.ResultSet {
	_, requestID := statusFields(submission.Response)
	if requestID == "" {
		return schema.ErrorResult("missing request id in submission response")
	}

	job := schema.NewJob(requestID, a.poller.MaxAttempts, a.poller.Wait)
	check := func(ctx context.Context) PollStatus {
		query := url.Values{"requestId": {requestID}}
		res := a.call(ctx, http.MethodGet, allegroStatusPath, query, nil)
		if res.Error {
			return PollStatus{Result: res}
		}
		message, data := statusFields(res.Response)
		if a.successToken(message) && data != "" {
			return PollStatus{Result: res, VideoURL: data}
		}
		return PollStatus{Result: res}
	}
	return a.poller.Run(ctx, job, check)
}

// call performs one Allegro HTTP round trip and decodes the JSON payload.
// The Rhymes video API authenticates with the raw key, not a Bearer scheme.
func (a *AllegroAdapter) call(ctx context.Context, method, path string, query url.Values, payload map[string]any) schema.ResultSet {
	baseURL := a.params.BaseURL
	if baseURL == "" && a.spec != nil {
		baseURL = a.spec.DefaultAPIBase
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return schema.Errorf("client construction failed: %v", err)
	}
	apiURL := strings.TrimRight(baseURL, "/") + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return schema.Errorf("marshal request: %v", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, bodyReader)
	if err != nil {
		return schema.Errorf("build request: %v", err)
	}
	key := a.params.VideoAPIKey
	if key == "" {
		key = a.params.APIKey
	}
	if a.spec != nil && a.spec.RawAuth {
		req.Header.Set("Authorization", key)
	} else {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return schema.Errorf("%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return schema.Errorf("request failed with status code %d", resp.StatusCode)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return schema.ErrorResult("unexpected response type received from video generation API")
	}
	res := schema.NewResultSet()
	res.Response = decoded
	return res
}

func (a *AllegroAdapter) successToken(message string) bool {
	tokens := rhymesSuccessTokens
	if a.spec != nil && len(a.spec.SuccessTokens) > 0 {
		tokens = a.spec.SuccessTokens
	}
	for _, t := range tokens {
		if message == t {
			return true
		}
	}
	return false
}

// statusFields extracts the {message, data} pair both the submission and
// status-check responses carry. Non-string or missing fields read as empty.
func statusFields(resp any) (message, data string) {
	m, ok := resp.(map[string]any)
	if !ok {
		return "", ""
	}
	message, _ = m["message"].(string)
	data, _ = m["data"].(string)
	return message, data
}
