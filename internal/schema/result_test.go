package schema

import (
	"encoding/json"
	"testing"
)

func TestResultSet_JSONFieldNames(t *testing.T) {
	refined := "refined"
	rs := ResultSet{
		Response:      "hello",
		RefinedPrompt: &refined,
		VideoURL:      "https://videos.example/v.mp4",
	}
	data, err := json.Marshal(rs)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"error", "error_message", "response", "refined_prompt", "video_url"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing envelope field %q", key)
		}
	}
}

func TestResultSet_RefinedPromptNullWhenUnset(t *testing.T) {
	data, err := json.Marshal(NewResultSet())
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if v, ok := m["refined_prompt"]; !ok || v != nil {
		t.Errorf("refined_prompt must be present and null, got %v (present=%v)", v, ok)
	}
	if _, ok := m["video_url"]; ok {
		t.Error("video_url must be omitted when empty")
	}
}

func TestErrorResultAndErrorf(t *testing.T) {
	rs := ErrorResult("boom")
	if !rs.Error || rs.ErrorMessage != "boom" {
		t.Errorf("unexpected result: %+v", rs)
	}
	rs = Errorf("failed after %d tries", 3)
	if rs.ErrorMessage != "failed after 3 tries" {
		t.Errorf("unexpected message: %q", rs.ErrorMessage)
	}
}

func TestResultSet_Text(t *testing.T) {
	rs := NewResultSet()
	rs.Response = "plain"
	if rs.Text() != "plain" {
		t.Errorf("unexpected text %q", rs.Text())
	}
	rs.Response = map[string]any{"message": "x"}
	if rs.Text() != "" {
		t.Errorf("non-string response must read as empty text, got %q", rs.Text())
	}
}

func TestJob_Lifecycle(t *testing.T) {
	job := NewJob("req-1", 10, 0)
	if job.Status != JobPending || job.Terminal() {
		t.Fatalf("new job must be pending and non-terminal: %+v", job)
	}
	job.Status = JobSucceeded
	if !job.Terminal() {
		t.Error("succeeded job must be terminal")
	}
	job.Status = JobFailed
	if !job.Terminal() {
		t.Error("failed job must be terminal")
	}
}
