package schema

import "fmt"

// ResultSet is the universal return envelope of every public adapter
// operation. Expected-failure conditions (transport errors, non-success HTTP
// statuses, provider-reported failures, malformed payloads) are reported
// through Error/ErrorMessage rather than a Go error, so the caller always
// receives one shape it can render directly.
//
// RefinedPrompt is nil when no enhancement pass ran or when the pass produced
// no change.
type ResultSet struct {
	Error         bool     `json:"error"`
	ErrorMessage  string   `json:"error_message"`
	Response      any      `json:"response"`
	RefinedPrompt *string  `json:"refined_prompt"`
	VideoURL      string   `json:"video_url,omitempty"`
	ImageURLs     []string `json:"image_urls,omitempty"`
}

// NewResultSet returns an empty, non-error ResultSet.
func NewResultSet() ResultSet {
	return ResultSet{}
}

// ErrorResult returns a ResultSet carrying the given error message.
func ErrorResult(msg string) ResultSet {
	return ResultSet{Error: true, ErrorMessage: msg}
}

// Errorf returns an error ResultSet with a formatted message.
func Errorf(format string, args ...any) ResultSet {
	return ErrorResult(fmt.Sprintf(format, args...))
}

// Text returns Response as a string when it holds one, or "" otherwise.
func (r ResultSet) Text() string {
	if s, ok := r.Response.(string); ok {
		return s
	}
	return ""
}
