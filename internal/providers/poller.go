package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/promptloom/promptloom/internal/schema"
)

// Poller defaults. Timeout semantics are attempt-count-based, not wall-clock:
// the budget is a fixed number of status checks with a fixed pause between
// them.
const (
	DefaultMaxAttempts = 10
	DefaultWait        = 60 * time.Second
)

// PollStatus is the interpreted outcome of one status-check call. VideoURL is
// non-empty only when the provider reported a recognised success token
// together with a result payload.
type PollStatus struct {
	Result   schema.ResultSet
	VideoURL string
}

// StatusFunc performs one provider status check.
type StatusFunc func(ctx context.Context) PollStatus

// Poller drives the bounded retry loop between submission and completion of
// an asynchronous generation job.
type Poller struct {
	MaxAttempts int
	Wait        time.Duration
	Log         *slog.Logger
}

// Run polls check until success, a hard failure, cancellation, or exhaustion
// of the attempt budget.
//
// A status check that itself errors fails the job immediately and its result
// propagates unchanged. A success is returned on the iteration it is
// detected, without sleeping first. Between non-terminal checks the loop
// pauses for the configured interval; cancelling ctx during the pause fails
// the job with a cancellation message.
func (p Poller) Run(ctx context.Context, job *schema.Job, check StatusFunc) schema.ResultSet {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	wait := p.Wait
	if wait <= 0 {
		wait = DefaultWait
	}
	log := p.Log
	if log == nil {
		log = slog.Default()
	}

	var last schema.ResultSet
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		job.Attempts = attempt
		log.Debug("video generation status check",
			"request_id", job.RequestID, "attempt", attempt, "max_attempts", maxAttempts)

		st := check(ctx)
		last = st.Result
		if st.Result.Error {
			job.Status = schema.JobFailed
			return st.Result
		}
		if st.VideoURL != "" {
			job.Status = schema.JobSucceeded
			job.VideoURL = st.VideoURL
			res := st.Result
			res.VideoURL = st.VideoURL
			return res
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			job.Status = schema.JobFailed
			return schema.Errorf("video generation cancelled (request_id: %s): %v",
				job.RequestID, ctx.Err())
		}
	}

	job.Status = schema.JobFailed
	res := schema.Errorf(
		"ERROR E-500: Video generation failed (request_id: %s, last response: %v)",
		job.RequestID, last.Response)
	return res
}
