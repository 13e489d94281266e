package schema

import "time"

// JobStatus enumerates the lifecycle states of an asynchronous generation job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Job tracks one submit-then-poll generation between submission and a
// terminal state. It is created on a successful submission, mutated only by
// the poller, and discarded once terminal; persisting it is the caller's
// responsibility.
type Job struct {
	RequestID   string
	Status      JobStatus
	VideoURL    string
	Attempts    int
	MaxAttempts int
	Wait        time.Duration
}

// NewJob returns a pending job for the given provider request id.
func NewJob(requestID string, maxAttempts int, wait time.Duration) *Job {
	return &Job{
		RequestID:   requestID,
		Status:      JobPending,
		MaxAttempts: maxAttempts,
		Wait:        wait,
	}
}

// Terminal reports whether the job has reached a final state.
func (j *Job) Terminal() bool {
	return j.Status == JobSucceeded || j.Status == JobFailed
}
