package schema

import "context"

// Capability identifies which kind of generation an adapter performs.
type Capability string

const (
	CapabilityText  Capability = "text"
	CapabilityImage Capability = "image"
	CapabilityVideo Capability = "video"
)

// TextGenerator is the interface every text-capable adapter must satisfy.
//
// Query composes the canonical messages from systemPrompt and userInput
// (running the enhancement pass first when enhancementText is non-empty),
// issues the provider call, and returns the universal envelope. It never
// returns a Go error: every expected failure lands in the ResultSet.
type TextGenerator interface {
	Query(ctx context.Context, systemPrompt, userInput, enhancementText string, unified bool) ResultSet
}

// ImageGenerator is implemented by adapters that turn a prompt into one or
// more image URLs, reported through ResultSet.ImageURLs.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, userInput, enhancementText string) ResultSet
}

// VideoGenerator is implemented by submit-then-poll video backends.
// GenerateVideo performs the submission; FollowUp drives the bounded polling
// loop against the submission result and sets ResultSet.VideoURL on success.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, userInput, enhancementText string) ResultSet
	FollowUp(ctx context.Context, submission ResultSet) ResultSet
}
