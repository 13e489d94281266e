package providers

import (
	"context"
	"strings"

	"github.com/promptloom/promptloom/internal/schema"
)

// DefaultEnhancementText is the built-in instruction for the prompt
// enhancement pass, used when the caller supplies no preset of its own.
const DefaultEnhancementText = "You are a prompt engineer. Rewrite the " +
	"following prompt to be clearer, more specific and more effective for a " +
	"generative AI model. Keep the original intent. Answer only with the " +
	"rewritten prompt, without explanations."

// promptLabels are the literal artifacts enhancement models tend to prepend
// to their output. Order matters: longer variants are stripped first.
var promptLabels = []string{
	"Refined Prompt:",
	"Enhanced Prompt (Output):",
	"Enhanced Prompt:",
	"**Enhanced Prompt**:",
	"**Enhanced Prompt**",
}

// CleanRefinedPrompt strips known label artifacts, embedded newlines and
// quote characters from an enhancement model's output so it can be used as a
// plain prompt string.
func CleanRefinedPrompt(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	for _, label := range promptLabels {
		s = strings.ReplaceAll(s, label, "")
	}
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, `"`, "")
}

// enhancePrompt issues the secondary rewrite call through llm, using the
// enhancement instructions as system prompt and the candidate text as user
// input, and cleans the rewritten text. An inner adapter failure is returned
// unchanged.
func enhancePrompt(ctx context.Context, llm schema.TextGenerator, candidate, instructions string) schema.ResultSet {
	if instructions == "" {
		instructions = DefaultEnhancementText
	}
	res := llm.Query(ctx, instructions, candidate, "", false)
	if res.Error {
		return res
	}
	out := schema.NewResultSet()
	out.Response = CleanRefinedPrompt(res.Text())
	return out
}

// promptSet is the outcome of the enhancement-plus-composition stage that
// precedes every primary provider call.
type promptSet struct {
	SystemPrompt  string
	UserInput     string
	Messages      schema.Messages
	RefinedPrompt *string // nil when enhancement was skipped or changed nothing
}

// promptsAndMessages runs the optional enhancement pass and then composes the
// canonical messages. With a system prompt present only the system prompt is
// enhanced; otherwise the user input itself is. The enhanced text replaces
// the original only when it actually differs. A system prompt consisting of
// the bare QuestionToken counts as absent for enhancement targeting.
//
// The second return value is non-nil when the inner enhancement call failed;
// callers return it unchanged.
func promptsAndMessages(ctx context.Context, llm schema.TextGenerator, systemPrompt, userInput, enhancementText string, unified bool) (promptSet, *schema.ResultSet) {
	ps := promptSet{SystemPrompt: systemPrompt, UserInput: userInput}
	if systemPrompt == QuestionToken {
		ps.SystemPrompt = ""
	}

	if enhancementText == "" {
		ps.Messages = ComposeMessages(ps.SystemPrompt, ps.UserInput, unified)
		return ps, nil
	}

	switch {
	case ps.SystemPrompt != "":
		res := enhancePrompt(ctx, llm, ps.SystemPrompt, enhancementText)
		if res.Error {
			return ps, &res
		}
		if refined := res.Text(); refined != ps.SystemPrompt {
			ps.RefinedPrompt = &refined
			ps.SystemPrompt = refined
		}
	case ps.UserInput != "":
		res := enhancePrompt(ctx, llm, ps.UserInput, enhancementText)
		if res.Error {
			return ps, &res
		}
		if refined := res.Text(); refined != ps.UserInput {
			ps.RefinedPrompt = &refined
			ps.UserInput = refined
		}
	}

	ps.Messages = ComposeMessages(ps.SystemPrompt, ps.UserInput, unified)
	return ps, nil
}
