package providers

import (
	"strings"

	"github.com/promptloom/promptloom/internal/schema"
)

// QuestionToken is the substitution marker a system prompt may embed to have
// the user input spliced into it verbatim.
const QuestionToken = "{question}"

// ComposeMessages builds the canonical message sequence from a system prompt
// and user input.
//
// Unified composition is forced whenever the system prompt is empty or
// carries the QuestionToken. In unified mode the result is a single user
// message: the token substitution when present, otherwise system prompt and
// user input joined with a newline, otherwise the user input alone. In split
// mode the result is a system message followed by a user message. All content
// is trimmed of surrounding whitespace.
//
// Pure function over strings; it has no error conditions.
func ComposeMessages(systemPrompt, userInput string, unified bool) schema.Messages {
	if systemPrompt == "" || strings.Contains(systemPrompt, QuestionToken) {
		unified = true
	}
	if unified {
		var content string
		switch {
		case strings.Contains(systemPrompt, QuestionToken):
			content = strings.ReplaceAll(systemPrompt, QuestionToken, userInput)
		case systemPrompt != "":
			content = systemPrompt + "\n" + userInput
		default:
			content = userInput
		}
		msgs := schema.NewMessages()
		msgs.AddUser(strings.TrimSpace(content))
		return msgs
	}
	msgs := schema.NewMessages()
	msgs.AddSystem(strings.TrimSpace(systemPrompt))
	msgs.AddUser(strings.TrimSpace(userInput))
	return msgs
}
