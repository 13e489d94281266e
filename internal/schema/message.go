package schema

// Message roles. The orchestration core only ever emits system and user
// messages; assistant turns live in the caller's conversation store.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry in the canonical message sequence sent to a provider.
//
// Ordering is significant: at most one system message, and when present it is
// always first.
type Message struct {
	Role    string
	Content string
}

func NewSystemMessage(content string) Message {
	return Message{
		Role:    RoleSystem,
		Content: content,
	}
}

func NewUserMessage(content string) Message {
	return Message{
		Role:    RoleUser,
		Content: content,
	}
}
