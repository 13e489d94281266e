package schema

// Messages is the ordered canonical message sequence handed to an adapter.
// It owns typed append methods so callers never construct raw maps.
type Messages struct {
	Messages []Message
}

// NewMessages returns an empty Messages ready for use.
func NewMessages() Messages {
	return Messages{Messages: make([]Message, 0)}
}

// AddSystem appends a system message.
func (mh *Messages) AddSystem(content string) {
	mh.Messages = append(mh.Messages, NewSystemMessage(content))
}

// AddUser appends a user message.
func (mh *Messages) AddUser(content string) {
	mh.Messages = append(mh.Messages, NewUserMessage(content))
}

// Len returns the number of messages.
func (mh Messages) Len() int { return len(mh.Messages) }

// WireMaps serialises the sequence into the role/content maps every supported
// provider accepts on the wire.
func (mh Messages) WireMaps() []map[string]any {
	out := make([]map[string]any, 0, len(mh.Messages))
	for _, m := range mh.Messages {
		out = append(out, map[string]any{
			"role":    m.Role,
			"content": m.Content,
		})
	}
	return out
}
