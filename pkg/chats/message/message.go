// Package message defines the Message type used in LLM conversations.
package message

import "github.com/yejunhao159/promptstack/pkg/chats/role"

// Message represents a single role-tagged message in a conversation.
// It is a value type that copies cheaply and is immutable once produced.
type Message struct {
	Role    role.Role
	Content string
}

// New creates a message with the given role and content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}

// IsEmpty reports whether the message carries no content.
func (m Message) IsEmpty() bool {
	return m.Content == ""
}
