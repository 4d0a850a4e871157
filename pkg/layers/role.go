package layers

import (
	"strings"

	"github.com/yejunhao159/promptstack/pkg/chats/message"
	"github.com/yejunhao159/promptstack/pkg/chats/role"
)

// Compile-time check that Role implements Formatter.
var _ Formatter = Role{}

// Role formats the persona layer: the system instruction that sets the
// assistant's identity.
type Role struct {
	content string
}

// NewRole creates a role layer from the raw persona string.
func NewRole(persona string) Role {
	return Role{content: strings.TrimSpace(persona)}
}

// XML wraps the persona in a <role> tag.
func (r Role) XML() string {
	return "<role>" + r.content + "</role>"
}

// Messages returns one system message carrying the persona, or none if the
// input was blank.
func (r Role) Messages() []message.Message {
	if r.content == "" {
		return nil
	}
	return []message.Message{message.New(role.System, r.content)}
}
