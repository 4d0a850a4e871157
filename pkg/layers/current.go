package layers

import (
	"strings"

	"github.com/yejunhao159/promptstack/pkg/chats/message"
	"github.com/yejunhao159/promptstack/pkg/chats/role"
)

// Compile-time check that Current implements Formatter.
var _ Formatter = Current{}

// Current formats the active-query layer: the user message the model is
// being asked to answer now.
type Current struct {
	content string
}

// NewCurrent creates a current layer from the raw query string.
func NewCurrent(query string) Current {
	return Current{content: strings.TrimSpace(query)}
}

// XML wraps the query in a <current> tag.
func (c Current) XML() string {
	return "<current>" + c.content + "</current>"
}

// Messages returns one user message carrying the query, or none if the input
// was blank.
func (c Current) Messages() []message.Message {
	if c.content == "" {
		return nil
	}
	return []message.Message{message.New(role.User, c.content)}
}
