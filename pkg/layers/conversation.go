package layers

import (
	"strings"

	"github.com/yejunhao159/promptstack/pkg/chats/message"
	"github.com/yejunhao159/promptstack/pkg/chats/role"
)

// Compile-time check that Conversation implements Formatter.
var _ Formatter = Conversation{}

// Conversation formats the prior-turns layer. Turns alternate between user
// and assistant by position: even indexes are user, odd are assistant.
// Alternation is assigned after blank turns are filtered out.
type Conversation struct {
	turns []string
}

// NewConversation creates a conversation layer from the given turns. A
// single argument is the single-string input shape and becomes one user
// turn.
func NewConversation(turns ...string) Conversation {
	return Conversation{turns: filterBlank(turns)}
}

// XML wraps the turns, one per line, in a <conversation> tag.
func (c Conversation) XML() string {
	return "<conversation>\n" + strings.Join(c.turns, "\n") + "\n</conversation>"
}

// Messages returns one message per surviving turn, alternating user and
// assistant starting at user.
func (c Conversation) Messages() []message.Message {
	if len(c.turns) == 0 {
		return nil
	}

	msgs := make([]message.Message, 0, len(c.turns))
	for i, turn := range c.turns {
		r := role.User
		if i%2 == 1 {
			r = role.Assistant
		}
		msgs = append(msgs, message.New(r, turn))
	}
	return msgs
}
