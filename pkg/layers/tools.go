package layers

import (
	"strings"

	"github.com/yejunhao159/promptstack/pkg/chats/message"
	"github.com/yejunhao159/promptstack/pkg/chats/role"
)

// toolsPrefix heads the tools system message so the model can tell the tool
// list apart from the persona instruction.
const toolsPrefix = "available tools:"

// Compile-time check that Tools implements Formatter.
var _ Formatter = Tools{}

// Tools formats the tool-list layer: one description line per tool.
type Tools struct {
	joined string
}

// NewTools creates a tools layer from raw description lines. Blank entries
// are dropped and the rest are trimmed and joined with newlines.
func NewTools(entries []string) Tools {
	return Tools{joined: strings.Join(filterBlank(entries), "\n")}
}

// XML wraps the joined tool list in a <tools> tag.
func (t Tools) XML() string {
	return "<tools>\n" + t.joined + "\n</tools>"
}

// Messages returns one system message listing the tools, or none if no tool
// survived filtering.
func (t Tools) Messages() []message.Message {
	if t.joined == "" {
		return nil
	}
	return []message.Message{message.New(role.System, toolsPrefix+"\n"+t.joined)}
}
