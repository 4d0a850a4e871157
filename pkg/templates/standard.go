package templates

import "github.com/yejunhao159/promptstack/pkg/layers"

// Compile-time check that Standard implements Template.
var _ Template = Standard{}

// Standard composes the four layers in the fixed order role → tools →
// conversation → current. Absent input fields are skipped rather than
// producing empty layers.
type Standard struct{}

// NewStandard creates the standard template.
func NewStandard() Standard {
	return Standard{}
}

func (Standard) ID() string   { return "standard" }
func (Standard) Name() string { return "Standard" }

func (Standard) Description() string {
	return "Role, tools, conversation and current query in fixed order."
}

// Build returns the formatter sequence for the supplied layers.
func (Standard) Build(in Input) []layers.Formatter {
	var fs []layers.Formatter

	if in.Role != "" {
		fs = append(fs, layers.NewRole(in.Role))
	}
	if len(in.Tools) > 0 {
		fs = append(fs, layers.NewTools(in.Tools))
	}
	if len(in.Conversation) > 0 {
		fs = append(fs, layers.NewConversation(in.Conversation...))
	}
	if in.Current != "" {
		fs = append(fs, layers.NewCurrent(in.Current))
	}

	return fs
}
