package templates

import "github.com/yejunhao159/promptstack/pkg/layers"

// Compile-time check that Compact implements Template.
var _ Template = Compact{}

// Compact composes only the role and current layers, for single-shot prompts
// that carry no tool list or history.
type Compact struct{}

// NewCompact creates the compact template.
func NewCompact() Compact {
	return Compact{}
}

func (Compact) ID() string   { return "compact" }
func (Compact) Name() string { return "Compact" }

func (Compact) Description() string {
	return "Role and current query only, for single-shot prompts."
}

// Build returns the formatter sequence for the supplied layers. Tools and
// conversation input is ignored.
func (Compact) Build(in Input) []layers.Formatter {
	var fs []layers.Formatter

	if in.Role != "" {
		fs = append(fs, layers.NewRole(in.Role))
	}
	if in.Current != "" {
		fs = append(fs, layers.NewCurrent(in.Current))
	}

	return fs
}
