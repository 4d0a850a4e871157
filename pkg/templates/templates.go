// Package templates defines the template capability: a named, ordered
// composition policy over the context layers.
package templates

import "github.com/yejunhao159/promptstack/pkg/layers"

// Input carries the raw per-layer payloads a template composes. Every field
// is optional; a zero-valued field is a layer the caller did not supply and
// contributes nothing to the output.
type Input struct {
	// Role is the persona/system instruction.
	Role string
	// Tools holds one description line per available tool.
	Tools []string
	// Conversation holds prior turns, alternating user/assistant starting
	// at user. A single-element slice is one user turn.
	Conversation []string
	// Current is the active user query.
	Current string
}

// Metadata describes a registered template.
type Metadata struct {
	ID          string
	Name        string
	Description string
}

// Template is a named composition policy. Build composes the input into an
// ordered sequence of layer formatters; it must be pure — identical input
// yields formatters producing identical projections.
type Template interface {
	ID() string
	Name() string
	Description() string
	Build(in Input) []layers.Formatter
}
