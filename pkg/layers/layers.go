// Package layers implements the per-layer formatters that turn raw
// contextual input — a persona, a tool list, prior conversation turns, the
// active user query — into markup fragments and role-tagged messages.
//
// Every formatter derives both projections from the same normalized content,
// so the markup and the message list never disagree. Formatters are built
// fresh per composition, are immutable after construction, and never fail:
// blank input degrades to an empty tag body and zero messages.
package layers

import (
	"strings"

	"github.com/yejunhao159/promptstack/pkg/chats/message"
)

// Formatter converts one layer's input into its two projections.
type Formatter interface {
	// XML returns the layer content wrapped in the layer-named tag.
	XML() string
	// Messages returns the role-tagged messages the layer contributes.
	// A blank layer contributes none.
	Messages() []message.Message
}

// filterBlank trims each entry and drops the ones that are empty afterwards.
// Role alternation in the conversation layer is computed on the returned
// slice, so a dropped blank never shifts the user/assistant assignment.
func filterBlank(entries []string) []string {
	var out []string
	for _, e := range entries {
		if s := strings.TrimSpace(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}
