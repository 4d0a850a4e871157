// Package composer is the entry point for turning a template id and layer
// input into either a markup document or a role-tagged message list.
//
// Both projections are produced from the same built layer sequence, so for
// any input the markup and the message list carry the same logical content.
package composer

import (
	"fmt"
	"strings"

	"github.com/yejunhao159/promptstack/pkg/chats/message"
	"github.com/yejunhao159/promptstack/pkg/layers"
	"github.com/yejunhao159/promptstack/pkg/registry"
	"github.com/yejunhao159/promptstack/pkg/templates"
)

// NotFoundError reports a request for a template id that is not registered.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("composer: template %q not found", e.ID)
}

// Composer resolves templates from a registry and projects the built layer
// sequence into markup or messages. It performs no input validation of its
// own — the layer formatters absorb malformed input instead of failing — so
// an unknown template id is its only error.
type Composer struct {
	reg *registry.Manager
}

// New creates a Composer backed by the given registry.
func New(reg *registry.Manager) *Composer {
	return &Composer{reg: reg}
}

// FromTemplate renders the composite markup document: each layer's XML in
// build order, joined by newlines. Returns a *NotFoundError if id is not
// registered.
func (c *Composer) FromTemplate(id string, in templates.Input) (string, error) {
	fs, err := c.build(id, in)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.XML()
	}

	return strings.Join(parts, "\n"), nil
}

// FromTemplateAsMessages flattens each layer's messages in build order into
// one ordered list. Returns a *NotFoundError if id is not registered.
func (c *Composer) FromTemplateAsMessages(id string, in templates.Input) ([]message.Message, error) {
	fs, err := c.build(id, in)
	if err != nil {
		return nil, err
	}

	var msgs []message.Message
	for _, f := range fs {
		msgs = append(msgs, f.Messages()...)
	}

	return msgs, nil
}

// build resolves the template and composes the formatter sequence.
func (c *Composer) build(id string, in templates.Input) ([]layers.Formatter, error) {
	tpl, ok := c.reg.Get(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	return tpl.Build(in), nil
}
