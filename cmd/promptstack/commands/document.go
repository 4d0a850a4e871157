package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yejunhao159/promptstack/pkg/templates"
)

// defaultTemplate is used when neither the flag, the document, nor the
// PROMPTSTACK_TEMPLATE environment variable names a template.
const defaultTemplate = "standard"

// Document is the YAML context document read by render and messages.
type Document struct {
	Template     string   `yaml:"template"`
	Role         string   `yaml:"role"`
	Tools        []string `yaml:"tools"`
	Conversation turns    `yaml:"conversation"`
	Current      string   `yaml:"current"`
}

// turns accepts either a single scalar (one user turn) or a sequence of
// turns in the YAML document.
type turns []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *turns) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = turns{s}
		return nil
	case yaml.SequenceNode:
		var seq []string
		if err := node.Decode(&seq); err != nil {
			return err
		}
		*t = turns(seq)
		return nil
	default:
		return fmt.Errorf("conversation: expected string or sequence at line %d", node.Line)
	}
}

// Input converts the document's layer fields into template input.
func (d Document) Input() templates.Input {
	return templates.Input{
		Role:         d.Role,
		Tools:        d.Tools,
		Conversation: []string(d.Conversation),
		Current:      d.Current,
	}
}

// loadDocument reads and parses a context document from path.
func loadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}

	return d, nil
}

// resolveTemplate picks the template id: the --template flag wins, then the
// document's template field, then PROMPTSTACK_TEMPLATE, then the default.
func resolveTemplate(flagValue string, d Document) string {
	if flagValue != "" {
		return flagValue
	}
	if d.Template != "" {
		return d.Template
	}
	if env := os.Getenv("PROMPTSTACK_TEMPLATE"); env != "" {
		return env
	}
	return defaultTemplate
}
