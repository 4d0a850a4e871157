// Package toolinfo renders MCP tool definitions as tools-layer entries.
//
// Hosts that discover their tools over MCP can feed the result straight into
// [github.com/yejunhao159/promptstack/pkg/templates.Input.Tools].
package toolinfo

import (
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Line renders a single tool as "name: description". The description is
// omitted when blank. Returns "" for a nil or unnamed tool.
func Line(t *mcp.Tool) string {
	if t == nil {
		return ""
	}

	name := strings.TrimSpace(t.Name)
	if name == "" {
		return ""
	}

	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		return name
	}

	return name + ": " + desc
}

// Lines renders the tools in order, skipping nil and unnamed entries.
func Lines(tools []*mcp.Tool) []string {
	var out []string
	for _, t := range tools {
		if line := Line(t); line != "" {
			out = append(out, line)
		}
	}
	return out
}
