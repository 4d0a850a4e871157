package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/yejunhao159/promptstack/pkg/registry"
	"github.com/yejunhao159/promptstack/pkg/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the built-in templates registered and
// returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reg := registry.New()
	reg.Register(templates.NewStandard())
	reg.Register(templates.NewCompact())

	var out bytes.Buffer
	cmd := NewRootCmd(reg)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeDocument writes a context document to a temp file and returns its path.
func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "context.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRender(t *testing.T) {
	path := writeDocument(t, `
role: You are a helpful assistant
tools:
  - "tool1: description"
conversation:
  - "User: Hello"
  - "Assistant: Hi!"
current: Help me
`)

	out, err := runCommand(t, "render", path)
	require.NoError(t, err)

	assert.Contains(t, out, "<role>You are a helpful assistant</role>")
	assert.Contains(t, out, "<tools>\ntool1: description\n</tools>")
	assert.Contains(t, out, "<conversation>\nUser: Hello\nAssistant: Hi!\n</conversation>")
	assert.Contains(t, out, "<current>Help me</current>")
}

func TestRender_TemplateFlag(t *testing.T) {
	path := writeDocument(t, `
role: assistant
tools:
  - "tool1: description"
current: query
`)

	out, err := runCommand(t, "render", path, "--template", "compact")
	require.NoError(t, err)

	assert.Contains(t, out, "<role>assistant</role>")
	assert.NotContains(t, out, "<tools>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	path := writeDocument(t, "role: assistant\n")

	_, err := runCommand(t, "render", path, "--template", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nonexistent"`)
}

func TestRender_MissingFile(t *testing.T) {
	_, err := runCommand(t, "render", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestMessages(t *testing.T) {
	path := writeDocument(t, `
role: Simple assistant
current: Help me
`)

	out, err := runCommand(t, "messages", path)
	require.NoError(t, err)

	assert.Contains(t, out, `"role": "system"`)
	assert.Contains(t, out, `"content": "Simple assistant"`)
	assert.Contains(t, out, `"role": "user"`)
	assert.Contains(t, out, `"content": "Help me"`)
}

func TestMessages_ScalarConversation(t *testing.T) {
	path := writeDocument(t, `conversation: "User: Hello"`)

	out, err := runCommand(t, "messages", path)
	require.NoError(t, err)

	assert.Contains(t, out, `"role": "user"`)
	assert.Contains(t, out, `"content": "User: Hello"`)
}

func TestTemplates_List(t *testing.T) {
	out, err := runCommand(t, "templates")
	require.NoError(t, err)

	assert.Contains(t, out, "compact")
	assert.Contains(t, out, "standard")
}
