// Package commands implements the promptstack CLI subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/yejunhao159/promptstack/pkg/composer"
	"github.com/yejunhao159/promptstack/pkg/registry"
)

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd(reg *registry.Manager) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptstack",
		Short: "Compose layered conversational context",
		Long: `Promptstack turns a YAML context document (role, tools, conversation,
current query) into either a markup document or a role-tagged message list.

Examples:
  promptstack render context.yaml
  promptstack messages context.yaml --template compact
  promptstack templates`,
		SilenceUsage: true,
	}

	c := composer.New(reg)

	rootCmd.AddCommand(
		newRenderCmd(c),
		newMessagesCmd(c),
		newTemplatesCmd(reg),
	)

	return rootCmd
}
