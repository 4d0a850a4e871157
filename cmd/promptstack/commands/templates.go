package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yejunhao159/promptstack/pkg/registry"
)

var (
	templateIDStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0969da"))
	templateNameStyle = lipgloss.NewStyle().Bold(true)
	templateDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#656d76"))
)

// newTemplatesCmd creates `promptstack templates`: lists registered templates.
func newTemplatesCmd(reg *registry.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, meta := range reg.List() {
				fmt.Fprintf(out, "%s  %s\n", templateIDStyle.Render(meta.ID), templateNameStyle.Render(meta.Name))
				fmt.Fprintf(out, "    %s\n", templateDescStyle.Render(meta.Description))
			}
			return nil
		},
	}
}
