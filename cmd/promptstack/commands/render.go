package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yejunhao159/promptstack/pkg/composer"
)

// newRenderCmd creates `promptstack render <file>`: the markup projection.
func newRenderCmd(c *composer.Composer) *cobra.Command {
	var templateID string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a context document as markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			markup, err := c.FromTemplate(resolveTemplate(templateID, doc), doc.Input())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template id (overrides the document)")

	return cmd
}
