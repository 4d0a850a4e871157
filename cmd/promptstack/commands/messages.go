package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yejunhao159/promptstack/pkg/composer"
)

// wireMessage is the JSON shape model APIs expect.
type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// newMessagesCmd creates `promptstack messages <file>`: the message-list
// projection, printed as JSON.
func newMessagesCmd(c *composer.Composer) *cobra.Command {
	var templateID string

	cmd := &cobra.Command{
		Use:   "messages <file>",
		Short: "Render a context document as a JSON message list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			msgs, err := c.FromTemplateAsMessages(resolveTemplate(templateID, doc), doc.Input())
			if err != nil {
				return err
			}

			wire := make([]wireMessage, len(msgs))
			for i, m := range msgs {
				wire[i] = wireMessage{Role: m.Role.String(), Content: m.Content}
			}

			data, err := json.MarshalIndent(wire, "", "  ")
			if err != nil {
				return fmt.Errorf("encode messages: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template id (overrides the document)")

	return cmd
}
