// Promptstack composes layered conversational context into markup or
// role-tagged messages. It registers the built-in templates, reads a YAML
// input document, and prints the selected projection.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yejunhao159/promptstack/cmd/promptstack/commands"
	"github.com/yejunhao159/promptstack/pkg/registry"
	"github.com/yejunhao159/promptstack/pkg/templates"
)

func main() {
	// Best-effort: a missing .env is fine.
	_ = godotenv.Load()

	reg := registry.New()
	reg.Register(templates.NewStandard())
	reg.Register(templates.NewCompact())

	if err := commands.NewRootCmd(reg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
