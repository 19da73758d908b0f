package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/notes-ai-backend/internal/tools/codes"
	"github.com/sandeepkv93/notes-ai-backend/internal/tools/migrate"
	"github.com/sandeepkv93/notes-ai-backend/internal/tools/probe"
)

func main() {
	root := &cobra.Command{
		Use:          "notesctl",
		Short:        "Operator tooling for the notes API",
		SilenceUsage: true,
	}
	root.AddCommand(
		migrate.NewRootCommand(),
		codes.NewRootCommand(),
		probe.NewRootCommand(),
	)
	if err := root.Execute(); err != nil {
		os.Exit(3)
	}
}
