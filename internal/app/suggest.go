package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/library"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <books|members|loans> <query>",
		Short: "Show search suggestions for a query",
		Long: `Show up to 20 matching display strings for a query against one
collection — the feed a search box consumes on every keystroke.

Examples:
  lendctl suggest books clean
  lendctl suggest members aisha
  lendctl suggest loans B002`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := lib.Suggest(library.Collection(args[0]), args[1])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Println("No suggestions.")
				return nil
			}
			for _, m := range matches {
				fmt.Printf("  %s\n", m)
			}
			return nil
		},
	}
}
