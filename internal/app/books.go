package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books [query]",
		Short: "List books and add new ones",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.AddCommand(
		newBooksListCmd(),
		newBooksAddCmd(),
	)

	// Make `lendctl books [query]` without a subcommand behave as list.
	cmd.RunE = newBooksListCmd().RunE

	return cmd
}

func newBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List books, optionally filtered by title, author, or id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			books := lib.Books(query)
			if len(books) == 0 {
				fmt.Println("No books found.")
				return nil
			}

			for _, b := range books {
				avail := color.GreenString("%d/%d", b.Available, b.Total)
				if b.Available == 0 {
					avail = color.RedString("0/%d", b.Total)
				}
				fmt.Printf("  %-6s %-45s %-25s %4d  %s\n",
					color.CyanString(b.ID),
					displayTitle(b.Title),
					color.HiBlackString(displayAuthor(b.Author)),
					b.Year,
					avail,
				)
			}
			fmt.Printf("\n%d books\n", len(books))
			return nil
		},
	}
}

func newBooksAddCmd() *cobra.Command {
	var (
		id     string
		title  string
		author string
		year   string
		total  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book. The id is yours to choose and must be unique.

Year defaults to the current year and total copies to 1 when the flags
are missing or not numeric.

Examples:
  lendctl books add --id B016 --title "The Go Programming Language" --author "Donovan & Kernighan" --year 2015 --total 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			y := parseIntOrDefault(year, time.Now().Year())
			t := parseIntOrDefault(total, 1)

			b, err := lib.AddBook(strings.TrimSpace(id), strings.TrimSpace(title), strings.TrimSpace(author), y, t)
			if err != nil {
				return err
			}
			ok("Added %s — %s (%d copies)", b.ID, displayTitle(b.Title), b.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Book id (required, unique)")
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&year, "year", "", "Publication year (default: current year)")
	cmd.Flags().StringVar(&total, "total", "", "Total copies owned (default: 1, minimum 1)")

	return cmd
}
