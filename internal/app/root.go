package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/config"
	"github.com/blackwell-systems/lendctl/internal/library"
	"github.com/blackwell-systems/lendctl/internal/state"
	"github.com/blackwell-systems/lendctl/internal/util"
)

var (
	cfg *config.Config
	lib *library.Library
	db  *state.Store

	flagNoColor bool
	flagData    string
)

var rootCmd = &cobra.Command{
	Use:   "lendctl",
	Short: "Track a small library's catalog, members, and loans",
	Long: `lendctl keeps a local library ledger: which books you own, who your
members are, and which copies are out on loan.

State lives in a single local data file. Loans past the 30-day grace
window accrue a fine per day; 'lendctl loans' shows the running figures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		closeLibrary()
		os.Exit(1)
	}
	closeLibrary()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "State file path (default: ~/.local/share/lendctl/library.db)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if !needsLibrary(cmd) {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := cfg.Data.Path
		if flagData != "" {
			path = config.ExpandHome(flagData)
		}

		db, err = state.Open(path)
		if err != nil {
			return fmt.Errorf("opening state file: %w", err)
		}

		lib = library.New(db)
		lib.Initialize()
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newBooksCmd(),
		newMembersCmd(),
		newLoansCmd(),
		newBorrowCmd(),
		newReturnCmd(),
		newSuggestCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

// needsLibrary reports whether a command reads or writes the state
// file. Help, completion (and its shell subcommands), version, and
// config must not create one as a side effect.
func needsLibrary(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "lendctl", "version", "help", "completion", "config", "init":
		return false
	}
	if p := cmd.Parent(); p != nil && p.Name() == "completion" {
		return false
	}
	return true
}

// closeLibrary flushes state once, after the command has run.
func closeLibrary() {
	if lib != nil {
		lib.Close()
	}
	if db != nil {
		db.Close()
	}
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
