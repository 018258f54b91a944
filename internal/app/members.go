package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members [query]",
		Short: "List members and register new ones",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.AddCommand(
		newMembersListCmd(),
		newMembersAddCmd(),
	)

	cmd.RunE = newMembersListCmd().RunE

	return cmd
}

func newMembersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List members, optionally filtered by name or id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			members := lib.Members(query)
			if len(members) == 0 {
				fmt.Println("No members found.")
				return nil
			}

			for _, m := range members {
				fmt.Printf("  %-6s %s\n", color.CyanString(m.ID), m.Name)
			}
			fmt.Printf("\n%d members\n", len(members))
			return nil
		},
	}
}

func newMembersAddCmd() *cobra.Command {
	var (
		id   string
		name string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a member",
		Long: `Register a member. Both id and name are required.

Examples:
  lendctl members add --id M04 --name "Dev Patel"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := lib.AddMember(strings.TrimSpace(id), strings.TrimSpace(name))
			if err != nil {
				return err
			}
			ok("Registered %s — %s", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Member id (required, unique)")
	cmd.Flags().StringVar(&name, "name", "", "Member name (required)")

	return cmd
}
