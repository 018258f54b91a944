package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/library"
)

func newLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loans [query]",
		Short: "List open loans with days left and accrued fines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			loans := lib.Loans(query)
			if len(loans) == 0 {
				fmt.Println("No loans found.")
				return nil
			}

			for _, l := range loans {
				id := shortID(l.ID)
				if cfg.Display.FullLoanIDs {
					id = l.ID
				}

				var due string
				switch {
				case l.GraceDaysLeft < 0:
					due = color.RedString("overdue by %d days", -l.GraceDaysLeft)
				case l.GraceDaysLeft <= 5:
					due = color.RedString("%d days left", l.GraceDaysLeft)
				default:
					due = color.GreenString("%d days left", l.GraceDaysLeft)
				}

				fine := color.HiBlackString("fine ₹%d", l.Fine)
				if l.Fine > 0 {
					fine = color.RedString("fine ₹%d", l.Fine)
				}

				fmt.Printf("  %-12s %s → %s  issued %d days ago, %s, %s\n",
					color.CyanString(id),
					l.BookID,
					l.MemberID,
					l.ElapsedDays,
					due,
					fine,
				)
			}
			fmt.Printf("\n%d open loans\n", len(loans))
			return nil
		},
	}
}

func newBorrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <book-id> <member-id>",
		Short: "Check a copy out to a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID := strings.TrimSpace(args[0])
			memberID := strings.TrimSpace(args[1])

			loan, err := lib.Borrow(bookID, memberID)
			if err != nil {
				return err
			}
			ok("Loan %s: %s → %s", shortID(loan.ID), bookID, memberID)
			return nil
		},
	}
}

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <loan-id>",
		Short: "Return a borrowed copy and close the loan",
		Long: `Return a borrowed copy. Shows the fine owed, if any, before the
loan record is discarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID := strings.TrimSpace(args[0])

			// Show the final figures before the record disappears.
			for _, l := range lib.Loans("") {
				if l.ID == loanID && l.Fine > 0 {
					warn("Loan is overdue by %d days — fine due: ₹%d", -l.GraceDaysLeft, l.Fine)
				}
			}

			if err := lib.Return(loanID); err != nil {
				return err
			}
			ok("Returned loan %s", shortID(loanID))
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the library: counts, overdue loans, fines due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := lib.Books("")
			members := lib.Members("")
			loans := lib.Loans("")

			copies, out := 0, 0
			for _, b := range books {
				copies += b.Total
				out += b.Total - b.Available
			}

			overdue, fines := 0, 0
			for _, l := range loans {
				if l.GraceDaysLeft < 0 {
					overdue++
				}
				fines += l.Fine
			}

			header("Library status")
			fmt.Printf("  %-10s %d titles, %d copies (%d out)\n", "books:", len(books), copies, out)
			fmt.Printf("  %-10s %d\n", "members:", len(members))
			fmt.Printf("  %-10s %d open", "loans:", len(loans))
			if overdue > 0 {
				fmt.Printf(", %s", color.RedString("%d overdue", overdue))
			}
			fmt.Println()
			if fines > 0 {
				fmt.Printf("  %-10s %s\n", "fines:", color.RedString("₹%d outstanding", fines))
			} else {
				fmt.Printf("  %-10s none\n", "fines:")
			}
			fmt.Printf("  %-10s grace window %d days, then ₹%d/day\n", "policy:", library.GraceDays, library.FinePerDay)
			return nil
		},
	}
}
