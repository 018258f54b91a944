package library

import (
	"time"

	"github.com/google/uuid"
)

// Seed builds the sample dataset used when no saved state can be loaded:
// fifteen books, three members, and two open loans — one issued at now
// and one backdated forty days so the overdue/fine path is visible
// immediately.
func Seed(now time.Time) State {
	state := State{
		Books: []Book{
			{ID: "B001", Title: "Clean Code", Author: "Robert C. Martin", Year: 2008, Total: 3, Available: 3},
			{ID: "B002", Title: "The Silent Patient", Author: "Alex Michaelides", Year: 2019, Total: 2, Available: 2},
			{ID: "B003", Title: "Design Patterns", Author: "Gamma et al.", Year: 1994, Total: 1, Available: 1},
			{ID: "B004", Title: "Introduction to Algorithms", Author: "CLRS", Year: 2009, Total: 4, Available: 4},
			{ID: "B005", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Year: 1999, Total: 3, Available: 3},
			{ID: "B006", Title: "Head First Java", Author: "Kathy Sierra", Year: 2005, Total: 5, Available: 5},
			{ID: "B007", Title: "Effective Java", Author: "Joshua Bloch", Year: 2017, Total: 3, Available: 3},
			{ID: "B008", Title: "Rich Dad Poor Dad", Author: "Robert Kiyosaki", Year: 1997, Total: 4, Available: 4},
			{ID: "B009", Title: "Atomic Habits", Author: "James Clear", Year: 2018, Total: 6, Available: 6},
			{ID: "B010", Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", Year: 1997, Total: 5, Available: 5},
			{ID: "B011", Title: "The Alchemist", Author: "Paulo Coelho", Year: 1988, Total: 4, Available: 4},
			{ID: "B012", Title: "The Power of Your Subconscious Mind", Author: "Joseph Murphy", Year: 1963, Total: 3, Available: 3},
			{ID: "B013", Title: "Java: The Complete Reference", Author: "Herbert Schildt", Year: 2021, Total: 2, Available: 2},
			{ID: "B014", Title: "Sapiens: A Brief History of Humankind", Author: "Yuval Noah Harari", Year: 2011, Total: 3, Available: 3},
			{ID: "B015", Title: "The Psychology of Money", Author: "Morgan Housel", Year: 2020, Total: 5, Available: 5},
		},
		Members: []Member{
			{ID: "M01", Name: "Aisha Khan"},
			{ID: "M02", Name: "Rohan Verma"},
			{ID: "M03", Name: "Priya Shah"},
		},
	}

	// Backdate in whole 24-hour days; a calendar day spanning a DST
	// change can be short and would leave only 39 elapsed days.
	state.Loans = []Loan{
		{ID: uuid.NewString(), BookID: "B001", MemberID: "M01", IssueDate: now.UnixMilli()},
		{ID: uuid.NewString(), BookID: "B002", MemberID: "M02", IssueDate: now.UnixMilli() - 40*millisPerDay},
	}

	for _, l := range state.Loans {
		for i := range state.Books {
			if state.Books[i].ID == l.BookID && state.Books[i].Available > 0 {
				state.Books[i].Available--
			}
		}
	}

	return state
}
