package library

// Book is one title in the catalog. Available is maintained by the
// borrow/return operations and always stays within [0, Total].
type Book struct {
	ID        string
	Title     string
	Author    string
	Year      int
	Total     int
	Available int
}

// Member is one entry in the roster.
type Member struct {
	ID   string
	Name string
}

// Loan is an open loan in the ledger. ID is a generated UUID; IssueDate
// is epoch milliseconds. Returned loans are removed, not archived.
type Loan struct {
	ID        string
	BookID    string
	MemberID  string
	IssueDate int64
}

// State is the whole persisted unit: the three collections together.
// Slice order is insertion order and survives a save/load round trip.
type State struct {
	Books   []Book
	Members []Member
	Loans   []Loan
}
