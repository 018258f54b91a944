package library

// Store holds the three record collections in memory. It is the only
// owner of authoritative state; the CLI layer keeps nothing but query
// text. Lookups are linear — catalogs here are small.
type Store struct {
	state State
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Reset replaces the store contents wholesale (used by load and seed).
func (s *Store) Reset(state State) {
	s.state = state
}

// Snapshot returns a deep copy of the current state, safe to hand to
// the persistence layer or to render from.
func (s *Store) Snapshot() State {
	return State{
		Books:   append([]Book(nil), s.state.Books...),
		Members: append([]Member(nil), s.state.Members...),
		Loans:   append([]Loan(nil), s.state.Loans...),
	}
}

// FindBook returns the book with the given ID, or nil.
func (s *Store) FindBook(id string) *Book {
	for i := range s.state.Books {
		if s.state.Books[i].ID == id {
			return &s.state.Books[i]
		}
	}
	return nil
}

// FindMember returns the member with the given ID, or nil.
func (s *Store) FindMember(id string) *Member {
	for i := range s.state.Members {
		if s.state.Members[i].ID == id {
			return &s.state.Members[i]
		}
	}
	return nil
}

// FindLoan returns the loan with the given ID, or nil.
func (s *Store) FindLoan(id string) *Loan {
	for i := range s.state.Loans {
		if s.state.Loans[i].ID == id {
			return &s.state.Loans[i]
		}
	}
	return nil
}

// AddBook appends a book. Empty and duplicate IDs are rejected.
func (s *Store) AddBook(b Book) error {
	if b.ID == "" {
		return &OpError{Reason: ReasonEmptyID, msg: "book id must not be empty"}
	}
	if s.FindBook(b.ID) != nil {
		return &OpError{Reason: ReasonDuplicateID, msg: "book " + b.ID + " already exists"}
	}
	s.state.Books = append(s.state.Books, b)
	return nil
}

// AddMember appends a member. Empty and duplicate IDs are rejected.
func (s *Store) AddMember(m Member) error {
	if m.ID == "" {
		return &OpError{Reason: ReasonEmptyID, msg: "member id must not be empty"}
	}
	if s.FindMember(m.ID) != nil {
		return &OpError{Reason: ReasonDuplicateID, msg: "member " + m.ID + " already exists"}
	}
	s.state.Members = append(s.state.Members, m)
	return nil
}

// addLoan and removeLoan are reserved for the borrow/return operations;
// nothing outside this package mutates the ledger directly.

func (s *Store) addLoan(l Loan) {
	s.state.Loans = append(s.state.Loans, l)
}

func (s *Store) removeLoan(id string) bool {
	for i := range s.state.Loans {
		if s.state.Loans[i].ID == id {
			s.state.Loans = append(s.state.Loans[:i], s.state.Loans[i+1:]...)
			return true
		}
	}
	return false
}
