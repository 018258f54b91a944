package library

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persister loads and saves the whole State as one unit. The format
// behind it is opaque to this package.
type Persister interface {
	Load() (State, error)
	Save(State) error
}

// Library is the front door for the CLI layer: every mutation and query
// goes through it. A mutex keeps the store single-owner, so derived
// fine figures never observe a half-updated book.
type Library struct {
	mu    sync.Mutex
	store *Store
	db    Persister
	now   func() time.Time
}

// New creates a Library backed by p, using the wall clock.
func New(p Persister) *Library {
	return NewWithClock(p, time.Now)
}

// NewWithClock creates a Library with an injected clock. Tests pass a
// fixed clock so fine arithmetic is deterministic.
func NewWithClock(p Persister, now func() time.Time) *Library {
	return &Library{store: NewStore(), db: p, now: now}
}

// Initialize loads the saved state, or seeds the sample dataset when
// nothing loadable exists, saving the seed right away. It never fails:
// a broken data file means a fresh library, not a dead process.
func (l *Library) Initialize() {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.db.Load()
	if err != nil {
		log.Printf("load failed, seeding sample data: %v", err)
		state = Seed(l.now())
		l.store.Reset(state)
		l.persist()
		return
	}
	l.store.Reset(state)
}

// Close performs a final defensive save. State is already saved after
// every write; this catches nothing in the normal case.
func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.persist()
}

// persist saves the full state. Write failures are logged and swallowed:
// the in-memory state stays authoritative for the running process.
// Callers must hold l.mu.
func (l *Library) persist() {
	if err := l.db.Save(l.store.Snapshot()); err != nil {
		log.Printf("save failed: %v", err)
	}
}

// AddBook creates a book with all copies available. The id must be
// non-empty and unused; total is clamped to at least one copy.
func (l *Library) AddBook(id, title, author string, year, total int) (Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if total < 1 {
		total = 1
	}
	b := Book{ID: id, Title: title, Author: author, Year: year, Total: total, Available: total}
	if err := l.store.AddBook(b); err != nil {
		return Book{}, err
	}
	l.persist()
	return b, nil
}

// AddMember registers a member. Both id and name must be non-empty.
func (l *Library) AddMember(id, name string) (Member, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		return Member{}, &OpError{Reason: ReasonEmptyName, msg: "member name must not be empty"}
	}
	m := Member{ID: id, Name: name}
	if err := l.store.AddMember(m); err != nil {
		return Member{}, err
	}
	l.persist()
	return m, nil
}

// Borrow checks a copy of the book out to the member and opens a loan.
// The three failure modes carry distinct reasons so the caller can tell
// a missing record from an exhausted title.
func (l *Library) Borrow(bookID, memberID string) (Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	book := l.store.FindBook(bookID)
	if book == nil {
		return Loan{}, &OpError{Reason: ReasonUnknownBook, msg: "no book with id " + bookID}
	}
	if l.store.FindMember(memberID) == nil {
		return Loan{}, &OpError{Reason: ReasonUnknownMember, msg: "no member with id " + memberID}
	}
	if book.Available <= 0 {
		return Loan{}, &OpError{Reason: ReasonNoCopies, msg: fmt.Sprintf("no copies of %s available", bookID)}
	}

	book.Available--
	loan := Loan{
		ID:        uuid.NewString(),
		BookID:    bookID,
		MemberID:  memberID,
		IssueDate: l.now().UnixMilli(),
	}
	l.store.addLoan(loan)
	l.persist()
	return loan, nil
}

// Return closes the loan and puts the copy back on the shelf. A loan
// whose book has vanished still closes cleanly — the copy count just
// has nowhere to go.
func (l *Library) Return(loanID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	loan := l.store.FindLoan(loanID)
	if loan == nil {
		return &OpError{Reason: ReasonUnknownLoan, msg: "no loan with id " + loanID}
	}
	if book := l.store.FindBook(loan.BookID); book != nil {
		book.Available++
	}
	l.store.removeLoan(loanID)
	l.persist()
	return nil
}

// Books returns the catalog filtered by query (all books when empty).
func (l *Library) Books(query string) []Book {
	l.mu.Lock()
	defer l.mu.Unlock()
	return FilterBooks(l.store.Snapshot().Books, query)
}

// Members returns the roster filtered by query.
func (l *Library) Members(query string) []Member {
	l.mu.Lock()
	defer l.mu.Unlock()
	return FilterMembers(l.store.Snapshot().Members, query)
}

// LoanView is a loan plus the time-derived figures the list views show,
// computed against the library clock at call time.
type LoanView struct {
	Loan
	ElapsedDays   int
	GraceDaysLeft int
	Fine          int
}

// Loans returns the ledger filtered by query, with fines computed as of
// now.
func (l *Library) Loans(query string) []LoanView {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	matched := FilterLoans(l.store.Snapshot().Loans, query)
	views := make([]LoanView, 0, len(matched))
	for _, ln := range matched {
		views = append(views, LoanView{
			Loan:          ln,
			ElapsedDays:   ElapsedDays(ln, now),
			GraceDaysLeft: GraceDaysLeft(ln, now),
			Fine:          Fine(ln, now),
		})
	}
	return views
}

// Suggest returns up to SuggestLimit display strings for the query
// against the named collection.
func (l *Library) Suggest(c Collection, query string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.store.Snapshot()
	switch c {
	case Books:
		return SuggestBooks(state.Books, query), nil
	case Members:
		return SuggestMembers(state.Members, query), nil
	case Loans:
		return SuggestLoans(state.Loans, query), nil
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}
}
