package library_test

import (
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/lendctl/internal/library"
)

// memPersister is an in-memory Persister so service tests never touch
// disk.
type memPersister struct {
	state   library.State
	hasData bool
	saves   int
	saveErr error
}

func (p *memPersister) Load() (library.State, error) {
	if !p.hasData {
		return library.State{}, errors.New("no saved state")
	}
	return p.state, nil
}

func (p *memPersister) Save(st library.State) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.state = st
	p.hasData = true
	p.saves++
	return nil
}

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func seededLibrary(t *testing.T) (*library.Library, *memPersister) {
	t.Helper()
	p := &memPersister{}
	lib := library.NewWithClock(p, func() time.Time { return testNow })
	lib.Initialize()
	return lib, p
}

func TestInitialize_SeedsWhenNothingSaved(t *testing.T) {
	lib, p := seededLibrary(t)

	if n := len(lib.Books("")); n != 15 {
		t.Errorf("seeded %d books, want 15", n)
	}
	if n := len(lib.Members("")); n != 3 {
		t.Errorf("seeded %d members, want 3", n)
	}
	loans := lib.Loans("")
	if len(loans) != 2 {
		t.Fatalf("seeded %d loans, want 2", len(loans))
	}
	if p.saves != 1 {
		t.Errorf("seed saved %d times, want 1", p.saves)
	}

	// One loan is backdated 40 days to exercise the overdue path.
	var overdue *library.LoanView
	for i := range loans {
		if loans[i].BookID == "B002" {
			overdue = &loans[i]
		}
	}
	if overdue == nil {
		t.Fatal("no seeded loan for B002")
	}
	if overdue.Fine != 20 {
		t.Errorf("backdated loan fine = %d, want 20", overdue.Fine)
	}
	if overdue.GraceDaysLeft != -10 {
		t.Errorf("backdated loan grace days = %d, want -10", overdue.GraceDaysLeft)
	}

	// Seeded loans hold one copy each.
	for _, id := range []string{"B001", "B002"} {
		b := findBook(t, lib, id)
		if b.Available != b.Total-1 {
			t.Errorf("%s available = %d, want %d", id, b.Available, b.Total-1)
		}
	}
}

func TestInitialize_LoadsSavedState(t *testing.T) {
	p := &memPersister{
		hasData: true,
		state: library.State{
			Books:   []library.Book{{ID: "X1", Title: "Only Book", Total: 1, Available: 1}},
			Members: []library.Member{{ID: "M9", Name: "Someone"}},
		},
	}
	lib := library.NewWithClock(p, func() time.Time { return testNow })
	lib.Initialize()

	books := lib.Books("")
	if len(books) != 1 || books[0].ID != "X1" {
		t.Errorf("loaded books = %v, want the saved catalog", books)
	}
	if p.saves != 0 {
		t.Errorf("loading saved %d times, want 0", p.saves)
	}
}

func TestAddBook(t *testing.T) {
	lib, p := seededLibrary(t)
	before := p.saves

	b, err := lib.AddBook("B016", "The Go Programming Language", "Donovan & Kernighan", 2015, 2)
	if err != nil {
		t.Fatalf("AddBook: %v", err)
	}
	if b.Available != 2 {
		t.Errorf("Available = %d, want Total", b.Available)
	}
	if len(lib.Books("")) != 16 {
		t.Errorf("catalog size after add = %d, want 16", len(lib.Books("")))
	}
	if p.saves != before+1 {
		t.Errorf("add saved %d times, want 1", p.saves-before)
	}
}

func TestAddBook_EmptyIDRejected(t *testing.T) {
	lib, p := seededLibrary(t)
	before := p.saves

	_, err := lib.AddBook("", "X", "Y", 2020, 1)
	if library.ReasonOf(err) != library.ReasonEmptyID {
		t.Fatalf("err = %v, want reason %s", err, library.ReasonEmptyID)
	}
	if len(lib.Books("")) != 15 {
		t.Errorf("rejected add changed the catalog")
	}
	if p.saves != before {
		t.Errorf("rejected add triggered a save")
	}
}

func TestAddBook_DuplicateIDRejected(t *testing.T) {
	lib, _ := seededLibrary(t)

	_, err := lib.AddBook("B001", "Imposter", "", 2020, 1)
	if library.ReasonOf(err) != library.ReasonDuplicateID {
		t.Fatalf("err = %v, want reason %s", err, library.ReasonDuplicateID)
	}
	if b := findBook(t, lib, "B001"); b.Title != "Clean Code" {
		t.Errorf("duplicate add replaced the original record")
	}
}

func TestAddBook_ClampsTotalToOne(t *testing.T) {
	lib, _ := seededLibrary(t)

	b, err := lib.AddBook("B017", "Pamphlet", "", 2020, 0)
	if err != nil {
		t.Fatalf("AddBook: %v", err)
	}
	if b.Total != 1 || b.Available != 1 {
		t.Errorf("total/available = %d/%d, want 1/1", b.Total, b.Available)
	}
}

func TestAddMember_Validation(t *testing.T) {
	lib, _ := seededLibrary(t)

	if _, err := lib.AddMember("", "Nameless"); library.ReasonOf(err) != library.ReasonEmptyID {
		t.Errorf("empty id: err = %v", err)
	}
	if _, err := lib.AddMember("M04", ""); library.ReasonOf(err) != library.ReasonEmptyName {
		t.Errorf("empty name: err = %v", err)
	}
	if _, err := lib.AddMember("M01", "Copycat"); library.ReasonOf(err) != library.ReasonDuplicateID {
		t.Errorf("duplicate id: err = %v", err)
	}
	if len(lib.Members("")) != 3 {
		t.Errorf("rejected adds changed the roster")
	}
}

func TestBorrow(t *testing.T) {
	lib, _ := seededLibrary(t)

	before := findBook(t, lib, "B004").Available
	loan, err := lib.Borrow("B004", "M03")
	if err != nil {
		t.Fatalf("Borrow: %v", err)
	}
	if loan.ID == "" {
		t.Error("loan id not generated")
	}
	if loan.IssueDate != testNow.UnixMilli() {
		t.Errorf("issue date = %d, want clock time", loan.IssueDate)
	}
	if got := findBook(t, lib, "B004").Available; got != before-1 {
		t.Errorf("available = %d, want %d", got, before-1)
	}
}

func TestBorrow_FailureReasons(t *testing.T) {
	lib, _ := seededLibrary(t)

	cases := []struct {
		name     string
		bookID   string
		memberID string
		want     library.Reason
	}{
		{"unknown book", "B999", "M01", library.ReasonUnknownBook},
		{"unknown member", "B004", "M99", library.ReasonUnknownMember},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lib.Borrow(c.bookID, c.memberID)
			if library.ReasonOf(err) != c.want {
				t.Errorf("err = %v, want reason %s", err, c.want)
			}
		})
	}
	if n := len(lib.Loans("")); n != 2 {
		t.Errorf("failed borrows changed the ledger: %d loans", n)
	}
}

func TestBorrow_LastCopyThenNoneLeft(t *testing.T) {
	lib, _ := seededLibrary(t)

	// B003 is seeded with a single copy.
	if _, err := lib.Borrow("B003", "M01"); err != nil {
		t.Fatalf("borrow last copy: %v", err)
	}
	if got := findBook(t, lib, "B003").Available; got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}

	_, err := lib.Borrow("B003", "M02")
	if library.ReasonOf(err) != library.ReasonNoCopies {
		t.Errorf("err = %v, want reason %s", err, library.ReasonNoCopies)
	}
	if got := findBook(t, lib, "B003").Available; got != 0 {
		t.Errorf("failed borrow moved available to %d", got)
	}
}

func TestReturn(t *testing.T) {
	lib, _ := seededLibrary(t)

	loan, err := lib.Borrow("B005", "M02")
	if err != nil {
		t.Fatalf("Borrow: %v", err)
	}
	before := findBook(t, lib, "B005").Available

	if err := lib.Return(loan.ID); err != nil {
		t.Fatalf("Return: %v", err)
	}
	if got := findBook(t, lib, "B005").Available; got != before+1 {
		t.Errorf("available = %d, want %d", got, before+1)
	}
	for _, l := range lib.Loans("") {
		if l.ID == loan.ID {
			t.Error("returned loan still in ledger")
		}
	}
}

func TestReturn_UnknownLoan(t *testing.T) {
	lib, _ := seededLibrary(t)

	err := lib.Return("no-such-loan")
	if library.ReasonOf(err) != library.ReasonUnknownLoan {
		t.Errorf("err = %v, want reason %s", err, library.ReasonUnknownLoan)
	}
	if n := len(lib.Loans("")); n != 2 {
		t.Errorf("failed return changed the ledger: %d loans", n)
	}
}

func TestReturn_MissingBookTolerated(t *testing.T) {
	p := &memPersister{
		hasData: true,
		state: library.State{
			Members: []library.Member{{ID: "M01", Name: "Aisha Khan"}},
			Loans:   []library.Loan{{ID: "orphan", BookID: "GONE", MemberID: "M01", IssueDate: testNow.UnixMilli()}},
		},
	}
	lib := library.NewWithClock(p, func() time.Time { return testNow })
	lib.Initialize()

	if err := lib.Return("orphan"); err != nil {
		t.Fatalf("Return with missing book: %v", err)
	}
	if n := len(lib.Loans("")); n != 0 {
		t.Errorf("ledger still has %d loans", n)
	}
}

func TestAvailability_StaysInBounds(t *testing.T) {
	lib, _ := seededLibrary(t)

	// B002 is seeded with total 2, one copy already out.
	var open []string
	for {
		loan, err := lib.Borrow("B002", "M01")
		if err != nil {
			break
		}
		open = append(open, loan.ID)
		if len(open) > 10 {
			t.Fatal("borrow never exhausted the copies")
		}
	}
	if got := findBook(t, lib, "B002").Available; got != 0 {
		t.Errorf("available after exhausting = %d, want 0", got)
	}

	for _, id := range open {
		if err := lib.Return(id); err != nil {
			t.Fatalf("Return: %v", err)
		}
	}
	b := findBook(t, lib, "B002")
	if b.Available < 0 || b.Available > b.Total {
		t.Errorf("available %d outside [0,%d]", b.Available, b.Total)
	}
}

func TestSaveFailure_NotSurfaced(t *testing.T) {
	lib, p := seededLibrary(t)
	p.saveErr = errors.New("disk full")

	if _, err := lib.Borrow("B004", "M01"); err != nil {
		t.Fatalf("Borrow surfaced a save failure: %v", err)
	}
	if n := len(lib.Loans("")); n != 3 {
		t.Errorf("in-memory ledger has %d loans, want 3", n)
	}
}

func TestSuggest_ThroughService(t *testing.T) {
	lib, _ := seededLibrary(t)

	got, err := lib.Suggest(library.Books, "clean")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 1 || got[0] != "Clean Code" {
		t.Errorf("Suggest(books, clean) = %v", got)
	}

	if _, err := lib.Suggest(library.Collection("shelves"), "x"); err == nil {
		t.Error("unknown collection accepted")
	}
}

func findBook(t *testing.T, lib *library.Library, id string) library.Book {
	t.Helper()
	for _, b := range lib.Books("") {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("book %s not found", id)
	return library.Book{}
}
