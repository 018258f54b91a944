package library

import "strings"

// SuggestLimit caps a suggestion list. Matches past the cap are dropped,
// not ranked — records are scanned in insertion order and the first
// occurrence of a display string wins.
const SuggestLimit = 20

// Collection names a searchable record set.
type Collection string

const (
	Books   Collection = "books"
	Members Collection = "members"
	Loans   Collection = "loans"
)

// contains reports a case-insensitive substring match. q must already be
// lowercased.
func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

// suggestions accumulates deduplicated display strings up to SuggestLimit.
type suggestions struct {
	seen map[string]bool
	out  []string
}

func (sg *suggestions) add(candidates ...string) {
	for _, c := range candidates {
		if len(sg.out) >= SuggestLimit {
			return
		}
		if c == "" || sg.seen[c] {
			continue
		}
		sg.seen[c] = true
		sg.out = append(sg.out, c)
	}
}

// SuggestBooks returns matching title/author/id strings for the query.
// An empty or whitespace query yields nothing — the popup shows nothing,
// it does not show everything.
func SuggestBooks(books []Book, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	sg := suggestions{seen: make(map[string]bool)}
	for _, b := range books {
		if contains(b.Title, q) {
			sg.add(b.Title)
		}
		if contains(b.Author, q) {
			sg.add(b.Author)
		}
		if contains(b.ID, q) {
			sg.add(b.ID)
		}
	}
	return sg.out
}

// SuggestMembers returns matching name/id strings for the query.
func SuggestMembers(members []Member, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	sg := suggestions{seen: make(map[string]bool)}
	for _, m := range members {
		if contains(m.Name, q) {
			sg.add(m.Name)
		}
		if contains(m.ID, q) {
			sg.add(m.ID)
		}
	}
	return sg.out
}

// SuggestLoans returns matching loan/book/member id strings for the query.
func SuggestLoans(loans []Loan, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	sg := suggestions{seen: make(map[string]bool)}
	for _, l := range loans {
		if contains(l.ID, q) {
			sg.add(l.ID)
		}
		if contains(l.BookID, q) {
			sg.add(l.BookID)
		}
		if contains(l.MemberID, q) {
			sg.add(l.MemberID)
		}
	}
	return sg.out
}

// FilterBooks returns the books matching the query over title, author,
// or id. An empty query matches everything — the list views show all.
func FilterBooks(books []Book, query string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return books
	}
	var out []Book
	for _, b := range books {
		if contains(b.Title, q) || contains(b.Author, q) || contains(b.ID, q) {
			out = append(out, b)
		}
	}
	return out
}

// FilterMembers returns the members matching the query over name or id.
func FilterMembers(members []Member, query string) []Member {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}
	var out []Member
	for _, m := range members {
		if contains(m.Name, q) || contains(m.ID, q) {
			out = append(out, m)
		}
	}
	return out
}

// FilterLoans returns the loans matching the query over loan, book, or
// member id.
func FilterLoans(loans []Loan, query string) []Loan {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return loans
	}
	var out []Loan
	for _, l := range loans {
		if contains(l.ID, q) || contains(l.BookID, q) || contains(l.MemberID, q) {
			out = append(out, l)
		}
	}
	return out
}
