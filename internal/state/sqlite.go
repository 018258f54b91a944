// Package state persists the whole library state as one unit in a
// single SQLite file. The file is an opaque surface: nothing else
// reads or edits it.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/blackwell-systems/lendctl/internal/library"
)

// schemaVersion is checked on every load. A mismatch makes the load
// fail so the caller reseeds; there is no partial migration.
const schemaVersion = 1

// Store is the persistence gateway. Save rewrites all three tables in
// one transaction; Load reads them back in insertion order.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the state file at path. A file that cannot
// even hold the schema is discarded and recreated — the system treats
// a broken data file as no data file.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := open(path)
	if err != nil {
		_ = os.Remove(path)
		db, err = open(path)
	}
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`,
		`CREATE TABLE IF NOT EXISTS books (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            author TEXT NOT NULL,
            year INTEGER NOT NULL,
            total INTEGER NOT NULL,
            available INTEGER NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS members (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS loans (
            id TEXT PRIMARY KEY,
            book_id TEXT NOT NULL,
            member_id TEXT NOT NULL,
            issue_date INTEGER NOT NULL
        );`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Load reads the saved state. It fails when no state was ever saved or
// when the schema version does not match; callers respond by seeding.
func (s *Store) Load() (library.State, error) {
	var state library.State

	var version int
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key='schema_version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return state, fmt.Errorf("no saved state")
	}
	if err != nil {
		return state, fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return state, fmt.Errorf("schema version %d, want %d", version, schemaVersion)
	}

	rows, err := s.db.Query(`SELECT id, title, author, year, total, available FROM books ORDER BY rowid`)
	if err != nil {
		return state, fmt.Errorf("read books: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b library.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Total, &b.Available); err != nil {
			return state, fmt.Errorf("scan book: %w", err)
		}
		state.Books = append(state.Books, b)
	}
	if err := rows.Err(); err != nil {
		return state, err
	}

	mrows, err := s.db.Query(`SELECT id, name FROM members ORDER BY rowid`)
	if err != nil {
		return state, fmt.Errorf("read members: %w", err)
	}
	defer mrows.Close()
	for mrows.Next() {
		var m library.Member
		if err := mrows.Scan(&m.ID, &m.Name); err != nil {
			return state, fmt.Errorf("scan member: %w", err)
		}
		state.Members = append(state.Members, m)
	}
	if err := mrows.Err(); err != nil {
		return state, err
	}

	lrows, err := s.db.Query(`SELECT id, book_id, member_id, issue_date FROM loans ORDER BY rowid`)
	if err != nil {
		return state, fmt.Errorf("read loans: %w", err)
	}
	defer lrows.Close()
	for lrows.Next() {
		var l library.Loan
		if err := lrows.Scan(&l.ID, &l.BookID, &l.MemberID, &l.IssueDate); err != nil {
			return state, fmt.Errorf("scan loan: %w", err)
		}
		state.Loans = append(state.Loans, l)
	}
	if err := lrows.Err(); err != nil {
		return state, err
	}

	return state, nil
}

// Save replaces the stored state with st in a single transaction. The
// write either lands whole or not at all.
func (s *Store) Save(st library.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"books", "members", "loans"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, b := range st.Books {
		if _, err := tx.Exec(`INSERT INTO books(id,title,author,year,total,available) VALUES(?,?,?,?,?,?)`,
			b.ID, b.Title, b.Author, b.Year, b.Total, b.Available); err != nil {
			return fmt.Errorf("write book %s: %w", b.ID, err)
		}
	}
	for _, m := range st.Members {
		if _, err := tx.Exec(`INSERT INTO members(id,name) VALUES(?,?)`, m.ID, m.Name); err != nil {
			return fmt.Errorf("write member %s: %w", m.ID, err)
		}
	}
	for _, l := range st.Loans {
		if _, err := tx.Exec(`INSERT INTO loans(id,book_id,member_id,issue_date) VALUES(?,?,?,?)`,
			l.ID, l.BookID, l.MemberID, l.IssueDate); err != nil {
			return fmt.Errorf("write loan %s: %w", l.ID, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value`, schemaVersion); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}

	return tx.Commit()
}
