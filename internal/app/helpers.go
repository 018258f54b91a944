package app

import "strconv"

// parseIntOrDefault mirrors the forgiving numeric handling of the entry
// forms: bad input falls back to a default instead of failing the
// whole operation.
func parseIntOrDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// displayTitle substitutes the placeholder for an empty title.
func displayTitle(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}

// displayAuthor substitutes the placeholder for an empty author.
func displayAuthor(author string) string {
	if author == "" {
		return "Unknown"
	}
	return author
}

// shortID trims a loan id for list display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
