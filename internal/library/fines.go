package library

import "time"

// Loan terms. The grace window and per-day rate are policy knobs kept as
// named constants so a fork can retune them in one place.
const (
	// GraceDays is the fine-free window after issuance.
	GraceDays = 30
	// FinePerDay is the charge (₹/day) for every day past the window.
	FinePerDay = 2

	millisPerDay = 24 * 60 * 60 * 1000
)

// ElapsedDays returns whole days between the loan's issue instant and
// now. Integer division truncates toward zero, so a loan issued in the
// future reports zero or negative days.
func ElapsedDays(l Loan, now time.Time) int {
	return int((now.UnixMilli() - l.IssueDate) / millisPerDay)
}

// GraceDaysLeft returns days remaining in the grace window; negative
// once the loan is overdue.
func GraceDaysLeft(l Loan, now time.Time) int {
	return GraceDays - ElapsedDays(l, now)
}

// Fine returns the accrued fine. Day 30 itself is still free; the
// charge starts strictly after the window.
func Fine(l Loan, now time.Time) int {
	days := ElapsedDays(l, now)
	if days <= GraceDays {
		return 0
	}
	return (days - GraceDays) * FinePerDay
}
