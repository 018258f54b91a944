package library

// Reason classifies why an operation was rejected. The borrow path
// reports unknown-book, unknown-member, and no-copies separately so the
// caller can tell an absent record from an exhausted one.
type Reason string

const (
	ReasonEmptyID       Reason = "empty-id"
	ReasonEmptyName     Reason = "empty-name"
	ReasonDuplicateID   Reason = "duplicate-id"
	ReasonUnknownBook   Reason = "unknown-book"
	ReasonUnknownMember Reason = "unknown-member"
	ReasonUnknownLoan   Reason = "unknown-loan"
	ReasonNoCopies      Reason = "no-copies-available"
)

// OpError is a rejected operation. It never represents an I/O problem;
// persistence failures are logged, not returned.
type OpError struct {
	Reason Reason
	msg    string
}

func (e *OpError) Error() string { return e.msg }

// ReasonOf extracts the reason from an operation error, or "" for nil
// and foreign errors.
func ReasonOf(err error) Reason {
	if oe, ok := err.(*OpError); ok {
		return oe.Reason
	}
	return ""
}
