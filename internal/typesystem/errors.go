package typesystem

import "fmt"

// UnifyError is an ordinary, recoverable unification mismatch,
// including an occurs-check violation (itself a form of mismatch per
// spec §7). Callers are expected to Undo the journal and try the next
// candidate, not to treat this as a program error.
type UnifyError struct {
	Left, Right Term
	Reason      string
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("cannot unify %s and %s: %s", ToString(e.Left), ToString(e.Right), e.Reason)
}

func mismatch(a, b Term, reason string) error {
	return &UnifyError{Left: a, Right: b, Reason: reason}
}

// InvariantViolation marks a bug unreachable by construction: an
// impossible Link state, a double-undo, unification of an unclassified
// term. These are not returned as errors; the engine panics with this
// type, since the caller has no recovery path for a broken invariant
// (spec §7).
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "typecore: invariant violation: " + e.Reason
}
