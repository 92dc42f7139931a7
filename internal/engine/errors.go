package engine

import "fmt"

// InvariantError reports a broken internal consistency check (H1, a
// removal of a tile not present in hand, a policy returning a tile not in
// the closed multiset, …). The round engine recovers these at the round
// boundary rather than propagating them through a trial.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Invariant, e.Detail)
}

func newInvariantError(invariant, format string, args ...any) *InvariantError {
	return &InvariantError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}
