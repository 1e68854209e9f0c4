package slg

import (
	"errors"
	"fmt"
)

// errKind enumerates the internal error taxonomy of spec.md section 7.
// None of these ever surfaces to a caller of PullNextGoal directly: all
// three are either recovered internally or folded into the single
// observable "no next solution" signal at the Solver boundary.
type errKind uint8

const (
	// errNoMoreSolutions means the current (table, answer index) position
	// has no further answer, now or ever. Purely local.
	errNoMoreSolutions errKind = iota
	// errPositiveCyclicDependency means the sub-derivation reached a table
	// already active on the Stack; dfn identifies the SCC root candidate.
	errPositiveCyclicDependency
	// errNegativeCyclicDependency is reserved for future well-founded
	// negation support; under pure Horn clauses it only arises from an
	// ordering inconsistency and is folded into exhaustion at the
	// boundary.
	errNegativeCyclicDependency
)

// solveError is the engine's internal error type. It is never returned
// from any exported function; PullNextGoal collapses it into (Substitution,
// bool) at the boundary.
type solveError struct {
	kind errKind
	dfn  DepthFirstNumber
}

func (e *solveError) Error() string {
	switch e.kind {
	case errNoMoreSolutions:
		return "slg: no more solutions"
	case errPositiveCyclicDependency:
		return fmt.Sprintf("slg: positive cyclic dependency (dfn=%d)", e.dfn)
	case errNegativeCyclicDependency:
		return "slg: negative cyclic dependency"
	default:
		return "slg: unknown internal error"
	}
}

func errNoMore() error { return &solveError{kind: errNoMoreSolutions} }

func errPositiveCycle(dfn DepthFirstNumber) error {
	return &solveError{kind: errPositiveCyclicDependency, dfn: dfn}
}

func errNegativeCycle() error { return &solveError{kind: errNegativeCyclicDependency} }

// asSolveError extracts the internal error kind from err, if any.
func asSolveError(err error) (*solveError, bool) {
	var se *solveError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ErrStepBudgetExceeded is returned by PullNextGoal when the Solver was
// constructed with WithStepBudget and the budget has been exhausted. It is
// the one internal-adjacent error that does surface to the caller, since
// spec.md section 5 anticipates step budgets as an external extension
// distinct from the three purely-internal kinds above. Call
// Solver.ResetStepBudget to continue pulling answers.
var ErrStepBudgetExceeded = errors.New("slg: step budget exceeded")

// assertf panics with a formatted message if cond is false. Used to guard
// the programmer errors spec.md section 7 calls out (e.g. consuming
// answers out of order) — these are bugs in the engine or its caller, not
// expected runtime conditions.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("slg: assertion failed: "+format, args...))
	}
}
