// Package slg implements a tabled logic-programming solver: SLG resolution
// over first-order Horn clauses, in the style popularized by XSB and
// adopted by chalk. Given a KnowledgeBase of clauses, a Solver answers
// queries by lazily enumerating substitutions for a Goal's free variables,
// memoizing each canonicalized subgoal so that recursive and mutually
// recursive predicates terminate.
//
// # Scope
//
// This package is the tabled-resolution core only: terms, unification,
// the per-goal answer Table, the Strand work-list, the depth-first Stack
// used for cycle detection, and the Solver state machine that drives them.
// Parsing a surface syntax, arithmetic, negation-as-failure, cut, and
// constraint handling beyond occurs-check unification are all out of
// scope; a front-end hands in already-constructed Terms and Clauses.
//
// # Concurrency
//
// A Solver is single-threaded and deterministic: PullNextGoal runs
// synchronously to completion on every call, mutating only the Solver's
// own table arena and stack. A KnowledgeBase is read-only for the
// lifetime of every Solver built on it, so multiple Solvers may safely
// share one as long as none of them mutates it concurrently.
package slg

import "fmt"

// Term is the tagged union manipulated throughout the solver: an Atom (an
// interned constant compared by name), a Variable (an index into the
// current variable space), or a Compound (a functor applied to a fixed
// arity argument vector). Terms are value-typed: Equal compares them
// structurally, and a Term may be freely copied without aliasing concerns.
// Terms define no ordering, and because a Term holds a slice it cannot be
// used as a map key directly (goalKey encodes goals for that purpose).
type Term struct {
	kind termKind
	atom string // valid when kind == termAtom or termCompound (the functor)
	v    int    // valid when kind == termVariable
	args []Term // valid when kind == termCompound
}

type termKind uint8

const (
	termAtom termKind = iota
	termVariable
	termCompound
)

// Atom constructs a constant term identified by name.
func Atom(name string) Term {
	return Term{kind: termAtom, atom: name}
}

// Variable constructs a term referring to the variable at the given
// non-negative index within the current variable space.
func Variable(index int) Term {
	return Term{kind: termVariable, v: index}
}

// Compound constructs a functor applied to the given arguments. The
// argument slice is copied so the caller's slice may be reused.
func Compound(functor string, args ...Term) Term {
	cp := make([]Term, len(args))
	copy(cp, args)
	return Term{kind: termCompound, atom: functor, args: cp}
}

// IsAtom reports whether t is an Atom.
func (t Term) IsAtom() bool { return t.kind == termAtom }

// IsVariable reports whether t is a Variable.
func (t Term) IsVariable() bool { return t.kind == termVariable }

// IsCompound reports whether t is a Compound.
func (t Term) IsCompound() bool { return t.kind == termCompound }

// AtomName returns the atom's name. Panics if t is not an Atom.
func (t Term) AtomName() string {
	if t.kind != termAtom {
		panic("slg: AtomName called on non-atom term")
	}
	return t.atom
}

// VariableIndex returns the variable's index. Panics if t is not a Variable.
func (t Term) VariableIndex() int {
	if t.kind != termVariable {
		panic("slg: VariableIndex called on non-variable term")
	}
	return t.v
}

// Functor returns the compound's functor name. Panics if t is not a Compound.
func (t Term) Functor() string {
	if t.kind != termCompound {
		panic("slg: Functor called on non-compound term")
	}
	return t.atom
}

// Args returns the compound's arguments. Panics if t is not a Compound.
// The returned slice must not be mutated by the caller.
func (t Term) Args() []Term {
	if t.kind != termCompound {
		panic("slg: Args called on non-compound term")
	}
	return t.args
}

// Equal reports whether two terms are structurally identical.
func (t Term) Equal(other Term) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case termAtom:
		return t.atom == other.atom
	case termVariable:
		return t.v == other.v
	case termCompound:
		if t.atom != other.atom || len(t.args) != len(other.args) {
			return false
		}
		for i := range t.args {
			if !t.args[i].Equal(other.args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a Term for diagnostics. The engine makes no promise about
// this representation; a front-end's own pretty-printer is authoritative.
func (t Term) String() string {
	switch t.kind {
	case termAtom:
		return t.atom
	case termVariable:
		return fmt.Sprintf("?%d", t.v)
	case termCompound:
		s := t.atom + "("
		for i, a := range t.args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		return s + ")"
	default:
		return "<invalid term>"
	}
}

// walk invokes f for every Variable occurring in t, including nested
// occurrences inside compounds. Used by maxVariableIndex.
func (t Term) walk(f func(index int)) {
	switch t.kind {
	case termVariable:
		f(t.v)
	case termCompound:
		for _, a := range t.args {
			a.walk(f)
		}
	}
}

// maxVariableIndex returns the largest variable index occurring in t and
// whether any variable occurs at all.
func (t Term) maxVariableIndex() (max int, found bool) {
	t.walk(func(index int) {
		if !found || index > max {
			max = index
			found = true
		}
	})
	return
}
