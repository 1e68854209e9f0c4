package slg

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// KnowledgeBase is an append-only index from predicate name to the
// ordered list of canonical clauses whose head carries that name.
// Insertion order within a predicate is preserved; it defines clause-trial
// order (spec.md section 4.5 and section 8's determinism guarantee).
//
// A KnowledgeBase is borrowed read-only by every Solver built on it; it is
// safe to share one KnowledgeBase across multiple Solvers as long as none
// of them mutates it while another is in use.
type KnowledgeBase struct {
	clauses map[string][]Clause
	// order preserves first-insertion order of predicate names, purely so
	// Validate's aggregated errors read back in a stable, useful order.
	order []string
	arity map[string]int
}

// NewKnowledgeBase returns an empty knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		clauses: make(map[string][]Clause),
		arity:   make(map[string]int),
	}
}

// AddClause canonicalizes c and appends it to the bucket keyed by
// c.Head.Name. The engine does not deduplicate clauses; a caller wishing
// for idempotent inserts must check for structural duplicates itself
// (spec.md section 6).
func (kb *KnowledgeBase) AddClause(c Clause) {
	canonical, _ := CanonicalizeClause(c.clone())

	if _, seen := kb.clauses[canonical.Head.Name]; !seen {
		kb.order = append(kb.order, canonical.Head.Name)
		kb.arity[canonical.Head.Name] = canonical.Head.Arity()
	}
	kb.clauses[canonical.Head.Name] = append(kb.clauses[canonical.Head.Name], canonical)
}

// GetClauses returns the clause bucket for name, in insertion order. The
// returned slice must not be mutated by the caller. Lookup is by name
// only; applicability filtering happens via unification in create_table.
func (kb *KnowledgeBase) GetClauses(name string) []Clause {
	return kb.clauses[name]
}

// PredicateNames returns the names with at least one clause, in the order
// their first clause was inserted.
func (kb *KnowledgeBase) PredicateNames() []string {
	out := make([]string, len(kb.order))
	copy(out, kb.order)
	return out
}

// Validate checks the knowledge base for a single class of construction-time
// mistake a front-end almost never wants to commit silently: two clauses
// whose heads share a predicate name but disagree on arity. Such a
// knowledge base is not rejected at AddClause time (clauses are appended
// unconditionally, per spec.md section 6), but a front-end that wants to
// catch the mistake before querying can call Validate.
//
// Every violation found is accumulated into a single *multierror.Error
// rather than returning on the first one, so a caller sees the complete
// picture of what is wrong with the knowledge base in one pass.
func (kb *KnowledgeBase) Validate() error {
	var result *multierror.Error

	for _, name := range kb.order {
		clauses := kb.clauses[name]
		wantArity := kb.arity[name]
		for i, c := range clauses {
			if c.Head.Arity() != wantArity {
				result = multierror.Append(result, fmt.Errorf(
					"predicate %q: clause %d has arity %d, want %d (established by its first clause)",
					name, i, c.Head.Arity(), wantArity))
			}
		}
	}

	return result.ErrorOrNil()
}
