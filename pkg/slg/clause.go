package slg

import "strings"

// Predicate is a named relation applied to a fixed-arity argument vector.
type Predicate struct {
	Name string
	Args []Term
}

// NewPredicate constructs a Predicate, copying the argument slice.
func NewPredicate(name string, args ...Term) Predicate {
	cp := make([]Term, len(args))
	copy(cp, args)
	return Predicate{Name: name, Args: cp}
}

// Arity returns the number of arguments the predicate takes.
func (p Predicate) Arity() int { return len(p.Args) }

// Equal reports structural equality of two predicates.
func (p Predicate) Equal(other Predicate) bool {
	if p.Name != other.Name || len(p.Args) != len(other.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// String renders the predicate for diagnostics.
func (p Predicate) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if len(p.Args) > 0 {
		b.WriteByte('(')
		for i, a := range p.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

func (p Predicate) maxVariableIndex() (max int, found bool) {
	for _, a := range p.Args {
		if m, ok := a.maxVariableIndex(); ok {
			if !found || m > max {
				max, found = m, true
			}
		}
	}
	return
}

// Goal is a predicate invocation to be proven. It wraps a Predicate so
// that future extensions (e.g. polarity for negation, per spec.md's
// reserved NegativeCyclicDependency branch) have somewhere to live without
// disturbing Predicate itself.
type Goal struct {
	Predicate Predicate
}

// NewGoal wraps a predicate as a goal.
func NewGoal(p Predicate) Goal { return Goal{Predicate: p} }

// Equal reports structural equality of two goals.
func (g Goal) Equal(other Goal) bool { return g.Predicate.Equal(other.Predicate) }

// String renders the goal for diagnostics.
func (g Goal) String() string { return g.Predicate.String() }

func (g Goal) maxVariableIndex() (int, bool) { return g.Predicate.maxVariableIndex() }

// Clause is a Horn rule: head :- body. A fact is a Clause with an empty
// body. Clauses stored in a KnowledgeBase are canonical: their variables
// are renamed into 0..N-1 in left-to-right, top-to-bottom order of first
// appearance across head then body (see CanonicalizeClause).
type Clause struct {
	Head Predicate
	Body []Goal
}

// NewClause constructs a clause from a head and body goals. The body slice
// is copied so the caller's slice may be reused; pass no goals for a fact.
func NewClause(head Predicate, body ...Goal) Clause {
	cp := make([]Goal, len(body))
	copy(cp, body)
	return Clause{Head: head, Body: cp}
}

// IsFact reports whether the clause has an empty body.
func (c Clause) IsFact() bool { return len(c.Body) == 0 }

// String renders the clause for diagnostics.
func (c Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	parts := make([]string, len(c.Body))
	for i, g := range c.Body {
		parts[i] = g.String()
	}
	return c.Head.String() + " :- " + strings.Join(parts, ", ") + "."
}

// clone returns a deep copy of the clause. Terms are value types, but the
// backing slices (Args, Body) are copied so that canonicalizing the clone
// never mutates the original stored in a KnowledgeBase.
func (c Clause) clone() Clause {
	head := NewPredicate(c.Head.Name, c.Head.Args...)
	body := make([]Goal, len(c.Body))
	for i, g := range c.Body {
		body[i] = NewGoal(NewPredicate(g.Predicate.Name, g.Predicate.Args...))
	}
	return Clause{Head: head, Body: body}
}
