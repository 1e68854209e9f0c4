package slg

// canonicalizeTerm renames every Variable in t into the dense index space
// driven by counter and mapping, in order of first occurrence, and returns
// the renamed term.
func canonicalizeTerm(t Term, counter *int, mapping map[int]int) Term {
	switch t.kind {
	case termVariable:
		newID, ok := mapping[t.v]
		if !ok {
			newID = *counter
			mapping[t.v] = newID
			*counter++
		}
		return Variable(newID)
	case termCompound:
		args := make([]Term, len(t.args))
		for i, a := range t.args {
			args[i] = canonicalizeTerm(a, counter, mapping)
		}
		return Term{kind: termCompound, atom: t.atom, args: args}
	default:
		return t
	}
}

func canonicalizePredicate(p Predicate, counter *int, mapping map[int]int) Predicate {
	args := make([]Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = canonicalizeTerm(a, counter, mapping)
	}
	return Predicate{Name: p.Name, Args: args}
}

// CanonicalizeTerm renames the variables of t into 0, 1, 2, ... in order of
// first occurrence and returns the renamed term together with the forward
// mapping (original index -> canonical index).
func CanonicalizeTerm(t Term) (Term, map[int]int) {
	return CanonicalizeTermWithCounter(t, 0)
}

// CanonicalizeTermWithCounter is like CanonicalizeTerm but begins numbering
// at start instead of 0. Used to rename a clause fresh above a caller's
// variable space before unifying against it.
func CanonicalizeTermWithCounter(t Term, start int) (Term, map[int]int) {
	counter := start
	mapping := make(map[int]int)
	out := canonicalizeTerm(t, &counter, mapping)
	return out, mapping
}

// CanonicalizeGoal renames the variables of g into 0, 1, 2, ... in order of
// first occurrence and returns the renamed goal together with the forward
// mapping.
func CanonicalizeGoal(g Goal) (Goal, map[int]int) {
	return CanonicalizeGoalWithCounter(g, 0)
}

// CanonicalizeGoalWithCounter is like CanonicalizeGoal but begins numbering
// at start.
func CanonicalizeGoalWithCounter(g Goal, start int) (Goal, map[int]int) {
	counter := start
	mapping := make(map[int]int)
	out := Goal{Predicate: canonicalizePredicate(g.Predicate, &counter, mapping)}
	return out, mapping
}

// CanonicalizeClause renames the variables of c into 0, 1, 2, ... in order
// of first appearance across head then body, and returns the renamed
// clause together with the forward mapping. Clauses stored in a
// KnowledgeBase are canonicalized once at insert time (see
// KnowledgeBase.AddClause).
func CanonicalizeClause(c Clause) (Clause, map[int]int) {
	return CanonicalizeClauseWithCounter(c, 0)
}

// CanonicalizeClauseWithCounter is like CanonicalizeClause but begins
// numbering at start, so a clause can be renamed fresh above a caller's
// variable space (create_table's freshness-vs-the-goal guarantee).
func CanonicalizeClauseWithCounter(c Clause, start int) (Clause, map[int]int) {
	counter := start
	mapping := make(map[int]int)

	head := canonicalizePredicate(c.Head, &counter, mapping)
	body := make([]Goal, len(c.Body))
	for i, g := range c.Body {
		body[i] = Goal{Predicate: canonicalizePredicate(g.Predicate, &counter, mapping)}
	}
	return Clause{Head: head, Body: body}, mapping
}

// ReverseMapping inverts a canonicalization mapping (original -> canonical)
// into its reverse (canonical -> original).
func ReverseMapping(mapping map[int]int) map[int]int {
	reversed := make(map[int]int, len(mapping))
	for k, v := range mapping {
		reversed[v] = k
	}
	return reversed
}

// uncanonicalizeTerm remaps every Variable inside t via reverseMap,
// leaving variables absent from reverseMap unchanged.
func uncanonicalizeTerm(t Term, reverseMap map[int]int) Term {
	switch t.kind {
	case termVariable:
		if orig, ok := reverseMap[t.v]; ok {
			return Variable(orig)
		}
		return t
	case termCompound:
		args := make([]Term, len(t.args))
		for i, a := range t.args {
			args[i] = uncanonicalizeTerm(a, reverseMap)
		}
		return Term{kind: termCompound, atom: t.atom, args: args}
	default:
		return t
	}
}

// UncanonicalizeSubstitution returns a new substitution in which every
// bound variable is remapped via reverseMap (or left unchanged if absent),
// and every free variable inside each bound term is likewise remapped.
func UncanonicalizeSubstitution(s Substitution, reverseMap map[int]int) Substitution {
	out := NewSubstitution()
	for v, t := range s.mapping {
		origVar := v
		if mapped, ok := reverseMap[v]; ok {
			origVar = mapped
		}
		out.mapping[origVar] = uncanonicalizeTerm(t, reverseMap)
	}
	return out
}
