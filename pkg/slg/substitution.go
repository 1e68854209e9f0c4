package slg

// Substitution is a finite map from variable index to Term.
//
// Invariants (spec.md section 3):
//   - Idempotence: for every (v -> t) in the map, t does not contain v, and
//     applying the substitution to t yields t unchanged.
//   - Composition stability: after Compose(other), for every original
//     (v -> t) in self, t has been updated by replacing any free
//     occurrences of variables that other binds.
//
// The zero value is the empty substitution and is ready to use.
type Substitution struct {
	mapping map[int]Term
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() Substitution {
	return Substitution{mapping: make(map[int]Term)}
}

// Len returns the number of bindings in the substitution.
func (s Substitution) Len() int { return len(s.mapping) }

// Lookup returns the term bound to v, if any.
func (s Substitution) Lookup(v int) (Term, bool) {
	t, ok := s.mapping[v]
	return t, ok
}

// Bindings returns the variable indices bound by the substitution.
func (s Substitution) Bindings() []int {
	out := make([]int, 0, len(s.mapping))
	for v := range s.mapping {
		out = append(out, v)
	}
	return out
}

// Clone returns a deep copy of the substitution; mutating the clone never
// affects the original.
func (s Substitution) Clone() Substitution {
	cp := make(map[int]Term, len(s.mapping))
	for k, v := range s.mapping {
		cp[k] = v
	}
	return Substitution{mapping: cp}
}

// Equal reports whether two substitutions bind the same variables to
// structurally equal terms.
func (s Substitution) Equal(other Substitution) bool {
	if len(s.mapping) != len(other.mapping) {
		return false
	}
	for k, v := range s.mapping {
		ov, ok := other.mapping[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ApplyTerm walks t, replacing every Variable with its binding if present.
// Bindings are not chased recursively: the idempotence invariant
// guarantees a binding's right-hand side contains no bound variable, so a
// single substitution pass is always sufficient.
func (s Substitution) ApplyTerm(t Term) Term {
	switch t.kind {
	case termAtom:
		return t
	case termVariable:
		if replacement, ok := s.mapping[t.v]; ok {
			return replacement
		}
		return t
	case termCompound:
		args := make([]Term, len(t.args))
		changed := false
		for i, a := range t.args {
			na := s.ApplyTerm(a)
			args[i] = na
			if !na.Equal(a) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return Term{kind: termCompound, atom: t.atom, args: args}
	default:
		return t
	}
}

// ApplyPredicate returns a new Predicate with the substitution applied to
// every argument.
func (s Substitution) ApplyPredicate(p Predicate) Predicate {
	args := make([]Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = s.ApplyTerm(a)
	}
	return Predicate{Name: p.Name, Args: args}
}

// ApplyGoal returns a new Goal with the substitution applied to its
// predicate's arguments.
func (s Substitution) ApplyGoal(g Goal) Goal {
	return Goal{Predicate: s.ApplyPredicate(g.Predicate)}
}

// composeMappingInTerm rewrites every occurrence of Variable(variable)
// inside term, replacing it with replacement. Used by InsertMapping to
// keep existing bindings idempotent after a new binding is added.
func composeMappingInTerm(term Term, variable int, replacement Term) Term {
	switch term.kind {
	case termVariable:
		if term.v == variable {
			return replacement
		}
		return term
	case termCompound:
		args := make([]Term, len(term.args))
		changed := false
		for i, a := range term.args {
			na := composeMappingInTerm(a, variable, replacement)
			args[i] = na
			if !na.Equal(a) {
				changed = true
			}
		}
		if !changed {
			return term
		}
		return Term{kind: termCompound, atom: term.atom, args: args}
	default:
		return term
	}
}

// InsertMapping binds variable to term, first rewriting every existing
// binding's right-hand side to replace any occurrence of Variable(variable)
// with term. This preserves the idempotence invariant: after the rewrite,
// no stored binding can still mention the variable being bound.
func (s *Substitution) InsertMapping(variable int, term Term) {
	if s.mapping == nil {
		s.mapping = make(map[int]Term)
	}
	for v, existing := range s.mapping {
		s.mapping[v] = composeMappingInTerm(existing, variable, term)
	}
	s.mapping[variable] = term
}

// occursCheck reports whether variable occurs anywhere within term.
func occursCheck(variable int, term Term) bool {
	switch term.kind {
	case termVariable:
		return term.v == variable
	case termCompound:
		for _, a := range term.args {
			if occursCheck(variable, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// UnifyTerms attempts to extend s with the bindings necessary to make lhs
// and rhs equal, using classical Robinson unification with occurs-check.
// It returns the extended substitution and true on success, or the
// original substitution and false on failure. Unification failure is not
// an engine error: it is the ordinary "this clause does not apply" signal.
func (s Substitution) UnifyTerms(lhs, rhs Term) (Substitution, bool) {
	lhs = s.ApplyTerm(lhs)
	rhs = s.ApplyTerm(rhs)

	switch {
	case lhs.kind == termVariable && rhs.kind == termVariable && lhs.v == rhs.v:
		return s, true

	case lhs.kind == termVariable:
		if occursCheck(lhs.v, rhs) {
			return s, false
		}
		s = s.Clone()
		s.InsertMapping(lhs.v, rhs)
		return s, true

	case rhs.kind == termVariable:
		if occursCheck(rhs.v, lhs) {
			return s, false
		}
		s = s.Clone()
		s.InsertMapping(rhs.v, lhs)
		return s, true

	case lhs.kind == termAtom && rhs.kind == termAtom:
		return s, lhs.atom == rhs.atom

	case lhs.kind == termCompound && rhs.kind == termCompound:
		if lhs.atom != rhs.atom || len(lhs.args) != len(rhs.args) {
			return s, false
		}
		current := s
		for i := range lhs.args {
			var ok bool
			current, ok = current.UnifyTerms(lhs.args[i], rhs.args[i])
			if !ok {
				return s, false
			}
		}
		return current, true

	default:
		return s, false
	}
}

// UnifyPredicate succeeds iff p and q have the same name and arity and
// their arguments unify pairwise, threading the substitution across all
// of them.
func (s Substitution) UnifyPredicate(p, q Predicate) (Substitution, bool) {
	if p.Name != q.Name || len(p.Args) != len(q.Args) {
		return s, false
	}
	current := s
	for i := range p.Args {
		var ok bool
		current, ok = current.UnifyTerms(p.Args[i], q.Args[i])
		if !ok {
			return s, false
		}
	}
	return current, true
}

// Compose updates self so that applying it is equivalent to applying other
// after self: for each (v, t) in other, Compose performs
// self.InsertMapping(v, t).
func (s *Substitution) Compose(other Substitution) {
	for v, t := range other.mapping {
		s.InsertMapping(v, t)
	}
}
