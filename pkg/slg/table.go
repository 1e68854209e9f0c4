package slg

// Table holds every answer discovered so far for one canonical goal,
// together with the pending Strands still trying to discover more. It is
// the tabling half of SLG resolution: once a goal's Table exists, every
// other subgoal that canonicalizes to the same goal shares it instead of
// re-deriving the same proof (spec.md section 4.6).
type Table struct {
	// goal is the canonical goal this table was built for.
	goal Goal
	// maxVar is the highest variable index appearing in goal, or nil if
	// goal is ground. Answers are projected down to this index before
	// being stored (spec.md section 4.6's de-duplication rule): variables
	// introduced by a clause's own body that never appear in the head
	// carry no information a caller of this table could observe.
	maxVar *int
	// answers is append-only; nothing is ever removed once inserted.
	answers []Substitution
	// workList holds strands not yet known to be exhausted, processed
	// front-to-back (a FIFO queue: pullNextAnswer always pops index 0 and
	// any strand it re-enqueues is appended to the back).
	workList []*Strand
}

// subgoalState is the piece of a Strand that tracks which answer of some
// other (or the same) table it is waiting on next.
type subgoalState struct {
	tableID ID[Table]
	// answerIndex is the next answer of tableID this strand has not yet
	// consumed.
	answerIndex int
	// canonicalMapping maps a variable index in tableID's canonical space
	// back to the variable index in this strand's own substitution space,
	// i.e. the reverse of the mapping produced when selectedSubgoal was
	// canonicalized.
	canonicalMapping map[int]int
}

// Strand is one in-progress derivation attempt within a Table: a partial
// proof of one of the table's matching clauses, waiting on answers to its
// selected subgoal before it can either produce an answer for the table or
// move on to the next subgoal in the clause body.
type Strand struct {
	// substitution accumulates bindings made so far along this derivation,
	// in the variable space of the table that owns this strand.
	substitution Substitution
	// selectedSubgoal is the subgoal currently being resolved, with
	// substitution already applied.
	selectedSubgoal Goal
	// restSubgoals are the remaining body goals, not yet substituted or
	// canonicalized, tried in order once selectedSubgoal is satisfied.
	restSubgoals []Goal
	subgoalState subgoalState
}

func (s *Strand) clone() *Strand {
	return &Strand{
		substitution:    s.substitution.Clone(),
		selectedSubgoal: s.selectedSubgoal,
		restSubgoals:    append([]Goal(nil), s.restSubgoals...),
		subgoalState: subgoalState{
			tableID:          s.subgoalState.tableID,
			answerIndex:      s.subgoalState.answerIndex,
			canonicalMapping: s.subgoalState.canonicalMapping,
		},
	}
}

// projectAnswer reduces a freshly derived substitution to the variables
// the table's own goal actually mentions, per spec.md section 4.6: if the
// goal is ground the stored answer is always the empty substitution;
// otherwise bindings for variables above maxVar are dropped since they
// came from a clause's internal bookkeeping and mean nothing to a caller
// of this table.
func (t *Table) projectAnswer(full Substitution) Substitution {
	projected := NewSubstitution()
	if t.maxVar == nil {
		return projected
	}
	for _, v := range full.Bindings() {
		if v > *t.maxVar {
			continue
		}
		term, _ := full.Lookup(v)
		projected.mapping[v] = term
	}
	return projected
}

// insertAnswer projects full and appends it to t.answers unless an
// equal answer is already present, returning whether it was added.
func (t *Table) insertAnswer(full Substitution) (Substitution, bool) {
	projected := t.projectAnswer(full)
	for _, existing := range t.answers {
		if existing.Equal(projected) {
			return projected, false
		}
	}
	t.answers = append(t.answers, projected)
	return projected, true
}
