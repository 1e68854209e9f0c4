package slg

import (
	"go.uber.org/zap"

	"github.com/google/uuid"
)

// Stats reports counters a caller can use for diagnostics or benchmarking;
// none of them affect solving semantics (spec.md's Component Design never
// requires the engine to expose them, but section 5 invites implementers
// to surface whatever resource accounting is useful).
type Stats struct {
	TablesCreated int
	StrandsForked int
	AnswersFound  int
	CyclesClosed  int
	StepsConsumed int
}

// GoalState tracks a single caller's position over the answers of one
// goal: which table it reads from, how many answers it has already
// consumed, and how to translate a table's canonical answer back into the
// variable space the caller posed the goal in. It is deliberately not a
// Goal or a Table itself: several GoalStates (e.g. two different queries
// that happen to canonicalize identically) can legitimately share one
// Table while independently tracking their own answerIndex.
type GoalState struct {
	tableID        ID[Table]
	answerIndex    int
	reverseMapping map[int]int
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches structured logging (via zap) to every table
// creation, strand fork, answer insertion, and cycle closure the solver
// performs. Pass zap.NewNop() (the default) to disable it entirely.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithTrace attaches a caller-supplied hook invoked for the same events as
// WithLogger, letting a front-end observe derivation without depending on
// zap. Both a logger and a trace hook may be active at once.
func WithTrace(trace Trace) Option {
	return func(s *Solver) {
		s.trace = trace
	}
}

// WithStepBudget bounds the number of strand-processing steps the Solver
// may perform before PullNextGoal returns ErrStepBudgetExceeded. The count
// accumulates across PullNextGoal calls (and across goals) until
// ResetStepBudget clears it; it is not reset per call. This guards against runaway computation on a
// pathological knowledge base (spec.md section 5: "Implementers may add a
// step budget... without changing the core algorithm's correctness").
// budget <= 0 disables the limit (the default).
func WithStepBudget(budget int) Option {
	return func(s *Solver) {
		s.stepBudget = budget
	}
}

// Solver evaluates goals against a fixed KnowledgeBase using tabled SLG
// resolution. A Solver is not safe for concurrent use: every exported
// method must be called from a single goroutine at a time, mirroring the
// synchronous, single-threaded engine spec.md section 5 calls for
// (parallel evaluation is an explicit non-goal).
type Solver struct {
	kb       *KnowledgeBase
	tables   *Arena[Table]
	tableIDs map[string]ID[Table]
	stack    *Stack

	logger *zap.Logger
	trace  Trace

	sessionID uuid.UUID
	stats     Stats

	stepBudget  int
	stepsInCall int
}

// NewSolver builds a Solver over kb. kb is not copied; mutating it after
// goals have been created against this Solver produces undefined
// derivations, matching the teacher's convention of trusting callers not
// to mutate shared state mid-use.
func NewSolver(kb *KnowledgeBase, opts ...Option) *Solver {
	s := &Solver{
		kb:        kb,
		tables:    NewArena[Table](),
		tableIDs:  make(map[string]ID[Table]),
		stack:     NewStack(),
		logger:    zap.NewNop(),
		sessionID: uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.sessionID.String()))
	return s
}

// Stats returns a snapshot of the solver's diagnostic counters.
func (s *Solver) Stats() Stats { return s.stats }

// ResetStepBudget clears the step counter accumulated since the Solver was
// built or last reset, letting a caller resume after ErrStepBudgetExceeded.
func (s *Solver) ResetStepBudget() { s.stepsInCall = 0 }

func (s *Solver) emit(ev Event) {
	newLoggingTrace(s.logger)(ev)
	if s.trace != nil {
		s.trace(ev)
	}
}

// CreateGoalState canonicalizes goal, gets-or-creates its Table, and
// returns a fresh GoalState positioned before the table's first answer.
func (s *Solver) CreateGoalState(goal Goal) *GoalState {
	canonical, forward := CanonicalizeGoal(goal)
	tableID := s.getOrCreateTableID(canonical)
	return &GoalState{
		tableID:        tableID,
		answerIndex:    0,
		reverseMapping: ReverseMapping(forward),
	}
}

// PullNextGoal advances state to its next answer, returning it together
// with true, or (Substitution{}, false, nil) once the goal is exhausted.
// A non-nil error is only ever ErrStepBudgetExceeded; call ResetStepBudget
// and call PullNextGoal again to resume.
func (s *Solver) PullNextGoal(state *GoalState) (Substitution, bool, error) {
	err := s.ensureAnswer(state.tableID, state.answerIndex)
	if err != nil {
		if err == ErrStepBudgetExceeded {
			return Substitution{}, false, err
		}
		se, _ := asSolveError(err)
		assertf(se != nil, "PullNextGoal: unexpected error type %T", err)
		// NegativeCyclicDependency is unreachable under pure Horn clauses
		// (see DESIGN.md); fold it into plain exhaustion just like
		// NoMoreSolutions, since neither is observable to a caller.
		return Substitution{}, false, nil
	}
	t := s.tables.MustGet(state.tableID)
	answer := t.answers[state.answerIndex]
	state.answerIndex++
	s.stats.AnswersFound++
	return UncanonicalizeSubstitution(answer, state.reverseMapping), true, nil
}

// getOrCreateTableID returns the existing table for canonicalGoal, or
// registers a fresh (empty) one and populates it immediately.
//
// The table handle is inserted into tableIDs *before* populateTable runs,
// not after: a clause whose first body subgoal canonicalizes back to the
// very goal under construction (direct left recursion, e.g. the classic
// over(X,Y) :- over(X,Z), over(Z,Y) transitive-closure rule) must see its
// own table already registered so the recursive lookup returns immediately
// instead of re-entering populateTable. See DESIGN.md for why this departs
// from the reference prototype's order of operations.
func (s *Solver) getOrCreateTableID(canonicalGoal Goal) ID[Table] {
	key := goalKey(canonicalGoal)
	if id, ok := s.tableIDs[key]; ok {
		return id
	}
	var maxVar *int
	if v, found := canonicalGoal.maxVariableIndex(); found {
		maxVar = &v
	}
	id := s.tables.Insert(Table{goal: canonicalGoal, maxVar: maxVar})
	s.tableIDs[key] = id
	s.stats.TablesCreated++
	s.emit(Event{Kind: EventTableCreated, TableGoal: canonicalGoal})
	s.populateTable(id, canonicalGoal)
	return id
}

// populateTable implements spec.md section 4.6's create_table: try every
// clause for the goal's predicate in knowledge-base order, renaming each
// clause's variables fresh (above the goal's own highest index) before
// unifying it against the goal. A fact that unifies becomes an answer
// directly; a rule that unifies becomes a Strand selecting its first body
// goal, with the rest deferred.
func (s *Solver) populateTable(id ID[Table], canonicalGoal Goal) {
	t := s.tables.MustGet(id)
	k := 0
	if t.maxVar != nil {
		k = *t.maxVar + 1
	}
	for _, clause := range s.kb.GetClauses(canonicalGoal.Predicate.Name) {
		fresh, _ := CanonicalizeClauseWithCounter(clause.clone(), k)
		subst, ok := NewSubstitution().UnifyPredicate(canonicalGoal.Predicate, fresh.Head)
		if !ok {
			continue
		}
		if len(fresh.Body) == 0 {
			answer, added := t.insertAnswer(subst)
			s.emit(Event{Kind: EventAnswerInserted, TableGoal: canonicalGoal, Answer: answer, Added: added})
			continue
		}
		selected := subst.ApplyGoal(fresh.Body[0])
		canonicalSelected, forward := CanonicalizeGoal(selected)
		reverse := ReverseMapping(forward)
		subTableID := s.getOrCreateTableID(canonicalSelected)
		strand := &Strand{
			substitution:    subst,
			selectedSubgoal: selected,
			restSubgoals:    append([]Goal(nil), fresh.Body[1:]...),
			subgoalState: subgoalState{
				tableID:          subTableID,
				answerIndex:      0,
				canonicalMapping: reverse,
			},
		}
		t.workList = append(t.workList, strand)
	}
	s.tables.Set(id, t)
}

// ensureAnswer implements spec.md section 4.7: make sure tableID's
// answers slice has at least answerIndex+1 entries, deriving more if
// necessary. It returns nil when the answer is available, otherwise one
// of the three internal errors (NoMoreSolutions or one of the two
// cyclic-dependency kinds) or ErrStepBudgetExceeded.
func (s *Solver) ensureAnswer(tableID ID[Table], answerIndex int) error {
	t := s.tables.MustGet(tableID)
	if len(t.answers) > answerIndex {
		return nil
	}
	assertf(len(t.answers) == answerIndex,
		"ensureAnswer: answers consumed out of order (have %d, want %d)", len(t.answers), answerIndex)

	if idx, active := s.stack.IsActive(tableID); active {
		return errPositiveCycle(s.stack.At(idx).DFN)
	}
	if s.stepBudget > 0 && s.stepsInCall >= s.stepBudget {
		return ErrStepBudgetExceeded
	}

	stackIndex := s.stack.Push(tableID)
	err := s.pullNextAnswer(tableID, stackIndex)
	s.stack.Pop()
	return err
}

// pullNextAnswer drives tableID's work-list until either a new answer
// lands at the table (success), the work-list and every delayed strand
// are exhausted (NoMoreSolutions), or a cyclic dependency is detected and
// classified (positive or negative).
func (s *Solver) pullNextAnswer(tableID ID[Table], stackIndex int) error {
	cyclicCounter := MaxDepthFirstNumber
	var delayed []*Strand

	for {
		if s.stepBudget > 0 {
			s.stepsInCall++
			s.stats.StepsConsumed++
			if s.stepsInCall > s.stepBudget {
				return ErrStepBudgetExceeded
			}
		}

		t := s.tables.MustGet(tableID)
		if len(t.workList) == 0 {
			if len(delayed) == 0 {
				return errNoMore()
			}
			return s.classifyCycle(tableID, delayed, cyclicCounter, stackIndex)
		}
		strand := t.workList[0]
		t.workList = t.workList[1:]
		s.tables.Set(tableID, t)

		outcome, err := s.tryPullNextAnswerFromStrand(tableID, strand)
		if err != nil {
			if err == ErrStepBudgetExceeded {
				return err
			}
			se, _ := asSolveError(err)
			switch se.kind {
			case errPositiveCyclicDependency:
				delayed = append(delayed, strand)
				if se.dfn < cyclicCounter {
					cyclicCounter = se.dfn
				}
				continue
			case errNegativeCyclicDependency:
				return err
			default: // errNoMoreSolutions: drop strand, continue
				continue
			}
		}

		switch outcome {
		case strandNewAnswer:
			t = s.tables.MustGet(tableID)
			t.workList = append(t.workList, delayed...)
			s.tables.Set(tableID, t)
			return nil
		case strandStale, strandProgress:
			continue
		}
	}
}

type strandOutcome uint8

const (
	strandNewAnswer strandOutcome = iota
	strandStale
	strandProgress
)

// tryPullNextAnswerFromStrand advances one strand by one step: it pulls
// the next answer of the strand's selected subgoal (recursively invoking
// ensureAnswer, which is how the Stack grows and cyclic dependencies are
// discovered), then either produces a table answer (if the clause body is
// now fully satisfied) or forks a new strand to continue with the next
// subgoal.
func (s *Solver) tryPullNextAnswerFromStrand(tableID ID[Table], strand *Strand) (strandOutcome, error) {
	err := s.ensureAnswer(strand.subgoalState.tableID, strand.subgoalState.answerIndex)
	if err != nil {
		if err == ErrStepBudgetExceeded {
			return 0, err
		}
		se, _ := asSolveError(err)
		switch se.kind {
		case errPositiveCyclicDependency, errNegativeCyclicDependency:
			return 0, err
		default: // errNoMoreSolutions: this strand can never produce more
			return strandStale, nil
		}
	}

	subTable := s.tables.MustGet(strand.subgoalState.tableID)
	pulled := subTable.answers[strand.subgoalState.answerIndex].Clone()
	uncanon := UncanonicalizeSubstitution(pulled, strand.subgoalState.canonicalMapping)
	strand.subgoalState.answerIndex++

	if len(strand.restSubgoals) == 0 {
		merged := strand.substitution.Clone()
		merged.Compose(uncanon)
		t := s.tables.MustGet(tableID)
		answer, added := t.insertAnswer(merged)
		t.workList = append(t.workList, strand)
		s.tables.Set(tableID, t)
		s.emit(Event{Kind: EventAnswerInserted, TableGoal: t.goal, Answer: answer, Added: added})
		if added {
			return strandNewAnswer, nil
		}
		return strandProgress, nil
	}

	forked := strand.clone()
	forked.substitution.Compose(uncanon)
	forked.selectedSubgoal = forked.substitution.ApplyGoal(forked.restSubgoals[0])
	forked.restSubgoals = forked.restSubgoals[1:]
	canonicalSelected, forward := CanonicalizeGoal(forked.selectedSubgoal)
	forked.subgoalState = subgoalState{
		tableID:          s.getOrCreateTableID(canonicalSelected),
		answerIndex:      0,
		canonicalMapping: ReverseMapping(forward),
	}

	t := s.tables.MustGet(tableID)
	// Push forked then strand: both land at the back of the work-list, in
	// that relative order, so the fork is tried before the parent strand
	// next resumes (spec.md section 4.7).
	t.workList = append(t.workList, forked, strand)
	s.tables.Set(tableID, t)
	s.stats.StrandsForked++
	s.emit(Event{Kind: EventStrandForked, TableGoal: t.goal})
	return strandProgress, nil
}

// classifyCycle implements spec.md section 4.7's termination condition for
// a table whose work-list is empty but which accumulated delayed strands
// during this call: the table's own depth-first number compared against
// the minimum DFN among the cyclic dependencies it hit tells us whether
// this table is the root of its strongly connected component (in which
// case the component is fully explored and the delayed strands are
// discarded for good), strictly inside it (propagate upward as a positive
// cycle so an ancestor can make that determination instead), or somehow
// below it, which would indicate an ordering inconsistency reserved for
// well-founded negation and is not reachable for pure Horn clauses.
func (s *Solver) classifyCycle(tableID ID[Table], delayed []*Strand, cyclicCounter DepthFirstNumber, stackIndex int) error {
	current := s.stack.At(stackIndex).DFN
	switch {
	case current < cyclicCounter:
		return errNegativeCycle()
	case current == cyclicCounter:
		s.clearStrandsAfterCycle(delayed)
		s.stats.CyclesClosed++
		s.emit(Event{Kind: EventCycleClosed, TableGoal: s.tables.MustGet(tableID).goal, DFN: current})
		return errNoMore()
	default:
		return errPositiveCycle(cyclicCounter)
	}
}

// clearStrandsAfterCycle drops the delayed strands (they are simply not
// re-enqueued anywhere) and recursively empties the work-lists of every
// table they were waiting on, since a closed strongly connected component
// means those pending derivations can never contribute a new answer.
func (s *Solver) clearStrandsAfterCycle(delayed []*Strand) {
	visited := make(map[int]bool)
	var clear func([]*Strand)
	clear = func(strands []*Strand) {
		for _, st := range strands {
			id := st.subgoalState.tableID
			if visited[id.index] {
				continue
			}
			visited[id.index] = true
			t, ok := s.tables.Get(id)
			if !ok || len(t.workList) == 0 {
				continue
			}
			pending := t.workList
			t.workList = nil
			s.tables.Set(id, t)
			clear(pending)
		}
	}
	clear(delayed)
}
