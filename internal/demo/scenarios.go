// Package demo builds the knowledge bases and goals used to exercise the
// solver end to end: seven scenarios (single fact, no solution,
// enumeration, grandparent, reachability, odd/even, cyclic dependency).
// They are reusable builders rather than a single main function so every
// slgtab subcommand runs the exact same fixtures. The pkg/slg tests do not
// import this package; they build the same scenarios inline.
package demo

import "github.com/tabled-logic/slg/pkg/slg"

// Scenario names, used as arguments to `slgtab run`.
const (
	SingleFact       = "single-fact"
	NoSolution       = "no-solution"
	Enumeration      = "enumeration"
	Grandparent      = "grandparent"
	Reachability     = "reachability"
	OddEven          = "odd-even"
	CyclicDependency = "cyclic-dependency"
)

// Names lists every scenario in a stable, demonstration-friendly order.
func Names() []string {
	return []string{
		SingleFact,
		NoSolution,
		Enumeration,
		Grandparent,
		Reachability,
		OddEven,
		CyclicDependency,
	}
}

// Scenario bundles a knowledge base with the goal(s) to run against it.
// Most scenarios pose a single goal; OddEven and CyclicDependency pose a
// second goal against the same knowledge base (and, per the spec, should
// be run through the same Solver so memoization is observable across
// CreateGoalState calls).
type Scenario struct {
	Name        string
	Description string
	KB          *slg.KnowledgeBase
	Goals       []slg.Goal
}

// Build returns the named scenario, panicking if name is unrecognized
// (this is a programming error at a call site, not a runtime condition:
// every caller is expected to range over Names()).
func Build(name string) Scenario {
	switch name {
	case SingleFact:
		return singleFact()
	case NoSolution:
		return noSolution()
	case Enumeration:
		return enumeration()
	case Grandparent:
		return grandparent()
	case Reachability:
		return reachability()
	case OddEven:
		return oddEven()
	case CyclicDependency:
		return cyclicDependency()
	default:
		panic("demo: unknown scenario " + name)
	}
}

func atomPred(name string, atoms ...string) slg.Predicate {
	args := make([]slg.Term, len(atoms))
	for i, a := range atoms {
		args[i] = slg.Atom(a)
	}
	return slg.NewPredicate(name, args...)
}

func singleFact() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("parent", "alice", "bob")))
	goal := slg.NewGoal(atomPred("parent", "alice", "bob"))
	return Scenario{
		Name:        SingleFact,
		Description: "one fact, ground query: exactly one empty-mapping solution",
		KB:          kb,
		Goals:       []slg.Goal{goal},
	}
}

func noSolution() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("parent", "alice", "bob")))
	goal := slg.NewGoal(atomPred("parent", "bob", "alice"))
	return Scenario{
		Name:        NoSolution,
		Description: "ground query with no matching fact: zero solutions",
		KB:          kb,
		Goals:       []slg.Goal{goal},
	}
}

func enumeration() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("parent", "alice", "dave")))
	kb.AddClause(slg.NewClause(atomPred("parent", "bob", "carol")))
	goal := slg.NewGoal(slg.NewPredicate("parent", slg.Variable(0), slg.Variable(1)))
	return Scenario{
		Name:        Enumeration,
		Description: "two facts, both-variable query: two solutions, either order",
		KB:          kb,
		Goals:       []slg.Goal{goal},
	}
}

func grandparent() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("parent", "alice", "bob")))
	kb.AddClause(slg.NewClause(atomPred("parent", "bob", "carol")))
	kb.AddClause(slg.NewClause(
		slg.NewPredicate("grandparent", slg.Variable(0), slg.Variable(1)),
		slg.NewGoal(slg.NewPredicate("parent", slg.Variable(0), slg.Variable(2))),
		slg.NewGoal(slg.NewPredicate("parent", slg.Variable(2), slg.Variable(1))),
	))
	goal := slg.NewGoal(atomPred("grandparent", "alice", "carol"))
	return Scenario{
		Name:        Grandparent,
		Description: "two-step rule composition via a shared intermediate variable",
		KB:          kb,
		Goals:       []slg.Goal{goal},
	}
}

func reachability() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("over", "a", "b")))
	kb.AddClause(slg.NewClause(atomPred("over", "b", "c")))
	kb.AddClause(slg.NewClause(atomPred("over", "c", "d")))
	kb.AddClause(slg.NewClause(
		slg.NewPredicate("over", slg.Variable(0), slg.Variable(1)),
		slg.NewGoal(slg.NewPredicate("over", slg.Variable(0), slg.Variable(2))),
		slg.NewGoal(slg.NewPredicate("over", slg.Variable(2), slg.Variable(1))),
	))
	goal := slg.NewGoal(slg.NewPredicate("over", slg.Atom("a"), slg.Variable(0)))
	return Scenario{
		Name:        Reachability,
		Description: "transitive closure: direct left recursion over a shared table",
		KB:          kb,
		Goals:       []slg.Goal{goal},
	}
}

func oddEven() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("even", "0")))
	kb.AddClause(slg.NewClause(atomPred("succ", "0", "1")))
	kb.AddClause(slg.NewClause(atomPred("succ", "1", "2")))
	kb.AddClause(slg.NewClause(atomPred("succ", "2", "3")))
	kb.AddClause(slg.NewClause(atomPred("succ", "3", "4")))
	kb.AddClause(slg.NewClause(
		slg.NewPredicate("odd", slg.Variable(0)),
		slg.NewGoal(slg.NewPredicate("even", slg.Variable(1))),
		slg.NewGoal(slg.NewPredicate("succ", slg.Variable(1), slg.Variable(0))),
	))
	kb.AddClause(slg.NewClause(
		slg.NewPredicate("even", slg.Variable(0)),
		slg.NewGoal(slg.NewPredicate("odd", slg.Variable(1))),
		slg.NewGoal(slg.NewPredicate("succ", slg.Variable(1), slg.Variable(0))),
	))
	oddGoal := slg.NewGoal(slg.NewPredicate("odd", slg.Variable(0)))
	evenGoal := slg.NewGoal(slg.NewPredicate("even", slg.Variable(0)))
	return Scenario{
		Name:        OddEven,
		Description: "mutual recursion through two tables, run against one Solver",
		KB:          kb,
		Goals:       []slg.Goal{oddGoal, evenGoal},
	}
}

func cyclicDependency() Scenario {
	kb := slg.NewKnowledgeBase()
	kb.AddClause(slg.NewClause(atomPred("depends", "a", "b")))
	kb.AddClause(slg.NewClause(atomPred("depends", "b", "c")))
	kb.AddClause(slg.NewClause(atomPred("depends", "c", "a")))
	kb.AddClause(slg.NewClause(atomPred("depends", "d", "e")))
	kb.AddClause(slg.NewClause(
		slg.NewPredicate("indirect", slg.Variable(0), slg.Variable(1)),
		slg.NewGoal(slg.NewPredicate("depends", slg.Variable(0), slg.Variable(1))),
	))
	kb.AddClause(slg.NewClause(
		slg.NewPredicate("indirect", slg.Variable(0), slg.Variable(1)),
		slg.NewGoal(slg.NewPredicate("depends", slg.Variable(0), slg.Variable(2))),
		slg.NewGoal(slg.NewPredicate("indirect", slg.Variable(2), slg.Variable(1))),
	))
	goalA := slg.NewGoal(slg.NewPredicate("indirect", slg.Atom("a"), slg.Variable(0)))
	goalD := slg.NewGoal(slg.NewPredicate("indirect", slg.Atom("d"), slg.Variable(0)))
	return Scenario{
		Name:        CyclicDependency,
		Description: "a three-cycle in the dependency graph terminates instead of diverging",
		KB:          kb,
		Goals:       []slg.Goal{goalA, goalD},
	}
}
