package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeGoalRenamesInFirstOccurrenceOrder(t *testing.T) {
	g := NewGoal(NewPredicate("p", Variable(7), Variable(3), Variable(7)))
	canon, forward := CanonicalizeGoal(g)

	assert.True(t, canon.Predicate.Args[0].Equal(Variable(0)))
	assert.True(t, canon.Predicate.Args[1].Equal(Variable(1)))
	assert.True(t, canon.Predicate.Args[2].Equal(Variable(0)))
	assert.Equal(t, map[int]int{7: 0, 3: 1}, forward)
}

func TestCanonicalizeIsARenaming(t *testing.T) {
	c := NewClause(
		NewPredicate("grandparent", Variable(5), Variable(9)),
		NewGoal(NewPredicate("parent", Variable(5), Variable(2))),
		NewGoal(NewPredicate("parent", Variable(2), Variable(9))),
	)
	canon, _ := CanonicalizeClause(c)

	assert.Equal(t, "grandparent", canon.Head.Name)
	assert.True(t, canon.Head.Args[0].Equal(Variable(0)))
	assert.True(t, canon.Head.Args[1].Equal(Variable(1)))
	assert.True(t, canon.Body[0].Predicate.Args[1].Equal(Variable(2)))
	assert.True(t, canon.Body[1].Predicate.Args[0].Equal(Variable(2)))
}

func TestCanonicalizeWithCounterStartsAboveStart(t *testing.T) {
	g := NewGoal(NewPredicate("p", Variable(0), Variable(1)))
	canon, forward := CanonicalizeGoalWithCounter(g, 5)
	assert.True(t, canon.Predicate.Args[0].Equal(Variable(5)))
	assert.True(t, canon.Predicate.Args[1].Equal(Variable(6)))
	assert.Equal(t, map[int]int{0: 5, 1: 6}, forward)
}

func TestReverseMappingAndUncanonicalizeRoundTrip(t *testing.T) {
	g := NewGoal(NewPredicate("p", Variable(9), Variable(4)))
	canon, forward := CanonicalizeGoal(g)
	reverse := ReverseMapping(forward)

	sub := NewSubstitution()
	sub.InsertMapping(0, Atom("a"))
	sub.InsertMapping(1, Compound("f", Variable(0)))

	uncanon := UncanonicalizeSubstitution(sub, reverse)

	v9, ok := uncanon.Lookup(9)
	require.True(t, ok)
	assert.True(t, v9.Equal(Atom("a")))

	v4, ok := uncanon.Lookup(4)
	require.True(t, ok)
	assert.True(t, v4.Equal(Compound("f", Variable(9))), "free variable inside a binding must be remapped too")

	_ = canon
}
