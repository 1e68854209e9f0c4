package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddClauseCanonicalizesAndPreservesOrder(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.AddClause(NewClause(NewPredicate("parent", Variable(9), Variable(3))))
	kb.AddClause(NewClause(NewPredicate("parent", Atom("alice"), Atom("bob"))))

	clauses := kb.GetClauses("parent")
	require.Len(t, clauses, 2)
	assert.True(t, clauses[0].Head.Args[0].Equal(Variable(0)))
	assert.True(t, clauses[0].Head.Args[1].Equal(Variable(1)))
	assert.True(t, clauses[1].Head.Args[0].Equal(Atom("alice")))
}

func TestAddClauseDoesNotDeduplicate(t *testing.T) {
	kb := NewKnowledgeBase()
	fact := NewClause(NewPredicate("p", Atom("a")))
	kb.AddClause(fact)
	kb.AddClause(fact)
	assert.Len(t, kb.GetClauses("p"), 2)
}

func TestAddClauseDoesNotMutateCallersClause(t *testing.T) {
	kb := NewKnowledgeBase()
	original := NewClause(NewPredicate("p", Variable(9)))
	kb.AddClause(original)
	assert.True(t, original.Head.Args[0].Equal(Variable(9)), "AddClause must not rewrite the caller's own clause")
}

func TestPredicateNamesPreservesFirstInsertionOrder(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.AddClause(NewClause(NewPredicate("b", Atom("x"))))
	kb.AddClause(NewClause(NewPredicate("a", Atom("y"))))
	kb.AddClause(NewClause(NewPredicate("b", Atom("z"))))
	assert.Equal(t, []string{"b", "a"}, kb.PredicateNames())
}

func TestValidateReportsArityMismatch(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.AddClause(NewClause(NewPredicate("p", Atom("a"))))
	kb.AddClause(NewClause(NewPredicate("p", Atom("a"), Atom("b"))))

	err := kb.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arity")
}

func TestValidatePassesForConsistentArity(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.AddClause(NewClause(NewPredicate("p", Atom("a"))))
	kb.AddClause(NewClause(NewPredicate("p", Atom("b"))))
	assert.NoError(t, kb.Validate())
}
