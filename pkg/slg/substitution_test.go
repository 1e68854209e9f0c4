package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyTermsVariableBinding(t *testing.T) {
	s, ok := NewSubstitution().UnifyTerms(Variable(0), Atom("alice"))
	require.True(t, ok)
	got, found := s.Lookup(0)
	require.True(t, found)
	assert.True(t, got.Equal(Atom("alice")))
}

func TestUnifyTermsSameVariable(t *testing.T) {
	s, ok := NewSubstitution().UnifyTerms(Variable(0), Variable(0))
	require.True(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestUnifyTermsAtomMismatch(t *testing.T) {
	_, ok := NewSubstitution().UnifyTerms(Atom("a"), Atom("b"))
	assert.False(t, ok)
}

func TestUnifyTermsOccursCheckFails(t *testing.T) {
	_, ok := NewSubstitution().UnifyTerms(Variable(0), Compound("f", Variable(0)))
	assert.False(t, ok)
}

func TestUnifyTermsCompoundArityMismatch(t *testing.T) {
	_, ok := NewSubstitution().UnifyTerms(Compound("f", Atom("a")), Compound("f", Atom("a"), Atom("b")))
	assert.False(t, ok)
}

func TestUnifyTermsCompoundRecursive(t *testing.T) {
	lhs := Compound("pair", Variable(0), Variable(1))
	rhs := Compound("pair", Atom("a"), Atom("b"))
	s, ok := NewSubstitution().UnifyTerms(lhs, rhs)
	require.True(t, ok)
	v0, _ := s.Lookup(0)
	v1, _ := s.Lookup(1)
	assert.True(t, v0.Equal(Atom("a")))
	assert.True(t, v1.Equal(Atom("b")))
}

func TestUnifyPredicateNameAndArityMismatch(t *testing.T) {
	_, ok := NewSubstitution().UnifyPredicate(NewPredicate("p", Atom("a")), NewPredicate("q", Atom("a")))
	assert.False(t, ok)

	_, ok = NewSubstitution().UnifyPredicate(NewPredicate("p", Atom("a")), NewPredicate("p", Atom("a"), Atom("b")))
	assert.False(t, ok)
}

func TestInsertMappingKeepsIdempotence(t *testing.T) {
	s := NewSubstitution()
	s.InsertMapping(1, Compound("f", Variable(2)))
	s.InsertMapping(2, Atom("a"))

	v1, _ := s.Lookup(1)
	assert.True(t, v1.Equal(Compound("f", Atom("a"))), "existing binding must be rewritten, not left stale")
}

func TestApplyTermIsSinglePass(t *testing.T) {
	s := NewSubstitution()
	s.InsertMapping(0, Atom("a"))
	applied := s.ApplyTerm(Compound("f", Variable(0), Variable(1)))
	assert.True(t, applied.Equal(Compound("f", Atom("a"), Variable(1))))
	assert.True(t, s.ApplyTerm(applied).Equal(applied))
}

func TestComposeAppliesLikeSequentialSubstitution(t *testing.T) {
	sigma := NewSubstitution()
	sigma.InsertMapping(0, Variable(1))
	tau := NewSubstitution()
	tau.InsertMapping(1, Atom("a"))

	composed := sigma.Clone()
	composed.Compose(tau)

	direct := sigma.ApplyTerm(Variable(0))
	direct = tau.ApplyTerm(direct)

	assert.True(t, composed.ApplyTerm(Variable(0)).Equal(direct))
}

func TestSubstitutionEqual(t *testing.T) {
	a := NewSubstitution()
	a.InsertMapping(0, Atom("x"))
	b := NewSubstitution()
	b.InsertMapping(0, Atom("x"))
	assert.True(t, a.Equal(b))

	b.InsertMapping(1, Atom("y"))
	assert.False(t, a.Equal(b))
}

func TestSubstitutionCloneIsIndependent(t *testing.T) {
	a := NewSubstitution()
	a.InsertMapping(0, Atom("x"))
	b := a.Clone()
	b.InsertMapping(1, Atom("y"))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}
