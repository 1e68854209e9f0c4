package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermConstructorsAndAccessors(t *testing.T) {
	a := Atom("alice")
	require.True(t, a.IsAtom())
	assert.Equal(t, "alice", a.AtomName())

	v := Variable(3)
	require.True(t, v.IsVariable())
	assert.Equal(t, 3, v.VariableIndex())

	c := Compound("pair", a, v)
	require.True(t, c.IsCompound())
	assert.Equal(t, "pair", c.Functor())
	assert.Len(t, c.Args(), 2)
}

func TestTermAccessorsPanicOnWrongKind(t *testing.T) {
	assert.Panics(t, func() { Atom("x").VariableIndex() })
	assert.Panics(t, func() { Variable(0).AtomName() })
	assert.Panics(t, func() { Atom("x").Args() })
}

func TestTermEqual(t *testing.T) {
	assert.True(t, Atom("a").Equal(Atom("a")))
	assert.False(t, Atom("a").Equal(Atom("b")))
	assert.True(t, Variable(1).Equal(Variable(1)))
	assert.False(t, Variable(1).Equal(Variable(2)))
	assert.True(t, Compound("f", Atom("a"), Variable(0)).Equal(Compound("f", Atom("a"), Variable(0))))
	assert.False(t, Compound("f", Atom("a")).Equal(Compound("g", Atom("a"))))
	assert.False(t, Atom("a").Equal(Variable(0)))
}

func TestTermCompoundCopiesArgs(t *testing.T) {
	args := []Term{Atom("a"), Atom("b")}
	c := Compound("f", args...)
	args[0] = Atom("z")
	assert.Equal(t, "a", c.Args()[0].AtomName())
}

func TestTermMaxVariableIndex(t *testing.T) {
	_, found := Atom("a").maxVariableIndex()
	assert.False(t, found)

	max, found := Compound("f", Variable(2), Compound("g", Variable(5)), Variable(1)).maxVariableIndex()
	require.True(t, found)
	assert.Equal(t, 5, max)
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "alice", Atom("alice").String())
	assert.Equal(t, "?2", Variable(2).String())
	assert.Equal(t, "f(alice, ?0)", Compound("f", Atom("alice"), Variable(0)).String())
}
