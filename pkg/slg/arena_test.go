package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaInsertGetSet(t *testing.T) {
	a := NewArena[string]()
	id := a.Insert("hello")
	assert.True(t, id.Valid())

	got, ok := a.Get(id)
	require.True(t, ok)
	assert.Equal(t, "hello", got)

	a.Set(id, "world")
	got, ok = a.Get(id)
	require.True(t, ok)
	assert.Equal(t, "world", got)
}

func TestArenaZeroIDIsInvalid(t *testing.T) {
	var zero ID[string]
	assert.False(t, zero.Valid())

	a := NewArena[string]()
	_, ok := a.Get(zero)
	assert.False(t, ok)
}

func TestArenaMustGetPanicsOnUnknown(t *testing.T) {
	a := NewArena[string]()
	assert.Panics(t, func() { a.MustGet(ID[string]{}) })
}

func TestArenaSetPanicsOnUnknown(t *testing.T) {
	a := NewArena[string]()
	assert.Panics(t, func() { a.Set(ID[string]{}, "x") })
}

func TestArenaDistinctInsertsGetDistinctIDs(t *testing.T) {
	a := NewArena[int]()
	id1 := a.Insert(1)
	id2 := a.Insert(2)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, a.Len())
}

func TestArenaRemove(t *testing.T) {
	a := NewArena[int]()
	id := a.Insert(42)
	v, ok := a.Remove(id)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	_, ok = a.Get(id)
	assert.False(t, ok)
}
