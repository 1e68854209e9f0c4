package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushAssignsIncreasingDFNs(t *testing.T) {
	s := NewStack()
	arena := NewArena[Table]()
	idA := arena.Insert(Table{})
	idB := arena.Insert(Table{})

	i0 := s.Push(idA)
	i1 := s.Push(idB)

	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, DepthFirstNumber(0), s.At(0).DFN)
	assert.Equal(t, DepthFirstNumber(1), s.At(1).DFN)
}

func TestStackIsActive(t *testing.T) {
	s := NewStack()
	arena := NewArena[Table]()
	idA := arena.Insert(Table{})
	idB := arena.Insert(Table{})

	s.Push(idA)

	idx, active := s.IsActive(idA)
	require.True(t, active)
	assert.Equal(t, 0, idx)

	_, active = s.IsActive(idB)
	assert.False(t, active)
}

func TestStackPopRemovesTopEntry(t *testing.T) {
	s := NewStack()
	arena := NewArena[Table]()
	id := arena.Insert(Table{})
	s.Push(id)
	assert.Equal(t, 1, s.Len())

	entry := s.Pop()
	assert.Equal(t, id, entry.Table)
	assert.Equal(t, 0, s.Len())
}

func TestStackPopPanicsWhenEmpty(t *testing.T) {
	s := NewStack()
	assert.Panics(t, func() { s.Pop() })
}
