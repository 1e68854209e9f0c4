package slg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectAnswerGroundGoalYieldsEmptySubstitution(t *testing.T) {
	table := &Table{maxVar: nil}
	full := NewSubstitution()
	full.InsertMapping(3, Atom("irrelevant"))

	projected := table.projectAnswer(full)
	assert.Equal(t, 0, projected.Len())
}

func TestProjectAnswerDropsBindingsAboveMaxVar(t *testing.T) {
	max := 1
	table := &Table{maxVar: &max}
	full := NewSubstitution()
	full.InsertMapping(0, Atom("a"))
	full.InsertMapping(1, Atom("b"))
	full.InsertMapping(7, Atom("internal-only"))

	projected := table.projectAnswer(full)
	assert.Equal(t, 2, projected.Len())
	v0, _ := projected.Lookup(0)
	v1, _ := projected.Lookup(1)
	assert.True(t, v0.Equal(Atom("a")))
	assert.True(t, v1.Equal(Atom("b")))
}

func TestInsertAnswerDeduplicatesAfterProjection(t *testing.T) {
	max := 0
	table := &Table{maxVar: &max}

	first := NewSubstitution()
	first.InsertMapping(0, Atom("a"))
	first.InsertMapping(9, Atom("noise-1"))
	_, added := table.insertAnswer(first)
	assert.True(t, added)

	second := NewSubstitution()
	second.InsertMapping(0, Atom("a"))
	second.InsertMapping(9, Atom("noise-2"))
	_, added = table.insertAnswer(second)
	assert.False(t, added, "answers that agree after projection must be deduplicated")

	assert.Len(t, table.answers, 1)
}
