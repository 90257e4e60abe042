package multitag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain returns a, b, c, d where d is the root and a is the leaf.
func chain() (a, b, c, d *object) {
	d = &object{name: "d"}
	c = &object{name: "c", parent: d}
	b = &object{name: "b", parent: c}
	a = &object{name: "a", parent: b}
	return
}

func TestAncestorOrder(t *testing.T) {
	idx, _ := newTestIndex()
	h := NewHierarchy(idx, parentOf)
	a, b, _, d := chain()

	idx.Register(b, "x")
	idx.Register(d, "x")

	assert.Equal(t, []*object{b, d}, h.AncestorsWithTag(a, "x"))

	first, ok := h.FirstAncestorWithTag(a, "x")
	require.True(t, ok)
	assert.Equal(t, b, first)
}

func TestAncestorExcludesSelf(t *testing.T) {
	idx, _ := newTestIndex()
	h := NewHierarchy(idx, parentOf)
	a, _, c, _ := chain()

	idx.Register(a, "x")
	idx.Register(c, "x")

	assert.Equal(t, []*object{c}, h.AncestorsWithTag(a, "x"))
	first, ok := h.FirstAncestorWithTag(a, "x")
	require.True(t, ok)
	assert.Equal(t, c, first)
}

func TestRootHasNoAncestors(t *testing.T) {
	idx, _ := newTestIndex()
	h := NewHierarchy(idx, parentOf)
	_, _, _, d := chain()

	idx.Register(d, "x")

	_, ok := h.FirstAncestorWithTag(d, "x")
	assert.False(t, ok)
	assert.Empty(t, h.AncestorsWithTag(d, "x"))
}

func TestNoMatch(t *testing.T) {
	idx, _ := newTestIndex()
	h := NewHierarchy(idx, parentOf)
	a, b, _, _ := chain()

	idx.Register(b, "y")

	first, ok := h.FirstAncestorWithTag(a, "x")
	assert.False(t, ok)
	assert.Nil(t, first)
	assert.Empty(t, h.AncestorsWithTag(a, "x"))
}

func TestAncestorPredicates(t *testing.T) {
	idx, _ := newTestIndex()
	h := NewHierarchy(idx, parentOf)
	a, b, c, d := chain()

	idx.Register(b, "x")
	idx.Register(c, "x", "y")
	idx.Register(d, "y", "z")

	t.Run("all", func(t *testing.T) {
		first, ok := h.FirstAncestorWithAllTags(a, "x", "y")
		require.True(t, ok)
		assert.Equal(t, c, first)
		assert.Equal(t, []*object{c}, h.AncestorsWithAllTags(a, "x", "y"))
	})

	t.Run("all, without tags", func(t *testing.T) {
		assert.Equal(t, []*object{b, c, d}, h.AncestorsWithAllTags(a))
	})

	t.Run("any", func(t *testing.T) {
		first, ok := h.FirstAncestorWithAnyTag(a, "y", "z")
		require.True(t, ok)
		assert.Equal(t, c, first)
		assert.Equal(t, []*object{c, d}, h.AncestorsWithAnyTag(a, "y", "z"))
	})

	t.Run("any, without tags", func(t *testing.T) {
		_, ok := h.FirstAncestorWithAnyTag(a)
		assert.False(t, ok)
	})

	t.Run("zero predicate", func(t *testing.T) {
		assert.Equal(t, []*object{b, c, d}, h.Ancestors(a, Predicate{}))
	})
}

func TestNilParentFunc(t *testing.T) {
	idx, _ := newTestIndex()
	h := NewHierarchy(idx, nil)
	a, b, _, _ := chain()

	idx.Register(b, "x")
	assert.Empty(t, h.AncestorsWithTag(a, "x"))
}

func TestHierarchyWithValueIdentity(t *testing.T) {
	idx := NewIndex[int](Options{Logger: &mockLogger{}})
	parents := map[int]int{1: 2, 2: 3}
	h := NewHierarchy(idx, func(id int) (int, bool) {
		p, ok := parents[id]
		return p, ok
	})

	idx.Register(3, "x")
	first, ok := h.FirstAncestorWithTag(1, "x")
	require.True(t, ok)
	assert.Equal(t, 3, first)
}
