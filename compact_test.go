package ternset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact(t *testing.T) {
	t.Run("shared suffixes dedup", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		before := s.Stats().Nodes
		s.Compact()
		assert.True(t, s.Compacted())
		// three copies of the "ount" chain collapse into one
		assert.Less(t, s.Stats().Nodes, before)
		assert.Equal(t, []string{"count", "fount", "mount"}, s.ToSlice())
	})

	t.Run("contents unchanged for arbitrary sets", func(t *testing.T) {
		s := NewFrom("", "a", "ab", "abc", "b", "ba", "bab", "日本", "日本語")
		want := s.ToSlice()
		s.Compact()
		assert.Equal(t, want, s.ToSlice())
		assert.Equal(t, len(want), s.Size())
		for _, w := range want {
			assert.True(t, s.Has(w), w)
		}
	})

	t.Run("empty set is a no-op", func(t *testing.T) {
		s := New()
		s.Compact()
		assert.False(t, s.Compacted())
	})

	t.Run("idempotent", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		s.Compact()
		n := s.Stats().Nodes
		s.Compact()
		assert.Equal(t, n, s.Stats().Nodes)
	})
}

func TestMutateAfterCompact(t *testing.T) {
	t.Run("new add rebuilds a private tree", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		s.Compact()
		require.NoError(t, s.Add("jaunt"))
		assert.False(t, s.Compacted())
		assert.True(t, s.Has("jaunt"))
		assert.Equal(t, []string{"count", "fount", "jaunt", "mount"}, s.ToSlice())
	})

	t.Run("add of an existing member stays compacted", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		s.Compact()
		require.NoError(t, s.Add("mount"))
		assert.True(t, s.Compacted())
	})

	t.Run("delete of an absent word stays compacted", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		s.Compact()
		assert.False(t, s.Delete("jaunt"))
		assert.True(t, s.Compacted())
	})

	t.Run("delete of a member rebuilds", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		s.Compact()
		assert.True(t, s.Delete("fount"))
		assert.False(t, s.Compacted())
		assert.Equal(t, []string{"count", "mount"}, s.ToSlice())
	})
}

func TestBalance(t *testing.T) {
	t.Run("membership and size preserved", func(t *testing.T) {
		s := NewFrom("", "cherry", "apple", "banana")
		want := s.ToSlice()
		s.Balance()
		assert.Equal(t, want, s.ToSlice())
		assert.Equal(t, len(want), s.Size())
	})

	t.Run("clears compacted state", func(t *testing.T) {
		s := NewFrom("count", "fount", "mount")
		s.Compact()
		s.Balance()
		assert.False(t, s.Compacted())
		assert.Equal(t, []string{"count", "fount", "mount"}, s.ToSlice())
	})
}
