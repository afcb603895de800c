package ternset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionsOf(t *testing.T) {
	s := NewFrom("at", "cat", "coat", "cot", "cup")

	assert.Equal(t, []string{"coat", "cot"}, s.CompletionsOf("co"))
	assert.Equal(t, []string{"cat", "coat", "cot", "cup"}, s.CompletionsOf("c"))
	assert.Empty(t, s.CompletionsOf("z"))
	assert.Empty(t, s.CompletionsOf("cats"))
	// the prefix itself comes first when it is a member
	assert.Equal(t, []string{"cat"}, s.CompletionsOf("cat"))
	// empty prefix completes to everything
	assert.Equal(t, s.ToSlice(), s.CompletionsOf(""))
}

func TestCompletedBy(t *testing.T) {
	s := NewFrom("at", "cat", "cop", "hat", "top")

	assert.Equal(t, []string{"at", "cat", "hat"}, s.CompletedBy("at"))
	assert.Equal(t, []string{"cop", "top"}, s.CompletedBy("op"))
	assert.Empty(t, s.CompletedBy("xat"))
	assert.Equal(t, s.ToSlice(), s.CompletedBy(""))
}

func TestPartialMatchesOf(t *testing.T) {
	s := NewFrom("cap", "cat", "cot", "cup", "top")

	assert.Equal(t, []string{"cat", "cot"}, s.PartialMatchesOf("c.t", '.'))
	assert.Equal(t, []string{"cap", "cat", "cot", "cup", "top"}, s.PartialMatchesOf("...", '.'))
	assert.Equal(t, []string{"cat"}, s.PartialMatchesOf("cat", '.'))
	assert.Empty(t, s.PartialMatchesOf("c.", '.'))
	assert.Empty(t, s.PartialMatchesOf("", '.'))

	require.NoError(t, s.Add(""))
	assert.Equal(t, []string{""}, s.PartialMatchesOf("", '.'))
}

func TestWithinEditDistanceOf(t *testing.T) {
	t.Run("classic ball", func(t *testing.T) {
		s := NewFrom("at", "cat", "cot", "cup")
		got, err := s.WithinEditDistanceOf("cat", 1)
		require.NoError(t, err)
		// cup differs by 2 and stays out
		assert.Equal(t, []string{"at", "cat", "cot"}, got)
	})

	t.Run("distance zero is exact membership", func(t *testing.T) {
		s := NewFrom("cat", "cot")
		got, err := s.WithinEditDistanceOf("cat", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, got)
		got, err = s.WithinEditDistanceOf("cut", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("insertions and deletions", func(t *testing.T) {
		s := NewFrom("coat", "ct", "察cat")
		got, err := s.WithinEditDistanceOf("cat", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"coat", "ct", "察cat"}, got)
	})

	t.Run("empty pattern bounds by length", func(t *testing.T) {
		s := NewFrom("", "a", "ab", "abc")
		got, err := s.WithinEditDistanceOf("", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "a", "ab"}, got)
	})

	t.Run("unbounded admits everything", func(t *testing.T) {
		s := NewFrom("", "cat", "extraordinary")
		got, err := s.WithinEditDistanceOf("q", Unbounded)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "cat", "extraordinary"}, got)
	})

	t.Run("negative distance", func(t *testing.T) {
		s := NewFrom("cat")
		_, err := s.WithinEditDistanceOf("cat", -1)
		assert.ErrorIs(t, err, ErrDistance)
	})
}

func TestWithinHammingDistanceOf(t *testing.T) {
	t.Run("classic ball", func(t *testing.T) {
		s := NewFrom("cat", "cop", "cot", "top")
		got, err := s.WithinHammingDistanceOf("cat", 2)
		require.NoError(t, err)
		// top differs in all 3 positions
		assert.Equal(t, []string{"cat", "cop", "cot"}, got)
	})

	t.Run("distance zero is exact membership", func(t *testing.T) {
		s := NewFrom("cat")
		got, err := s.WithinHammingDistanceOf("cat", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, got)
	})

	t.Run("distance covering the pattern selects by length", func(t *testing.T) {
		s := NewFrom("at", "cat", "cow", "dog", "frog")
		got, err := s.WithinHammingDistanceOf("xyz", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "cow", "dog"}, got)
	})

	t.Run("length mismatch never matches", func(t *testing.T) {
		s := NewFrom("ca", "cats")
		got, err := s.WithinHammingDistanceOf("cat", 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative distance", func(t *testing.T) {
		s := NewFrom("cat")
		_, err := s.WithinHammingDistanceOf("cat", -3)
		assert.ErrorIs(t, err, ErrDistance)
	})
}

func TestArrangementsOf(t *testing.T) {
	s := NewFrom("cat", "oat", "tot")
	// tot needs two t's, the pattern has one
	assert.Equal(t, []string{"cat", "oat"}, s.ArrangementsOf("coat"))
	assert.Empty(t, s.ArrangementsOf("xyz"))

	require.NoError(t, s.Add("tot"))
	assert.Equal(t, []string{"tot"}, s.ArrangementsOf("otto"))

	require.NoError(t, s.Add(""))
	assert.Equal(t, []string{""}, s.ArrangementsOf(""))
}

func TestSearchAfterCompact(t *testing.T) {
	s := NewFrom("at", "cat", "coat", "cot", "cup")
	before := s.ToSlice()
	s.Compact()
	assert.Equal(t, []string{"coat", "cot"}, s.CompletionsOf("co"))
	got, err := s.WithinEditDistanceOf("cat", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"at", "cat", "coat", "cot"}, got)
	assert.Equal(t, before, s.ToSlice())
}
