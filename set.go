package ternset

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Set is an ordered set of strings stored as a ternary search tree in a
// flat integer array. The zero value is not usable; call New.
//
// A Set is not safe for concurrent use; callers needing to share one
// across goroutines must synchronize externally.
type Set struct {
	nodes     []int32
	size      int
	hasEmpty  bool
	compacted bool

	normalised bool
	foldCase   bool
}

// New creates an empty set. By default members are stored exactly as
// given: case sensitive and without normalisation.
func New() *Set {
	return &Set{}
}

// NewFrom creates a set holding the given words. When the words are
// sorted ascending the resulting tree is height balanced.
func NewFrom(words ...string) *Set {
	s := New()
	if err := s.addRange(words, 0, len(words)); err != nil {
		// only reachable past ~2^27 stored nodes
		panic(err)
	}
	return s
}

// WithNormalisation makes the set store and match the NFC form of each
// string with combining marks removed, so "Jürgen" and "Jurgen" are the
// same member. Call before the first insert.
func (s *Set) WithNormalisation() *Set {
	s.normalised = true
	return s
}

// WithoutNormalisation restores exact code point storage.
func (s *Set) WithoutNormalisation() *Set {
	s.normalised = false
	return s
}

// CaseInsensitive makes the set store and match lower-cased strings.
// Call before the first insert.
func (s *Set) CaseInsensitive() *Set {
	s.foldCase = true
	return s
}

// CaseSensitive restores exact-case storage.
func (s *Set) CaseSensitive() *Set {
	s.foldCase = false
	return s
}

// fold applies the configured transforms. The folded form is what the
// set stores and what every query result contains.
func (s *Set) fold(word string) string {
	if s.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if s.foldCase {
		word = strings.ToLower(word)
	}
	return word
}

// Add inserts word into the set. Adding a member that is already present
// is a no-op. A compacted set is transparently rebuilt first when the
// word is new. The only possible error is ErrCapacity, in which case the
// set is left untouched.
func (s *Set) Add(word string) error {
	cps := []rune(s.fold(word))
	if len(cps) == 0 {
		if !s.hasEmpty {
			s.hasEmpty = true
			s.size++
		}
		return nil
	}
	if len(s.nodes)+stride*len(cps) > maxSlots {
		return fmt.Errorf("%w: %d nodes stored", ErrCapacity, len(s.nodes)/stride)
	}
	if s.compacted {
		if s.has(cps) {
			return nil
		}
		s.decompact()
	}
	s.insert(s.root(), cps, 0)
	return nil
}

// AddAll inserts all the given words, midpoint first, so a sorted
// ascending argument list on an empty set builds a balanced tree.
func (s *Set) AddAll(words ...string) error {
	if len(words) == 0 {
		return nil
	}
	return s.AddRange(words, 0, len(words))
}

// AddRange inserts the half-open sub-range words[start:end], recursively
// inserting the midpoint of each sub-range first. If the sub-range is
// sorted ascending and the set was empty, the resulting tree is height
// balanced; the insertion order alone produces the balance.
func (s *Set) AddRange(words []string, start, end int) error {
	if words == nil {
		return fmt.Errorf("%w: words", ErrNilArgument)
	}
	if start < 0 || end > len(words) || start > end {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrRange, start, end, len(words))
	}
	return s.addRange(words, start, end)
}

func (s *Set) addRange(words []string, start, end int) error {
	if start >= end {
		return nil
	}
	mid := start + (end-start)/2
	if err := s.Add(words[mid]); err != nil {
		return err
	}
	if err := s.addRange(words, start, mid); err != nil {
		return err
	}
	return s.addRange(words, mid+1, end)
}

// Delete removes word from the set, reporting whether it was present.
// The node path stays in place; only the end-of-word flag is cleared.
func (s *Set) Delete(word string) bool {
	cps := []rune(s.fold(word))
	if len(cps) == 0 {
		if !s.hasEmpty {
			return false
		}
		s.hasEmpty = false
		s.size--
		return true
	}
	if !s.has(cps) {
		return false
	}
	if s.compacted {
		s.decompact()
	}
	n := s.findNode(s.root(), cps, 0)
	s.nodes[n] &^= eow
	s.size--
	return true
}

// DeleteAll removes all the given words and returns how many were
// actually present.
func (s *Set) DeleteAll(words ...string) int {
	removed := 0
	for _, w := range words {
		if s.Delete(w) {
			removed++
		}
	}
	return removed
}

// Has reports whether word is a member of the set.
func (s *Set) Has(word string) bool {
	return s.has([]rune(s.fold(word)))
}

func (s *Set) has(cps []rune) bool {
	if len(cps) == 0 {
		return s.hasEmpty
	}
	n := s.findNode(s.root(), cps, 0)
	return n != noNode && s.nodes[n]&eow != 0
}

// At returns the member with the given rank in ascending order, rank in
// [0, Size()). Combined with a uniform random rank it samples the set.
func (s *Set) At(rank int) (string, error) {
	if rank < 0 || rank >= s.size {
		return "", fmt.Errorf("%w: %d of %d", ErrRank, rank, s.size)
	}
	if s.hasEmpty {
		if rank == 0 {
			return "", nil
		}
		rank--
	}
	var out string
	buf := make([]rune, 0, 16)
	s.walk(s.root(), &buf, func(w []rune) bool {
		if rank == 0 {
			out = string(w)
			return false
		}
		rank--
		return true
	})
	return out, nil
}

// Size returns the number of members, counting the empty string.
func (s *Set) Size() int {
	return s.size
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Compacted reports whether the tree is currently a shared DAG.
func (s *Set) Compacted() bool {
	return s.compacted
}

// ForEach calls fn for every member in ascending order until fn returns
// false.
func (s *Set) ForEach(fn func(word string) bool) {
	if fn == nil {
		return
	}
	if s.hasEmpty && !fn("") {
		return
	}
	buf := make([]rune, 0, 16)
	s.walk(s.root(), &buf, func(w []rune) bool {
		return fn(string(w))
	})
}

// ToSlice returns all members in ascending order.
func (s *Set) ToSlice() []string {
	out := make([]string, 0, s.size)
	s.ForEach(func(w string) bool {
		out = append(out, w)
		return true
	})
	return out
}

func (s *Set) String() string {
	return fmt.Sprintf("ternset.Set{size: %d, nodes: %d, compacted: %t}",
		s.size, len(s.nodes)/stride, s.compacted)
}
