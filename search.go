package ternset

import (
	"fmt"
	"math"

	"fortio.org/sets"
)

// Unbounded may be passed as the distance to WithinEditDistanceOf to
// allow any number of edits.
const Unbounded = math.MaxInt32

// maxEditBudget caps the edit budget actually carried by the walk; any
// larger request already admits every member.
const maxEditBudget = 1 << 30

// CompletionsOf returns every member that word is a prefix of, in
// ascending order, including word itself when it is a member. An empty
// prefix completes to the whole set.
func (s *Set) CompletionsOf(prefix string) []string {
	prefix = s.fold(prefix)
	cps := []rune(prefix)
	if len(cps) == 0 {
		return s.ToSlice()
	}
	out := []string{}
	n := s.findNode(s.root(), cps, 0)
	if n == noNode {
		return out
	}
	if s.nodes[n]&eow != 0 {
		out = append(out, prefix)
	}
	buf := append([]rune(nil), cps...)
	s.walk(s.nodes[n+2], &buf, func(w []rune) bool {
		out = append(out, string(w))
		return true
	})
	return out
}

// CompletedBy returns every member ending with suffix, in ascending
// order. There is no shortcut through a prefix-ordered tree, so this
// enumerates all members and keeps the ones whose trailing code points
// match. An empty suffix matches the whole set.
func (s *Set) CompletedBy(suffix string) []string {
	sfx := []rune(s.fold(suffix))
	if len(sfx) == 0 {
		return s.ToSlice()
	}
	out := []string{}
	buf := make([]rune, 0, 16)
	s.walk(s.root(), &buf, func(w []rune) bool {
		if hasRuneSuffix(w, sfx) {
			out = append(out, string(w))
		}
		return true
	})
	return out
}

func hasRuneSuffix(w, sfx []rune) bool {
	off := len(w) - len(sfx)
	if off < 0 {
		return false
	}
	for i, cp := range sfx {
		if w[off+i] != cp {
			return false
		}
	}
	return true
}

// PartialMatchesOf returns every member matching pattern, where each
// occurrence of wildcard in the pattern matches any single code point.
// Results are ascending. An empty pattern matches only the empty string.
func (s *Set) PartialMatchesOf(pattern string, wildcard rune) []string {
	cps := []rune(s.fold(pattern))
	out := []string{}
	if len(cps) == 0 {
		if s.hasEmpty {
			out = append(out, "")
		}
		return out
	}
	buf := make([]rune, 0, len(cps))
	s.partialMatch(s.root(), cps, 0, wildcard, &buf, &out)
	return out
}

// partialMatch routes like an ordinary lookup for literal code points; a
// wildcard at the current position forces all three branches, since any
// code point may sit here.
func (s *Set) partialMatch(n int32, pat []rune, i int, wc rune, buf *[]rune, out *[]string) {
	if n == noNode {
		return
	}
	cp := pat[i]
	c := rune(s.nodes[n] & cpMask)
	if cp == wc || cp < c {
		s.partialMatch(s.nodes[n+1], pat, i, wc, buf, out)
	}
	if cp == wc || cp == c {
		*buf = append(*buf, c)
		if i+1 == len(pat) {
			if s.nodes[n]&eow != 0 {
				*out = append(*out, string(*buf))
			}
		} else {
			s.partialMatch(s.nodes[n+2], pat, i+1, wc, buf, out)
		}
		*buf = (*buf)[:len(*buf)-1]
	}
	if cp == wc || cp > c {
		s.partialMatch(s.nodes[n+3], pat, i, wc, buf, out)
	}
}

// WithinEditDistanceOf returns every member within maxDist single code
// point insertions, deletions or substitutions of pattern, ascending.
// A distance of 0 degenerates to exact membership; Unbounded admits any
// number of edits. Edits can reorder hits relative to tree order, so
// they are collected into a set and sorted once at the end.
func (s *Set) WithinEditDistanceOf(pattern string, maxDist int) ([]string, error) {
	if maxDist < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDistance, maxDist)
	}
	if maxDist > maxEditBudget {
		maxDist = maxEditBudget
	}
	cps := []rune(s.fold(pattern))
	out := sets.New[string]()
	if s.hasEmpty && len(cps) <= maxDist {
		out.Add("")
	}
	buf := make([]rune, 0, len(cps)+8)
	s.editSearch(s.root(), cps, 0, maxDist, &buf, out)
	return sets.Sort(out), nil
}

// editSearch explores the Levenshtein ball of radius budget around
// pat[i:]. Side branches never consume pattern input; they are taken on
// normal routing, or unconditionally while budget remains, because a
// substitution could pay for any code point here.
func (s *Set) editSearch(n int32, pat []rune, i, budget int, buf *[]rune, out sets.Set[string]) {
	if n == noNode {
		return
	}
	c := rune(s.nodes[n] & cpMask)
	if budget > 0 || (i < len(pat) && pat[i] < c) {
		s.editSearch(s.nodes[n+1], pat, i, budget, buf, out)
	}
	*buf = append(*buf, c)
	// consume c as a match or substitution of pat[i+skip], after
	// deleting skip pattern code points
	for skip := 0; skip <= budget && i+skip < len(pat); skip++ {
		cost := skip
		if pat[i+skip] != c {
			cost++
		}
		if cost <= budget {
			s.editEmit(n, pat, i+skip+1, budget-cost, buf, out)
		}
	}
	// consume c as a code point present only in the member
	if budget > 0 {
		s.editEmit(n, pat, i, budget-1, buf, out)
	}
	*buf = (*buf)[:len(*buf)-1]
	if budget > 0 || (i < len(pat) && pat[i] > c) {
		s.editSearch(s.nodes[n+3], pat, i, budget, buf, out)
	}
}

// editEmit records the current prefix when it is a member and the
// remaining pattern tail can be deleted within budget, then continues
// down the equal branch.
func (s *Set) editEmit(n int32, pat []rune, i, budget int, buf *[]rune, out sets.Set[string]) {
	if s.nodes[n]&eow != 0 && len(pat)-i <= budget {
		out.Add(string(*buf))
	}
	s.editSearch(s.nodes[n+2], pat, i, budget, buf, out)
}

// WithinHammingDistanceOf returns every member of the same code point
// length as pattern differing in at most maxDist positions, ascending.
// When maxDist covers the whole pattern the walk degenerates to
// enumerating members by length alone.
func (s *Set) WithinHammingDistanceOf(pattern string, maxDist int) ([]string, error) {
	if maxDist < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDistance, maxDist)
	}
	cps := []rune(s.fold(pattern))
	out := []string{}
	if len(cps) == 0 {
		if s.hasEmpty {
			out = append(out, "")
		}
		return out, nil
	}
	if maxDist == 0 {
		if s.has(cps) {
			out = append(out, string(cps))
		}
		return out, nil
	}
	buf := make([]rune, 0, len(cps))
	if maxDist >= len(cps) {
		s.sameLength(s.root(), len(cps), &buf, &out)
		return out, nil
	}
	s.hammingSearch(s.root(), cps, 0, maxDist, &buf, &out)
	return out, nil
}

// sameLength collects members of exactly the given code point length;
// branches are cut as soon as the prefix reaches it.
func (s *Set) sameLength(n int32, length int, buf *[]rune, out *[]string) {
	if n == noNode {
		return
	}
	s.sameLength(s.nodes[n+1], length, buf, out)
	*buf = append(*buf, rune(s.nodes[n]&cpMask))
	if len(*buf) == length {
		if s.nodes[n]&eow != 0 {
			*out = append(*out, string(*buf))
		}
	} else {
		s.sameLength(s.nodes[n+2], length, buf, out)
	}
	*buf = (*buf)[:len(*buf)-1]
	s.sameLength(s.nodes[n+3], length, buf, out)
}

// hammingSearch walks position-synchronously with the pattern, paying
// one unit of budget per mismatched code point.
func (s *Set) hammingSearch(n int32, pat []rune, i, budget int, buf *[]rune, out *[]string) {
	if n == noNode {
		return
	}
	c := rune(s.nodes[n] & cpMask)
	if budget > 0 || pat[i] < c {
		s.hammingSearch(s.nodes[n+1], pat, i, budget, buf, out)
	}
	cost := 0
	if pat[i] != c {
		cost = 1
	}
	if cost <= budget {
		*buf = append(*buf, c)
		if i+1 == len(pat) {
			if s.nodes[n]&eow != 0 {
				*out = append(*out, string(*buf))
			}
		} else {
			s.hammingSearch(s.nodes[n+2], pat, i+1, budget-cost, buf, out)
		}
		*buf = (*buf)[:len(*buf)-1]
	}
	if budget > 0 || pat[i] > c {
		s.hammingSearch(s.nodes[n+3], pat, i, budget, buf, out)
	}
}

// ArrangementsOf returns every member that can be spelled using each of
// the pattern's code points at most as many times as it occurs there,
// ascending. The empty string is an arrangement of any pattern.
func (s *Set) ArrangementsOf(pattern string) []string {
	pattern = s.fold(pattern)
	out := []string{}
	if s.hasEmpty {
		out = append(out, "")
	}
	if len(s.nodes) == 0 {
		return out
	}
	avail := make(map[rune]int)
	for _, cp := range pattern {
		avail[cp]++
	}
	buf := make([]rune, 0, len(avail))
	s.arrangements(s.root(), avail, &buf, &out)
	return out
}

// arrangements descends the equal branch only while this code point has
// budget left, decrementing on entry and restoring on unwind.
func (s *Set) arrangements(n int32, avail map[rune]int, buf *[]rune, out *[]string) {
	if n == noNode {
		return
	}
	s.arrangements(s.nodes[n+1], avail, buf, out)
	c := rune(s.nodes[n] & cpMask)
	if avail[c] > 0 {
		avail[c]--
		*buf = append(*buf, c)
		if s.nodes[n]&eow != 0 {
			*out = append(*out, string(*buf))
		}
		s.arrangements(s.nodes[n+2], avail, buf, out)
		*buf = (*buf)[:len(*buf)-1]
		avail[c]++
	}
	s.arrangements(s.nodes[n+3], avail, buf, out)
}
