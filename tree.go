package ternset

import "fortio.org/safecast"

// Nodes are fixed-stride records in one flat int32 slice:
// [codePoint|endOfWord, lessChild, equalChild, greaterChild].
// Children hold the slot of the first record int, or noNode.
// The end-of-word flag lives in bit 21, just above the largest unicode
// code point (0x10FFFF), so a record's first int carries both.
const (
	noNode int32 = -1
	eow    int32 = 1 << 21
	cpMask int32 = eow - 1
	stride       = 4

	// maxSlots keeps every slot addressable by a positive int32 with a
	// small margin below the flag/sentinel space.
	maxSlots = 1<<31 - 16
)

// root returns the slot of the root node. The first record appended is
// the root and stays at slot 0 across compaction and rebuilds.
func (s *Set) root() int32 {
	if len(s.nodes) == 0 {
		return noNode
	}
	return 0
}

// insert descends from node n matching word[i:], synthesizing records as
// needed, and returns the (possibly new) slot of n. The end-of-word flag
// is set on the node consuming the last code point; size is bumped only
// when the flag was not already set.
func (s *Set) insert(n int32, word []rune, i int) int32 {
	cp := int32(word[i])
	if n == noNode {
		n = safecast.MustConvert[int32](len(s.nodes))
		s.nodes = append(s.nodes, cp, noNode, noNode, noNode)
	}
	switch c := s.nodes[n] & cpMask; {
	case cp < c:
		s.nodes[n+1] = s.insert(s.nodes[n+1], word, i)
	case cp > c:
		s.nodes[n+3] = s.insert(s.nodes[n+3], word, i)
	default:
		if i+1 == len(word) {
			if s.nodes[n]&eow == 0 {
				s.nodes[n] |= eow
				s.size++
			}
		} else {
			s.nodes[n+2] = s.insert(s.nodes[n+2], word, i+1)
		}
	}
	return n
}

// findNode walks from n and returns the slot of the node that consumes
// the last code point of word, or noNode if no such path exists.
func (s *Set) findNode(n int32, word []rune, i int) int32 {
	for n != noNode {
		switch cp := int32(word[i]); {
		case cp < s.nodes[n]&cpMask:
			n = s.nodes[n+1]
		case cp > s.nodes[n]&cpMask:
			n = s.nodes[n+3]
		default:
			if i+1 == len(word) {
				return n
			}
			i++
			n = s.nodes[n+2]
		}
	}
	return noNode
}

// walk visits every member word below n in ascending order, sharing buf
// as a backtracking prefix buffer. fn returning false stops the walk.
func (s *Set) walk(n int32, buf *[]rune, fn func(word []rune) bool) bool {
	if n == noNode {
		return true
	}
	if !s.walk(s.nodes[n+1], buf, fn) {
		return false
	}
	*buf = append(*buf, rune(s.nodes[n]&cpMask))
	if s.nodes[n]&eow != 0 && !fn(*buf) {
		return false
	}
	if !s.walk(s.nodes[n+2], buf, fn) {
		return false
	}
	*buf = (*buf)[:len(*buf)-1]
	return s.walk(s.nodes[n+3], buf, fn)
}
