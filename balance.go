package ternset

import "fortio.org/log"

// Balance rebuilds the tree from its sorted contents via midpoint
// bisection, yielding minimum height for the current members. Nodes left
// unreachable by deletions are dropped and compacted state is cleared.
func (s *Set) Balance() {
	words := s.ToSlice()
	s.nodes = make([]int32, 0, len(s.nodes))
	s.size = 0
	s.hasEmpty = false
	s.compacted = false
	if err := s.addRange(words, 0, len(words)); err != nil {
		// replaying existing content cannot grow past capacity
		log.Critf("rebuild failed: %v", err)
		panic("ternset: rebuild lost content")
	}
	log.Debugf("rebuilt %d words into %d nodes", len(words), len(s.nodes)/stride)
}
