package ternset

// Stats is a diagnostic snapshot of the tree, recomputed on demand.
// Breadth and Depth describe the current shape; in a compacted set the
// depth walk revisits shared subtrees, matching what a traversal costs.
type Stats struct {
	// Size is the number of members, counting the empty string.
	Size int
	// Nodes is the number of stored node records.
	Nodes int
	// Depth is the number of tree levels.
	Depth int
	// Breadth holds the node count reached at each depth level.
	Breadth []int
	// Compacted reports whether the tree is a shared DAG.
	Compacted bool
	// MinCodePoint and MaxCodePoint bound the stored code points.
	MinCodePoint rune
	MaxCodePoint rune
	// Surrogates counts stored code points at or above 0x10000, the
	// ones that need a surrogate pair in UTF-16 encodings.
	Surrogates int
}

// Stats recomputes the snapshot via a full traversal. Exposed for
// diagnostics and capacity planning only.
func (s *Set) Stats() Stats {
	st := Stats{
		Size:      s.size,
		Nodes:     len(s.nodes) / stride,
		Compacted: s.compacted,
	}
	for i := 0; i < len(s.nodes); i += stride {
		cp := rune(s.nodes[i] & cpMask)
		if i == 0 || cp < st.MinCodePoint {
			st.MinCodePoint = cp
		}
		if cp > st.MaxCodePoint {
			st.MaxCodePoint = cp
		}
		if cp >= 0x10000 {
			st.Surrogates++
		}
	}
	s.depthWalk(s.root(), 0, &st)
	st.Depth = len(st.Breadth)
	return st
}

func (s *Set) depthWalk(n int32, depth int, st *Stats) {
	if n == noNode {
		return
	}
	if depth == len(st.Breadth) {
		st.Breadth = append(st.Breadth, 0)
	}
	st.Breadth[depth]++
	s.depthWalk(s.nodes[n+1], depth+1, st)
	s.depthWalk(s.nodes[n+2], depth+1, st)
	s.depthWalk(s.nodes[n+3], depth+1, st)
}
