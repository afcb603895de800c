package ternset

import "fortio.org/log"

type nodeKey [stride]int32

// Compact deduplicates identical subtrees, turning the tree into a DAG
// that shares common suffixes. Logical contents are unchanged. The set
// is marked compacted; any later structural mutation transparently
// rebuilds a private tree first.
//
// Each pass canonicalizes nodes whose four record ints are identical.
// Sharing converges bottom up: leaves merge on the first pass, parents
// whose children now point at the same slots merge on the next, so
// passes repeat until one produces no reduction.
func (s *Set) Compact() {
	if s.compacted || len(s.nodes) == 0 {
		return
	}
	before := len(s.nodes)
	pass := 0
	for {
		next, shrunk := compactPass(s.nodes)
		if !shrunk {
			break
		}
		s.nodes = next
		pass++
		log.Debugf("compact pass %d: %d slots", pass, len(s.nodes))
	}
	s.compacted = true
	log.Debugf("compacted %d -> %d slots in %d passes", before, len(s.nodes), pass)
}

// compactPass rewrites tree with each distinct record stored once, in
// first-seen order, children translated to the new slots. Reports
// whether the rewrite shrank the array.
func compactPass(tree []int32) ([]int32, bool) {
	canon := make(map[nodeKey]int32, len(tree)/stride)
	remap := make([]int32, len(tree)/stride)
	next := int32(0)
	for i := 0; i < len(tree); i += stride {
		k := nodeKey{tree[i], tree[i+1], tree[i+2], tree[i+3]}
		slot, ok := canon[k]
		if !ok {
			slot = next
			next += stride
			canon[k] = slot
		}
		remap[i/stride] = slot
	}
	if int(next) == len(tree) {
		return tree, false
	}
	out := make([]int32, 0, next)
	seen := make(map[nodeKey]bool, len(canon))
	for i := 0; i < len(tree); i += stride {
		k := nodeKey{tree[i], tree[i+1], tree[i+2], tree[i+3]}
		if seen[k] {
			continue
		}
		seen[k] = true
		// canonical slots were handed out in the same first-seen order
		if canon[k] != int32(len(out)) {
			log.Critf("compaction slot %d for record %d, expected %d", canon[k], i, len(out))
			panic("ternset: compaction produced an out-of-order slot")
		}
		out = append(out,
			tree[i],
			remapSlot(remap, tree[i+1]),
			remapSlot(remap, tree[i+2]),
			remapSlot(remap, tree[i+3]))
	}
	return out, true
}

func remapSlot(remap []int32, child int32) int32 {
	if child == noNode {
		return noNode
	}
	return remap[child/stride]
}

// decompact restores a private, non-shared tree so it can be mutated in
// place. Callers check the compacted flag first.
func (s *Set) decompact() {
	s.Balance()
}
