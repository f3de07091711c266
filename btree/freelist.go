package btree

import "cmp"

// DefaultFreeListSize is the number of released nodes a tree keeps for reuse.
const DefaultFreeListSize = 32

/*
freeList recycles nodes dropped by merges and root collapses.
Every node leaves the tree through freeNode exactly once: its item and child slots are
cleared so it can't keep any other node reachable, and the released flag catches a second release.
*/
type freeList[K cmp.Ordered, V any] struct {
	nodes    []*node[K, V]
	size     int
	maxItems int
}

func newFreeList[K cmp.Ordered, V any](size, maxItems int) *freeList[K, V] {
	return &freeList[K, V]{
		nodes:    make([]*node[K, V], 0, size),
		size:     size,
		maxItems: maxItems,
	}
}

func (f *freeList[K, V]) newNode() *node[K, V] {
	if last := len(f.nodes) - 1; last >= 0 {
		n := f.nodes[last]
		f.nodes[last] = nil
		f.nodes = f.nodes[:last]
		n.released = false
		return n
	}
	// one spare slot on each side: a node overflows by one before it splits
	return &node[K, V]{
		items: make([]item[K, V], 0, f.maxItems+1),
	}
}

// freeNode reports whether the node was kept for reuse.
func (f *freeList[K, V]) freeNode(n *node[K, V]) bool {
	if n.released {
		panic("btree: node released twice")
	}
	n.released = true

	clear(n.items)
	n.items = n.items[:0]
	clear(n.children)
	n.children = n.children[:0]

	if len(f.nodes) < f.size {
		f.nodes = append(f.nodes, n)
		return true
	}
	return false
}
