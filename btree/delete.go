package btree

import (
	"cmp"
	"slices"
)

/*
Delete removes key and returns its value. Deleting an absent key is a no-op returning false.

Items are only ever erased from leaves. An item found in an internal node is overwritten by its
replacement (the largest key of its left subtree), and the replacement is then erased from the
leaf it came from. Underflow is repaired from that leaf upwards along the recorded path.
*/
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	path, pos, found := t.path(key)
	if !found {
		var zero V
		return zero, false
	}

	last := path[len(path)-1]
	removed := last.items[pos].val

	if !last.isLeaf() {
		path, pos = t.replace(path, pos)
		last = path[len(path)-1]
	}

	last.removeItemAt(pos)
	t.length--
	t.repair(path)

	return removed, true
}

/*
replace overwrites the internal item at pos of the last node on path with its replacement.
That is the maximum of the left child's subtree, reached by always taking the last child; only
when there is no left child is the minimum of the right child's subtree used instead.
The returned path is extended down to the leaf holding the replacement, together with the
replacement's index in that leaf.
*/
func (t *Tree[K, V]) replace(path []*node[K, V], pos int) ([]*node[K, V], int) {
	n := path[len(path)-1]
	if len(n.children) != len(n.items)+1 {
		panic("btree: internal node must have one more child than items")
	}

	if left := n.children[pos]; left != nil {
		path = descend(path, left, true)
		leaf := path[len(path)-1]
		at := len(leaf.items) - 1
		n.items[pos] = leaf.items[at]
		return path, at
	}

	path = descend(path, n.children[pos+1], false)
	leaf := path[len(path)-1]
	n.items[pos] = leaf.items[0]
	return path, 0
}

// descend appends the nodes from start down to its rightmost (or leftmost) leaf.
func descend[K cmp.Ordered, V any](path []*node[K, V], start *node[K, V], rightmost bool) []*node[K, V] {
	for next := start; ; {
		path = append(path, next)
		if next.isLeaf() {
			return path
		}
		if rightmost {
			next = next.children[len(next.children)-1]
		} else {
			next = next.children[0]
		}
	}
}

/*
repair walks the recorded path from the leaf that lost an item towards the root.
A non-root node below b-1 items first borrows through the parent from its right sibling, then
from its left sibling, as long as the lender keeps at least b-1 items. Otherwise it is merged
with a sibling, which takes an item away from the parent, so the walk moves on to the parent.
The root has no minimum; it is only collapsed once a merge leaves it with no items and a
single child, which is the only way the tree loses height.
*/
func (t *Tree[K, V]) repair(path []*node[K, V]) {
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if len(n.items) >= t.minItems() {
			return
		}

		parent := path[i-1]
		idx := parent.indexOf(n)
		if !t.rebalance(parent, idx) {
			return
		}
	}
	t.collapseRoot()
}

// rebalance fixes the underflowing child at idx and reports whether a merge shrank parent.
func (t *Tree[K, V]) rebalance(parent *node[K, V], idx int) bool {
	hasRight := idx+1 < len(parent.children)
	hasLeft := idx > 0

	// right first: slightly cheaper on average, both sides are equally valid
	if hasRight && len(parent.children[idx+1].items) > t.minItems() {
		borrowRight(parent, idx)
		return false
	}
	if hasLeft && len(parent.children[idx-1].items) > t.minItems() {
		borrowLeft(parent, idx)
		return false
	}

	switch {
	case hasRight:
		t.mergeRight(parent, idx)
	case hasLeft:
		t.mergeLeft(parent, idx)
	default:
		panic("btree: non-root node without siblings")
	}
	return true
}

/*
Rotate left: the separator moves down to the end of the child at idx, the right sibling's first
item moves up in its place and, for internal nodes, the sibling's first child follows.
*/
func borrowRight[K cmp.Ordered, V any](parent *node[K, V], idx int) {
	n := parent.children[idx]
	right := parent.children[idx+1]

	n.items = append(n.items, parent.items[idx])
	parent.items[idx] = right.removeItemAt(0)

	if !right.isLeaf() {
		n.children = append(n.children, right.removeChildAt(0))
	}
}

// Rotate right, the mirror of borrowRight.
func borrowLeft[K cmp.Ordered, V any](parent *node[K, V], idx int) {
	n := parent.children[idx]
	left := parent.children[idx-1]

	n.insertItemAt(0, parent.items[idx-1])
	parent.items[idx-1] = left.removeItemAt(len(left.items) - 1)

	if !left.isLeaf() {
		n.insertChildAt(0, left.removeChildAt(len(left.children)-1))
	}
}

/*
mergeRight appends the separator and then everything of the right sibling onto the child at idx.
The separator and the sibling's slot leave the parent and the sibling is released.
*/
func (t *Tree[K, V]) mergeRight(parent *node[K, V], idx int) {
	n := parent.children[idx]
	right := parent.children[idx+1]

	n.items = append(n.items, parent.removeItemAt(idx))
	n.items = append(n.items, right.items...)
	n.children = append(n.children, right.children...)

	parent.removeChildAt(idx + 1)
	t.freeNode(right)
}

// mergeLeft prepends the left sibling and the separator onto the child at idx.
func (t *Tree[K, V]) mergeLeft(parent *node[K, V], idx int) {
	n := parent.children[idx]
	left := parent.children[idx-1]

	n.insertItemAt(0, parent.removeItemAt(idx-1))
	n.items = slices.Insert(n.items, 0, left.items...)
	n.children = slices.Insert(n.children, 0, left.children...)

	parent.removeChildAt(idx - 1)
	t.freeNode(left)
}

func (t *Tree[K, V]) collapseRoot() {
	old := t.root
	if len(old.items) > 0 || len(old.children) != 1 {
		return
	}

	t.root = old.removeChildAt(0)
	t.height--
	t.freeNode(old)
	t.logger.Info("btree root collapsed", "height", t.height, "len", t.length)
}
