package btree

import (
	"cmp"
	"slices"
)

/*
A node holds its items sorted by key and, unless it is a leaf, exactly len(items)+1 children.
children[i] contains the keys strictly between items[i-1] and items[i].
Capacity bounds are derived from the tree's degree, so the node itself stays plain data.
*/
type node[K cmp.Ordered, V any] struct {
	items    []item[K, V]
	children []*node[K, V]

	// set while the node sits in the free list, so a double release is caught
	released bool
}

func (n *node[K, V]) isLeaf() bool {
	return len(n.children) == 0
}

/*
Returns the number of items whose key is <= key (an upper bound).
This coincides with the position of the child pointer to follow when key isn't in this node,
and when pos > 0 the item at pos-1 is the only candidate for an exact match.
*/
func (n *node[K, V]) search(key K) int {
	low, high := 0, len(n.items)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp.Less(key, n.items[mid].key) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

// find reports the index of key if present, otherwise the child position to descend into.
func (n *node[K, V]) find(key K) (int, bool) {
	pos := n.search(key)
	if pos > 0 && cmp.Compare(n.items[pos-1].key, key) == 0 {
		return pos - 1, true
	}
	return pos, false
}

// indexOf returns the ordinal of child among n's children, compared by identity.
func (n *node[K, V]) indexOf(child *node[K, V]) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	panic("btree: node is not a child of its recorded parent")
}

// helper method to insert data item at an arbitrary position of a B-tree node
func (n *node[K, V]) insertItemAt(pos int, it item[K, V]) {
	n.items = slices.Insert(n.items, pos, it)
}

// helper method to insert child pointer at an arbitrary position of a B-tree node
func (n *node[K, V]) insertChildAt(pos int, child *node[K, V]) {
	n.children = slices.Insert(n.children, pos, child)
}

func (n *node[K, V]) removeItemAt(pos int) item[K, V] {
	it := n.items[pos]
	n.items = slices.Delete(n.items, pos, pos+1)
	return it
}

func (n *node[K, V]) removeChildAt(pos int) *node[K, V] {
	child := n.children[pos]
	n.children = slices.Delete(n.children, pos, pos+1)
	return child
}

/*
split divides an overflowed node around items[b] and returns that middle item so it can be
promoted to the parent. Items [0,b) stay in n, items (b,end) move into right.
For internal nodes children [0,b] stay and children (b,end] move, one index further right
than the items since there is one more child than items.
*/
func (n *node[K, V]) split(b int, right *node[K, V]) item[K, V] {
	mid := n.items[b]

	right.items = append(right.items, n.items[b+1:]...)
	clear(n.items[b:])
	n.items = n.items[:b]

	if !n.isLeaf() {
		right.children = append(right.children, n.children[b+1:]...)
		clear(n.children[b+1:])
		n.children = n.children[:b+1]
	}
	return mid
}
