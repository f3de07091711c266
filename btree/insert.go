package btree

/*
Insert stores val under key.
If key already exists, wherever it lives in the tree, its value is replaced and the previous
value is returned with true. Otherwise the item lands in a leaf and overflowing nodes are split
from that leaf upwards.
*/
func (t *Tree[K, V]) Insert(key K, val V) (V, bool) {
	path, pos, found := t.path(key)
	last := path[len(path)-1]

	// The data item already exists, so just update its value.
	if found {
		old := last.items[pos].val
		last.items[pos].val = val
		return old, true
	}

	// A key that isn't in the tree always ends its descent at a leaf.
	last.insertItemAt(pos, item[K, V]{key: key, val: val})
	t.length++
	t.splitUp(path)

	var zero V
	return zero, false
}

/*
splitUp walks the recorded path from the leaf towards the root, splitting every node that holds
more than 2b-1 items. The middle item is promoted into the parent right before the new sibling.
Splitting the root first wraps it in a new root; this is the only way the tree gains height.
*/
func (t *Tree[K, V]) splitUp(path []*node[K, V]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if len(n.items) <= t.maxItems() {
			return
		}

		var parent *node[K, V]
		if i == 0 {
			parent = t.growRoot()
		} else {
			parent = path[i-1]
		}

		right := t.newNode()
		mid := n.split(t.degree, right)

		pos := parent.search(mid.key)
		parent.insertItemAt(pos, mid)
		parent.insertChildAt(pos+1, right)
	}
}

/*
Create a new root node.
The existing root then becomes the new root's only child until the caller links the
node created by splitting it right after.
*/
func (t *Tree[K, V]) growRoot() *node[K, V] {
	newRoot := t.newNode()
	newRoot.insertChildAt(0, t.root)
	t.root = newRoot
	t.height++
	t.logger.Info("btree root split", "height", t.height, "len", t.length)
	return newRoot
}
