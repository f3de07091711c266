package btree

import (
	"cmp"
	"fmt"
)

/*
Verify walks the whole tree and returns an error wrapping ErrCorrupt for the first broken
invariant it meets: item counts within [b-1, 2b-1] (the root may hold fewer), one more child
than items in internal nodes, keys strictly increasing in order, every leaf at the same depth,
and the cached length and height matching the structure.
*/
func (t *Tree[K, V]) Verify() error {
	if t.root == nil {
		return fmt.Errorf("%w: missing root", ErrCorrupt)
	}
	if !t.root.isLeaf() && len(t.root.items) == 0 {
		return fmt.Errorf("%w: empty internal root", ErrCorrupt)
	}

	leafDepth := -1
	var check func(n *node[K, V], depth int) error
	check = func(n *node[K, V], depth int) error {
		if n == nil {
			return fmt.Errorf("%w: nil child at depth %d", ErrCorrupt, depth)
		}
		if n.released {
			return fmt.Errorf("%w: released node reachable at depth %d", ErrCorrupt, depth)
		}
		if len(n.items) > t.maxItems() {
			return fmt.Errorf("%w: node at depth %d holds %d items, max %d", ErrCorrupt, depth, len(n.items), t.maxItems())
		}
		if n != t.root && len(n.items) < t.minItems() {
			return fmt.Errorf("%w: node at depth %d holds %d items, min %d", ErrCorrupt, depth, len(n.items), t.minItems())
		}

		if n.isLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return fmt.Errorf("%w: leaf at depth %d, expected %d", ErrCorrupt, depth, leafDepth)
			}
			return nil
		}

		if len(n.children) != len(n.items)+1 {
			return fmt.Errorf("%w: node at depth %d has %d items and %d children", ErrCorrupt, depth, len(n.items), len(n.children))
		}
		for _, child := range n.children {
			if err := check(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(t.root, 0); err != nil {
		return err
	}

	if leafDepth+1 != t.height {
		return fmt.Errorf("%w: height is %d but leaves sit at depth %d", ErrCorrupt, t.height, leafDepth)
	}

	var (
		count int
		prev  K
		err   error
	)
	t.ascend(func(it item[K, V]) bool {
		if count > 0 && cmp.Compare(prev, it.key) >= 0 {
			err = fmt.Errorf("%w: key %v follows %v", ErrCorrupt, it.key, prev)
			return false
		}
		prev = it.key
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("%w: counted %d items, length says %d", ErrCorrupt, count, t.length)
	}
	return nil
}

// ascend visits every item in key order until fn returns false.
func (t *Tree[K, V]) ascend(fn func(item[K, V]) bool) {
	var walk func(n *node[K, V]) bool
	walk = func(n *node[K, V]) bool {
		for i, it := range n.items {
			if !n.isLeaf() && !walk(n.children[i]) {
				return false
			}
			if !fn(it) {
				return false
			}
		}
		if !n.isLeaf() {
			return walk(n.children[len(n.children)-1])
		}
		return true
	}
	walk(t.root)
}
