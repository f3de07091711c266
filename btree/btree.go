// Package btree implements an in-memory B-tree keyed by any ordered type.
//
// Tree maps keys to values; Set is the same tree with an empty value slot.
// Every node other than the root holds between degree-1 and 2*degree-1 items
// and all leaves sit at the same depth. Nothing here is safe for concurrent
// use; callers must serialize access to a tree.
package btree

import (
	"cmp"
	"fmt"
)

// MinDegree is the smallest degree accepted by New.
const MinDegree = 2

/*
Tree only keeps a pointer to root node of the tree.
A tree is made up of nodes. Each node contains data items.
Nodes never point back to their parent; operations record the descent path instead.
*/
type Tree[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	degree int
	length int
	height int // number of levels, 1 for a lone root leaf
	live   int // nodes currently reachable from root

	free   *freeList[K, V]
	logger Logger
}

// New returns an empty tree whose nodes hold between degree-1 and 2*degree-1 items.
func New[K cmp.Ordered, V any](degree int, opts ...Option) (*Tree[K, V], error) {
	if degree < MinDegree {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInvalidDegree, degree, MinDegree)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree[K, V]{
		degree: degree,
		height: 1,
		free:   newFreeList[K, V](o.freeListSize, 2*degree-1),
		logger: o.logger,
	}
	t.root = t.newNode()
	return t, nil
}

func (t *Tree[K, V]) minItems() int {
	return t.degree - 1
}

func (t *Tree[K, V]) maxItems() int {
	return 2*t.degree - 1
}

// Degree returns the degree the tree was built with.
func (t *Tree[K, V]) Degree() int {
	return t.degree
}

// Len returns the number of keys stored.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Height returns the number of levels; an empty tree has a single empty leaf.
func (t *Tree[K, V]) Height() int {
	return t.height
}

func (t *Tree[K, V]) String() string {
	return fmt.Sprintf("btree(degree=%d, len=%d, height=%d, nodes=%d)", t.degree, t.length, t.height, t.live)
}

func (t *Tree[K, V]) newNode() *node[K, V] {
	t.live++
	return t.free.newNode()
}

// freeNode must only be called on a node that has already been unlinked from the tree.
func (t *Tree[K, V]) freeNode(n *node[K, V]) {
	t.live--
	t.free.freeNode(n)
}
