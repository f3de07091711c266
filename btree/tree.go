package btree

/*
path descends from the root towards key and records every visited node, root first.
The last node either holds key at the returned index, or is the leaf where key belongs,
in which case the index is the insertion position.
Insert and Delete reuse the recorded path to walk back up without parent pointers.
*/
func (t *Tree[K, V]) path(key K) ([]*node[K, V], int, bool) {
	path := make([]*node[K, V], 0, t.height+1)
	for next := t.root; ; {
		path = append(path, next)
		pos, found := next.find(key)
		if found || next.isLeaf() {
			return path, pos, found
		}
		next = next.children[pos]
	}
}

// Search returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	path, pos, found := t.path(key)
	if !found {
		var zero V
		return zero, false
	}
	return path[len(path)-1].items[pos].val, true
}

// Find is Search reporting an absent key as ErrKeyNotFound.
func (t *Tree[K, V]) Find(key K) (V, error) {
	val, ok := t.Search(key)
	if !ok {
		return val, ErrKeyNotFound
	}
	return val, nil
}

func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}
