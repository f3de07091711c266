package btree

import "cmp"

// Set is a B-tree of keys without values. It shares Tree's algorithm with an empty value slot.
type Set[K cmp.Ordered] struct {
	tree *Tree[K, struct{}]
}

func NewSet[K cmp.Ordered](degree int, opts ...Option) (*Set[K], error) {
	t, err := New[K, struct{}](degree, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: t}, nil
}

// Insert adds key and reports whether it was new. Duplicates are a no-op.
func (s *Set[K]) Insert(key K) bool {
	_, replaced := s.tree.Insert(key, struct{}{})
	return !replaced
}

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.tree.Delete(key)
	return ok
}

func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *Set[K]) Len() int {
	return s.tree.Len()
}

func (s *Set[K]) Height() int {
	return s.tree.Height()
}

func (s *Set[K]) Verify() error {
	return s.tree.Verify()
}
