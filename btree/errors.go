package btree

import "errors"

var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvalidDegree = errors.New("invalid degree")
	ErrCorrupt       = errors.New("btree invariant violated")
)
