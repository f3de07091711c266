package btree

import "cmp"

/*
data item in a node.
key uniquely identifies a data item across the whole tree and is used for sorting them.
val contains actual data; a Set stores struct{} here so the slot costs nothing.
*/
type item[K cmp.Ordered, V any] struct {
	key K
	val V
}
