package sources

import (
	"iter"

	"github.com/google/btree"
)

// BTreeAscend exposes the items of an ordered set in ascending order. Compose
// with NewSeq or tournament.Merge to interleave several trees.
func BTreeAscend[T any](tr *btree.BTreeG[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		tr.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

// BTreeDescend exposes the items of an ordered set in descending order.
func BTreeDescend[T any](tr *btree.BTreeG[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		tr.Descend(func(item T) bool {
			return yield(item)
		})
	}
}
