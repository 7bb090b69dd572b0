package tournament

import (
	"cmp"
	"iter"

	"github.com/vkrasnov/tournament/internal/selection"
)

// Iterator is a forward-only source of owned items. Next returns the next
// item and true, or the zero value and false once the source is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Tournament merges k sorted Iterators into one sorted sequence. It holds one
// pending entry per still-active source in a selection tree, so each produced
// item costs O(log k) comparisons.
//
// The merged sequence is forward-only and not restartable: consuming it
// drains the underlying sources.
type Tournament[T any] struct {
	tree    *selection.Tree[entry[T]]
	sources []Iterator[T]
}

// entry pairs a source's current item with the index of its continuation in
// Tournament.sources.
type entry[T any] struct {
	item  T
	index int
}

// New creates a merge of iters ordered by compare. Each source must already
// be sorted consistently with compare. The first item of every source is
// pulled eagerly to seed the tree; sources that are empty at construction
// contribute nothing and are never consulted again.
func New[T any](compare Comparator[T], iters ...Iterator[T]) *Tournament[T] {
	t := &Tournament[T]{
		tree: selection.New(func(a, b entry[T]) bool {
			return compare(a.item, b.item) < 0
		}),
		sources: iters,
	}
	for i, it := range iters {
		if item, ok := it.Next(); ok {
			t.tree.Push(entry[T]{item: item, index: i})
		}
	}
	return t
}

// NewAscending creates a merge of sources sorted smallest first.
func NewAscending[T cmp.Ordered](iters ...Iterator[T]) *Tournament[T] {
	return New(Ascending[T](), iters...)
}

// NewDescending creates a merge of sources sorted largest first.
func NewDescending[T cmp.Ordered](iters ...Iterator[T]) *Tournament[T] {
	return New(Descending[T](), iters...)
}

// Next returns the next item of the merged sequence. It pops the winning
// entry, pulls one replacement item from that entry's source, and re-enters
// the source if it produced one. Once Next reports false the merge is
// exhausted permanently.
func (t *Tournament[T]) Next() (T, bool) {
	e, ok := t.tree.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	if item, ok := t.sources[e.index].Next(); ok {
		t.tree.Push(entry[T]{item: item, index: e.index})
	}
	return e.item, true
}

// Len returns the number of still-active sources.
func (t *Tournament[T]) Len() int {
	return t.tree.Len()
}

// All returns the remainder of the merged sequence as a single-use iterator.
// Ranging over it advances the tournament; breaking out leaves the remaining
// items available to later Next or All calls.
func (t *Tournament[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, ok := t.Next(); ok; item, ok = t.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
