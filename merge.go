package tournament

import (
	"cmp"
	"iter"
)

// Merge lazily merges sorted-ascending sequences into one sorted-ascending
// sequence. It is a one-shot convenience over New for iter.Seq inputs.
func Merge[T cmp.Ordered](seqs ...iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(Ascending[T](), seqs...)
}

// MergeFunc lazily merges sequences sorted consistently with compare. Pull
// iterators backing the inputs are released when the returned sequence is
// drained or the consumer stops ranging.
func MergeFunc[T any](compare Comparator[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		iters := make([]Iterator[T], len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			iters[i] = pullIterator[T](next)
		}
		t := New(compare, iters...)
		for item, ok := t.Next(); ok; item, ok = t.Next() {
			if !yield(item) {
				return
			}
		}
	}
}

type pullIterator[T any] func() (T, bool)

func (f pullIterator[T]) Next() (T, bool) { return f() }
