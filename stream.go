package tournament

import (
	"cmp"

	"github.com/vkrasnov/tournament/internal/selection"
)

// Stream is a pull-then-peek source: the current item lives in storage the
// source owns and is exposed by reference rather than copied out.
type Stream[T any] interface {
	// Next advances to the next item and reports whether one is available.
	// It must be called before the first At; a Stream that has reported
	// false keeps reporting false.
	Next() bool

	// At returns the current item, or nil when the stream holds none. The
	// pointer aliases storage owned by the stream and is valid only until
	// the next call to Next.
	At() *T

	// SizeHint bounds the number of items remaining after the current one:
	// a guaranteed lower bound, and an upper bound that holds only when
	// bounded is true.
	SizeHint() (lo, hi int, bounded bool)
}

// StreamingTournament merges k sorted Streams without copying items out of
// them: tree entries hold the streams themselves and comparisons peek at each
// stream's current item. It implements Stream itself, so merges compose.
type StreamingTournament[T any] struct {
	tree    *selection.Tree[Stream[T]]
	started bool
}

// NewStreaming creates a merge of streams ordered by compare. Every stream is
// advanced once so its first item is available for seeding; streams that come
// up empty are discarded. Like the streams it wraps, the merge must be
// advanced with Next before its first At call.
func NewStreaming[T any](compare Comparator[T], streams ...Stream[T]) *StreamingTournament[T] {
	t := &StreamingTournament[T]{
		tree: selection.New(func(a, b Stream[T]) bool {
			return compare(*a.At(), *b.At()) < 0
		}),
	}
	for _, s := range streams {
		if s.Next() {
			t.tree.Push(s)
		}
	}
	return t
}

// NewStreamingAscending creates a merge of streams sorted smallest first.
func NewStreamingAscending[T cmp.Ordered](streams ...Stream[T]) *StreamingTournament[T] {
	return NewStreaming(Ascending[T](), streams...)
}

// NewStreamingDescending creates a merge of streams sorted largest first.
func NewStreamingDescending[T cmp.Ordered](streams ...Stream[T]) *StreamingTournament[T] {
	return NewStreaming(Descending[T](), streams...)
}

// Next advances the merge. The first call only surfaces the winner seeded at
// construction and touches no underlying stream; every later call advances
// the winning stream by one item, keeping it in the tree while it still holds
// data. Next keeps reporting false once the tree drains.
func (t *StreamingTournament[T]) Next() bool {
	if !t.started {
		t.started = true
		return t.tree.Len() > 0
	}
	s, ok := t.tree.Peek()
	if !ok {
		return false
	}
	if s.Next() {
		t.tree.Fix()
	} else {
		t.tree.Pop()
	}
	return t.tree.Len() > 0
}

// At returns the winning stream's current item, or nil when the merge is
// exhausted. The pointer is valid only until the next call to Next.
func (t *StreamingTournament[T]) At() *T {
	s, ok := t.tree.Peek()
	if !ok {
		return nil
	}
	return s.At()
}

// SizeHint reports at least one item per active stream, and sums the streams'
// upper bounds when every active stream is bounded.
func (t *StreamingTournament[T]) SizeHint() (lo, hi int, bounded bool) {
	lo = t.tree.Len()
	hi = t.tree.Len()
	bounded = true
	for _, s := range t.tree.Items() {
		l, h, ok := s.SizeHint()
		lo += l
		if bounded && ok {
			hi += h
		} else {
			bounded = false
		}
	}
	if !bounded {
		hi = 0
	}
	return lo, hi, bounded
}

// Len returns the number of still-active streams.
func (t *StreamingTournament[T]) Len() int {
	return t.tree.Len()
}
