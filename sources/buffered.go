package sources

import "github.com/vkrasnov/tournament"

// Buffered adapts an owned-item Iterator to the pull-then-peek Stream shape
// by holding the most recently pulled item. Each Next overwrites the held
// item, which is what invalidates earlier At pointers.
type Buffered[T any] struct {
	src  tournament.Iterator[T]
	cur  T
	live bool
	done bool
}

// NewBuffered wraps it as a Stream.
func NewBuffered[T any](it tournament.Iterator[T]) *Buffered[T] {
	return &Buffered[T]{src: it}
}

// Next pulls the next item into the buffer.
func (b *Buffered[T]) Next() bool {
	if b.done {
		return false
	}
	b.cur, b.live = b.src.Next()
	if !b.live {
		b.done = true
	}
	return b.live
}

// At returns a pointer to the buffered item, or nil before the first Next and
// after exhaustion.
func (b *Buffered[T]) At() *T {
	if !b.live {
		return nil
	}
	return &b.cur
}

// SizeHint reports no useful bound: the wrapped Iterator carries none.
func (b *Buffered[T]) SizeHint() (lo, hi int, bounded bool) {
	return 0, 0, false
}
