package sources

import "iter"

// Seq is an owned-item source over an iter.Seq, backed by iter.Pull.
type Seq[T any] struct {
	next func() (T, bool)
	stop func()
}

// NewSeq adapts a range-over-func sequence. A Seq that is abandoned before
// exhaustion should be released with Close.
func NewSeq[T any](seq iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(seq)
	return &Seq[T]{next: next, stop: stop}
}

// Next returns the next item of the sequence.
func (s *Seq[T]) Next() (T, bool) {
	return s.next()
}

// Close releases the underlying pull iterator. Subsequent Next calls report
// exhaustion.
func (s *Seq[T]) Close() {
	s.stop()
}
