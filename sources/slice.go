package sources

// Slice is an owned-item source over a slice.
type Slice[T any] struct {
	items []T
	pos   int
}

// NewSlice returns a source yielding items in order. The slice is not copied.
func NewSlice[T any](items ...T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Next returns the next item in the slice.
func (s *Slice[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// SliceStream is a pull-then-peek source over a slice. At returns pointers
// into the backing slice, so items are never copied out.
type SliceStream[T any] struct {
	items []T
	pos   int
}

// NewSliceStream returns a stream over items. The slice is not copied; the
// stream must be advanced with Next before its first At call.
func NewSliceStream[T any](items ...T) *SliceStream[T] {
	return &SliceStream[T]{items: items, pos: -1}
}

// Next advances to the next item.
func (s *SliceStream[T]) Next() bool {
	if s.pos < len(s.items) {
		s.pos++
	}
	return s.pos < len(s.items)
}

// At returns a pointer to the current item, or nil before the first Next and
// after exhaustion.
func (s *SliceStream[T]) At() *T {
	if s.pos < 0 || s.pos >= len(s.items) {
		return nil
	}
	return &s.items[s.pos]
}

// SizeHint reports the exact number of items remaining after the current one.
func (s *SliceStream[T]) SizeHint() (lo, hi int, bounded bool) {
	n := len(s.items) - s.pos - 1
	if n < 0 {
		n = 0
	}
	return n, n, true
}
