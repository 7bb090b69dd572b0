package tournament

import "cmp"

// Comparator decides which of two items a merge emits first. A negative
// result means a wins, a positive result means b wins, and zero is a draw:
// either item may surface first, and no relative order among equal items is
// promised.
//
// A comparator must agree with how every source it is used against is
// pre-sorted: if a source would naturally produce a before b, the comparator
// must not rank b ahead of a. The engines do not check this. A comparator
// that panics propagates the panic out of whichever merge call triggered it,
// leaving the engine in an unspecified state.
type Comparator[T any] func(a, b T) int

// Ascending returns a Comparator under which the smaller item wins, per the
// natural order of T. Sources must be sorted smallest first.
func Ascending[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Descending returns a Comparator under which the larger item wins. Sources
// must be sorted largest first.
func Descending[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(b, a) }
}
