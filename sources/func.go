package sources

// Func is an owned-item source backed by a closure, useful for computed or
// unbounded sequences. The closure reports exhaustion by returning false;
// once it does, it is not consulted again by the merge engines but may be by
// other callers, so it should keep returning false.
type Func[T any] func() (T, bool)

// Next invokes the closure.
func (f Func[T]) Next() (T, bool) { return f() }
