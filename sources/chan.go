package sources

// Chan is an owned-item source that receives from a channel until it is
// closed.
type Chan[T any] struct {
	ch <-chan T
}

// NewChan returns a source draining ch. The values sent on ch must arrive in
// an order consistent with the comparator the merge uses.
func NewChan[T any](ch <-chan T) *Chan[T] {
	return &Chan[T]{ch: ch}
}

// Next blocks until a value is received or the channel is closed.
func (c *Chan[T]) Next() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}
