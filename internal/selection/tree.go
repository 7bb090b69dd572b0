// Package selection implements the binary heap backing the merge engines.
//
// The tree holds at most one entry per still-active source and keeps the entry
// that should be emitted next at the root. Ordering is supplied as a less
// function at construction; entries for which less reports neither order are
// equal and may surface in either order.
package selection

// Tree is a binary heap ordered by a caller-provided less function. The entry
// with the highest priority (less reports true against every other entry)
// sits at the root.
type Tree[E any] struct {
	entries []E
	less    func(a, b E) bool
}

// New creates an empty tree ordered by less.
func New[E any](less func(a, b E) bool) *Tree[E] {
	return &Tree[E]{less: less}
}

// Len returns the number of entries in the tree.
func (t *Tree[E]) Len() int {
	return len(t.entries)
}

// Push adds an entry to the tree.
func (t *Tree[E]) Push(e E) {
	t.entries = append(t.entries, e)
	t.up(len(t.entries) - 1)
}

// Peek returns the root entry without removing it.
func (t *Tree[E]) Peek() (E, bool) {
	if len(t.entries) == 0 {
		var zero E
		return zero, false
	}
	return t.entries[0], true
}

// Pop removes and returns the root entry.
func (t *Tree[E]) Pop() (E, bool) {
	if len(t.entries) == 0 {
		var zero E
		return zero, false
	}
	e := t.entries[0]
	last := len(t.entries) - 1
	t.entries[0] = t.entries[last]
	var zero E
	t.entries[last] = zero
	t.entries = t.entries[:last]
	if last > 0 {
		t.down(0)
	}
	return e, true
}

// Fix restores the heap property after the root entry's ordering key has been
// mutated in place. It is cheaper than a Pop followed by a Push.
func (t *Tree[E]) Fix() {
	if len(t.entries) > 0 {
		t.down(0)
	}
}

// Items exposes the backing slice for read-only traversal, in no particular
// order beyond the heap layout. Callers must not modify or retain it.
func (t *Tree[E]) Items() []E {
	return t.entries
}

// up moves the entry at index i up to its proper position.
func (t *Tree[E]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !t.less(t.entries[i], t.entries[parent]) {
			break
		}
		t.entries[i], t.entries[parent] = t.entries[parent], t.entries[i]
		i = parent
	}
}

// down moves the entry at index i down to its proper position.
func (t *Tree[E]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(t.entries) && t.less(t.entries[left], t.entries[smallest]) {
			smallest = left
		}
		if right < len(t.entries) && t.less(t.entries[right], t.entries[smallest]) {
			smallest = right
		}

		if smallest == i {
			break
		}

		t.entries[i], t.entries[smallest] = t.entries[smallest], t.entries[i]
		i = smallest
	}
}
