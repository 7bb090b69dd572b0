package selection_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkrasnov/tournament/internal/selection"
)

func TestTree(t *testing.T) {
	tests := []struct {
		name     string
		push     []int
		pops     int
		wantLen  int
		wantPeek int
		wantOK   bool
	}{
		{
			name:     "root holds the minimum",
			push:     []int{5, 3, 7},
			wantLen:  3,
			wantPeek: 3,
			wantOK:   true,
		},
		{
			name:     "pop surfaces entries in order",
			push:     []int{5, 3, 7, 1},
			pops:     2,
			wantLen:  2,
			wantPeek: 5,
			wantOK:   true,
		},
		{
			name:    "empty tree",
			wantLen: 0,
			wantOK:  false,
		},
		{
			name:    "drained tree",
			push:    []int{2},
			pops:    1,
			wantLen: 0,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := selection.New(func(a, b int) bool { return a < b })
			for _, v := range tt.push {
				tree.Push(v)
			}
			for i := 0; i < tt.pops; i++ {
				tree.Pop()
			}

			assert.Equal(t, tt.wantLen, tree.Len())
			got, ok := tree.Peek()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPeek, got)
			}
		})
	}
}

func TestTreePopOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 500)
	for i := range values {
		values[i] = rng.Intn(100)
	}

	tree := selection.New(func(a, b int) bool { return a < b })
	for _, v := range values {
		tree.Push(v)
	}

	var got []int
	for tree.Len() > 0 {
		v, ok := tree.Pop()
		require.True(t, ok)
		got = append(got, v)
	}

	want := append([]int(nil), values...)
	sort.Ints(want)
	assert.Equal(t, want, got)
}

func TestTreePopEmpty(t *testing.T) {
	tree := selection.New(func(a, b int) bool { return a < b })
	v, ok := tree.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestTreeFix(t *testing.T) {
	type box struct{ v int }

	tree := selection.New(func(a, b *box) bool { return a.v < b.v })
	one, four, nine := &box{1}, &box{4}, &box{9}
	tree.Push(four)
	tree.Push(nine)
	tree.Push(one)

	// Mutate the root's key in place and restore the heap property.
	root, ok := tree.Peek()
	require.True(t, ok)
	require.Same(t, one, root)
	root.v = 6
	tree.Fix()

	got, ok := tree.Peek()
	require.True(t, ok)
	assert.Same(t, four, got)
}

func TestTreeDuplicates(t *testing.T) {
	tree := selection.New(func(a, b int) bool { return a < b })
	for _, v := range []int{2, 2, 1, 2, 1} {
		tree.Push(v)
	}

	var got []int
	for tree.Len() > 0 {
		v, _ := tree.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 2, 2, 2}, got)
}
