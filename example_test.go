package tournament_test

import (
	"fmt"

	"github.com/vkrasnov/tournament"
	"github.com/vkrasnov/tournament/sources"
)

// ExampleNew demonstrates merging with a custom ordering strategy.
func ExampleNew() {
	type event struct {
		At   int
		Name string
	}
	byTime := func(a, b event) int { return a.At - b.At }

	shard1 := []event{{1, "boot"}, {4, "ready"}}
	shard2 := []event{{2, "connect"}, {3, "auth"}}

	t := tournament.New(
		byTime,
		sources.NewSlice(shard1...),
		sources.NewSlice(shard2...),
	)
	for e := range t.All() {
		fmt.Printf("%d:%s ", e.At, e.Name)
	}
	// Output: 1:boot 2:connect 3:auth 4:ready
}

// ExampleNewDescending merges sources that are each sorted largest first.
func ExampleNewDescending() {
	t := tournament.NewDescending[int](
		sources.NewSlice(5, 3, 1),
		sources.NewSlice(4, 2),
		sources.NewSlice(10, 0),
	)
	for v := range t.All() {
		fmt.Printf("%d ", v)
	}
	// Output: 10 5 4 3 2 1 0
}

// ExampleNewStreamingAscending keeps only the few smallest items from many
// large sorted sets, without copying records out of their sources.
func ExampleNewStreamingAscending() {
	st := tournament.NewStreamingAscending[int](
		sources.NewSliceStream(1, 100, 10000),
		sources.NewSliceStream(2, 200, 20000),
		sources.NewSliceStream(3, 300, 30000),
	)
	for i := 0; i < 4 && st.Next(); i++ {
		fmt.Printf("%d ", *st.At())
	}
	// Output: 1 2 3 100
}
