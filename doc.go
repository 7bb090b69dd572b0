// Package tournament merges k already-sorted sequences into a single sorted
// sequence, lazily, without materializing or re-sorting the combined data.
// Producing n items from k sources costs O(n log k) comparisons and O(k)
// auxiliary space, which makes it a good fit when only the first few winners
// of many large sorted sets are needed.
//
// Two engines are provided:
//   - Tournament merges owned-item sources (Iterator): each step yields a
//     fresh value pulled from the winning source.
//   - StreamingTournament merges pull-then-peek sources (Stream): the current
//     item is borrowed from storage the source owns, so large records are
//     merged without per-element copies.
//
// Both engines are driven by a Comparator. Ascending and Descending cover the
// natural order of any ordered type; any func(a, b T) int works as a custom
// strategy, for example comparing a projection of the items.
//
// Key properties:
//   - O(log k) per produced item, O(1) to peek the next winner
//   - Exactly one source advances by one item per step
//   - Exhaustion is terminal: a drained merge never produces again
//   - No deduplication; equal items surface in unspecified relative order
//
// Every source must already be sorted consistently with the comparator in
// use. This precondition is not validated; violating it yields a merge that
// still terminates with the right item count but in the wrong order.
//
// Basic usage:
//
//	t := tournament.NewAscending[int](
//	    sources.NewSlice(1, 3, 5),
//	    sources.NewSlice(2, 4),
//	    sources.NewSlice(0, 10),
//	)
//	for v := range t.All() {
//	    fmt.Println(v) // 0 1 2 3 4 5 10
//	}
//
// The engines are not safe for concurrent use without external
// synchronization.
package tournament
