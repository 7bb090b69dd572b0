// Package sources provides ready-made inputs for the merge engines: adapters
// that expose slices, range-over-func sequences, channels, closures and
// google/btree ordered sets as tournament.Iterator or tournament.Stream
// values.
//
// Every adapter is forward-only and single-use. The slice adapters do not
// copy their backing data; NewSliceStream in particular hands out pointers
// into the original slice, so merging large records through it allocates
// nothing per element.
//
// Basic usage:
//
//	t := tournament.NewAscending[int](
//	    sources.NewSlice(1, 3, 5),
//	    sources.NewChan(ch),
//	    sources.NewSeq(sources.BTreeAscend(tree)),
//	)
package sources
