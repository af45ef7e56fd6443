// Package dpsort provides an in-place dual-pivot quicksort over
// fixed-width signed integer slices.
//
// # Algorithm
//
// Each partition step takes the two boundary elements of the range as
// pivots (swapping them first so the low pivot is the smaller) and
// splits the range into three zones in one pass:
//   - elements smaller than the low pivot
//   - elements between the two pivots, inclusive
//   - elements larger than the high pivot
//
// The engine then recurses on the three zones. The zones of one step
// never share an index, which is what makes the parallel variant safe.
//
// # Complexity
//
// Expected O(n log n) on random data. Because both pivots come from the
// range boundaries, adversarial inputs (already sorted, reverse sorted)
// degrade to O(n^2); there is no fallback to another algorithm. Use
// ParallelSort for large inputs where wall-clock time matters, or the
// standard library for a worst-case guarantee.
//
// # Example Usage
//
//	import "github.com/arrayops/go-arrayops/arrays/dpsort"
//
//	func ProcessData(data []int32) {
//	    dpsort.Sort(data) // In-place ascending sort
//	}
//
//	func TopHalf(data []int64) error {
//	    return dpsort.NthElement(data, len(data)/2)
//	}
//
// SortRange sorts a sub-range and validates its bounds; Sort covers the
// whole slice. SortEach sorts a batch of independent slices on a
// workerpool.Pool.
package dpsort
