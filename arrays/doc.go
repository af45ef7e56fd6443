// Package arrays provides operations over fixed-width signed integer
// slices: searching, reduction, transformation, comparison, rendering,
// and content hashing.
//
// Every operation works on a plain Go slice owned by the caller. In-place
// operations (Reverse, Rotate, Fill, the sorts in the dpsort subpackage)
// mutate the slice they are given; allocating operations (CopyRange,
// Concat, Format) return fresh storage and never alias their input.
// No operation changes a slice's length.
//
// Operations that validate their inputs report the package's sentinel
// errors, wrapped with context where there is any:
//
//	out, err := arrays.CopyRange(data, 2, 9)
//	if errors.Is(err, arrays.ErrOutOfBounds) {
//	    // range reached outside the slice
//	}
//
// A missing element is a value, not an error: the searches return -1.
//
// Basic usage:
//
//	import "github.com/arrayops/go-arrayops/arrays"
//
//	data := []int32{5, -3, 0, 0, 5, 2}
//	sum := arrays.Sum(data)
//	idx := arrays.IndexOf(data, int32(0))
//	fmt.Println(arrays.Format(data), sum, idx)
//
// The sorting engine lives in the dpsort subpackage; the dispatch
// subpackage bundles the whole surface into one table of function
// references.
package arrays
