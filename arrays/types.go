package arrays

// Int is a constraint for the fixed-width signed integer types the
// library operates on.
type Int interface {
	~int32 | ~int64
}

// Swap exchanges the elements at indices i and j.
// Indices are not validated; both must be within the slice.
func Swap[T Int](data []T, i, j int) {
	data[i], data[j] = data[j], data[i]
}
