// Copyright 2026 go-arrayops Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrays

import "fmt"

// CopyRange returns a new slice holding the elements of data[start:end).
// The result never aliases data.
//
// Reports ErrOutOfBounds unless 0 <= start <= end <= len(data).
func CopyRange[T Int](data []T, start, end int) ([]T, error) {
	if start < 0 || end > len(data) || start > end {
		return nil, fmt.Errorf("copy range [%d:%d) of %d elements: %w",
			start, end, len(data), ErrOutOfBounds)
	}

	out := make([]T, end-start)
	copy(out, data[start:end])
	return out, nil
}

// Reverse reverses data in place. Slices of length 0 or 1 are left as is.
func Reverse[T Int](data []T) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

// Rotate rotates data right by k positions in place, moving the last
// k mod len(data) elements to the front. k may be negative or exceed the
// length; it is normalized with floored modulo first, so Rotate(data, -k)
// undoes Rotate(data, k).
//
// Reports ErrDivideByZero if data is empty (the modulus is zero).
func Rotate[T Int](data []T, k int) error {
	n := len(data)
	if n == 0 {
		return fmt.Errorf("rotate by %d: %w", k, ErrDivideByZero)
	}

	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return nil
	}

	// Three reversals: the whole slice, then each of the two blocks the
	// rotation moved.
	Reverse(data)
	Reverse(data[:k])
	Reverse(data[k:])
	return nil
}

// Concat returns a new slice holding the elements of a followed by the
// elements of b. Neither input is modified and the result aliases neither.
func Concat[T Int](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Fill sets every element of data to value.
func Fill[T Int](data []T, value T) {
	if len(data) == 0 {
		return
	}

	data[0] = value

	// Double the filled region each iteration; copy is an optimized
	// memmove, so this is O(log n) calls.
	for filled := 1; filled < len(data); filled *= 2 {
		copy(data[filled:], data[:filled])
	}
}
