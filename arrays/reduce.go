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

// Min returns the smallest element in data.
//
// Reports ErrEmptyInput if data has no elements.
func Min[T Int](data []T) (T, error) {
	if len(data) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}

	result := data[0]
	for i := 1; i < len(data); i++ {
		if data[i] < result {
			result = data[i]
		}
	}
	return result, nil
}

// Max returns the largest element in data.
//
// Reports ErrEmptyInput if data has no elements.
func Max[T Int](data []T) (T, error) {
	if len(data) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}

	result := data[0]
	for i := 1; i < len(data); i++ {
		if data[i] > result {
			result = data[i]
		}
	}
	return result, nil
}

// ArgMin returns the index of the smallest element in data, preferring
// the first occurrence on ties.
//
// Reports ErrEmptyInput if data has no elements.
func ArgMin[T Int](data []T) (int, error) {
	if len(data) == 0 {
		return -1, ErrEmptyInput
	}

	best := 0
	for i := 1; i < len(data); i++ {
		if data[i] < data[best] {
			best = i
		}
	}
	return best, nil
}

// ArgMax returns the index of the largest element in data, preferring
// the first occurrence on ties.
//
// Reports ErrEmptyInput if data has no elements.
func ArgMax[T Int](data []T) (int, error) {
	if len(data) == 0 {
		return -1, ErrEmptyInput
	}

	best := 0
	for i := 1; i < len(data); i++ {
		if data[i] > data[best] {
			best = i
		}
	}
	return best, nil
}

// MaxOccurrence returns how many elements are tied for the maximum value.
// A new maximum resets the count to 1; every further occurrence of it
// increments the count.
//
// Reports ErrEmptyInput if data has no elements.
//
// Example:
//
//	data := []int32{3, 3, 5, 5, 5, 2}
//	n, _ := MaxOccurrence(data)  // 3 (the maximum 5 occurs three times)
func MaxOccurrence[T Int](data []T) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}

	maximum := data[0]
	count := 1
	for i := 1; i < len(data); i++ {
		switch {
		case data[i] > maximum:
			maximum = data[i]
			count = 1
		case data[i] == maximum:
			count++
		}
	}
	return count, nil
}

// Sum returns the sum of all elements, accumulated in T with Go's
// wraparound arithmetic. An empty slice sums to zero.
func Sum[T Int](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}
