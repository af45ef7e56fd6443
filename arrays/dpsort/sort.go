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

package dpsort

import (
	"fmt"

	"github.com/arrayops/go-arrayops/arrays"
)

// Sort sorts data in place in ascending order using dual-pivot
// quicksort. The sort is not stable. Expected O(n log n); adversarial
// inputs degrade to O(n^2) because both pivots come from the range
// boundaries (see the package documentation).
func Sort[T arrays.Int](data []T) {
	if len(data) <= 1 {
		return
	}
	sortRange(data, 0, len(data)-1)
}

// SortRange sorts the inclusive range data[low..high] in place, leaving
// the rest of the slice untouched. A range with low >= high is already
// trivially sorted and succeeds without touching the slice, so sorting
// an empty slice over [0, -1] is a no-op, not an error.
//
// Reports ErrOutOfBounds if a range with low < high reaches outside the
// slice.
func SortRange[T arrays.Int](data []T, low, high int) error {
	if low >= high {
		return nil
	}
	if low < 0 || high >= len(data) {
		return fmt.Errorf("sort range [%d, %d] of %d elements: %w",
			low, high, len(data), arrays.ErrOutOfBounds)
	}

	sortRange(data, low, high)
	return nil
}

// sortRange is the recursive engine: one partition step, then recursion
// on the three zones in left-to-right order. The pivots at left and
// right are already in their final positions and are excluded.
func sortRange[T arrays.Int](data []T, low, high int) {
	if low >= high {
		return
	}

	left, right := Partition(data, low, high)

	sortRange(data, low, left-1)
	sortRange(data, left+1, right-1)
	sortRange(data, right+1, high)
}
