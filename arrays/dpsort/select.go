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

// NthElement rearranges data so that data[k] holds the element that
// would be at index k if data were fully sorted, with everything before
// it <= data[k] and everything after it >= data[k]. Only the zone
// containing k is descended into, so the rest of the slice ends up
// partitioned but not sorted.
//
// Reports ErrOutOfBounds if k is outside [0, len(data)), which includes
// every k on an empty slice.
func NthElement[T arrays.Int](data []T, k int) error {
	if k < 0 || k >= len(data) {
		return fmt.Errorf("nth element %d of %d elements: %w",
			k, len(data), arrays.ErrOutOfBounds)
	}

	low, high := 0, len(data)-1
	for low < high {
		left, right := Partition(data, low, high)
		switch {
		case k == left || k == right:
			// k landed on a pivot, already in final position.
			return nil
		case k < left:
			high = left - 1
		case k < right:
			low, high = left+1, right-1
		default:
			low = right + 1
		}
	}
	return nil
}
