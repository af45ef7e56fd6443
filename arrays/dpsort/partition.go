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

import "github.com/arrayops/go-arrayops/arrays"

// Partition splits the inclusive range data[low..high] into three zones
// around two pivots taken from the range boundaries. data[low] and
// data[high] are the pivots, swapped first if needed so the low pivot is
// the smaller of the two. One pass moves every other element into its
// zone, then the pivots are swapped into their final positions left and
// right, which are returned.
//
// Postcondition:
//   - data[low..left-1]    < data[left]  (the low pivot)
//   - data[left+1..right-1] is within [data[left], data[right]]
//   - data[right+1..high]  > data[right] (the high pivot)
//
// The caller must guarantee low < high with both indices inside the
// slice; the sort entry points validate before recursing. Length-2
// ranges degenerate cleanly: the scan body never runs and the pivots
// land on low and high.
func Partition[T arrays.Int](data []T, low, high int) (left, right int) {
	if data[low] > data[high] {
		arrays.Swap(data, low, high)
	}

	leftPivot := low + 1
	rightPivot := high - 1
	iterator := low + 1

	for iterator <= rightPivot {
		switch {
		case data[iterator] < data[low]:
			arrays.Swap(data, iterator, leftPivot)
			iterator++
			leftPivot++
		case data[iterator] > data[high]:
			// The element swapped in from the right is unexamined, so
			// the iterator stays put.
			arrays.Swap(data, iterator, rightPivot)
			rightPivot--
		default:
			iterator++
		}
	}

	leftPivot--
	arrays.Swap(data, low, leftPivot)
	rightPivot++
	arrays.Swap(data, high, rightPivot)

	return leftPivot, rightPivot
}
