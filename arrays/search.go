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

// IndexOf returns the index of the first element equal to target, or -1
// if no element matches.
func IndexOf[T Int](data []T, target T) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}
	return -1
}

// Contains reports whether target occurs in data.
func Contains[T Int](data []T, target T) bool {
	return IndexOf(data, target) >= 0
}

// Occurrences returns the number of elements equal to target.
func Occurrences[T Int](data []T, target T) int {
	return VisitOccurrences(data, target, nil)
}

// VisitOccurrences counts the elements equal to target, reporting the
// index of each match to visit in ascending order. A nil visit just
// counts. data must not be mutated from inside the callback.
func VisitOccurrences[T Int](data []T, target T, visit func(index int)) int {
	count := 0
	for i, v := range data {
		if v != target {
			continue
		}
		if visit != nil {
			visit(i)
		}
		count++
	}
	return count
}

// SearchBinary probes ascending-sorted data for target and returns the
// index of the probe that hit, or -1 if no probe did.
//
// This is a probe scan, not a membership test. The window shrinks past
// mid on both sides (start = mid+1, end = mid-1) over a half-open upper
// bound, and the scan stops at the first probe that lands on target.
// An element the probe sequence never lands on reports -1 even though
// it is present: over [1 3 5 7 9], targets 1, 5 and 9 are found while
// 3 and 7 report -1. Callers that need exact membership use IndexOf.
//
// Behavior is unspecified if data is not sorted ascending.
func SearchBinary[T Int](data []T, target T) int {
	start, end := 0, len(data)
	index, mid := -1, 0
	for start < end && index != mid {
		mid = (start + end) / 2
		switch {
		case data[mid] == target:
			index = mid
		case data[mid] < target:
			start = mid + 1
		default:
			end = mid - 1
		}
	}
	return index
}
