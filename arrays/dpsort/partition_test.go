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
	"math/rand"
	"slices"
	"testing"

	"github.com/arrayops/go-arrayops/arrays"
)

// checkPartition verifies the three-zone postcondition over
// data[low..high] for a Partition call that returned (left, right).
func checkPartition[T arrays.Int](t *testing.T, data []T, low, high, left, right int) {
	t.Helper()

	if left < low || right > high || left > right {
		t.Fatalf("pivot positions (%d, %d) outside range [%d, %d]", left, right, low, high)
	}

	lowPivot, highPivot := data[left], data[right]
	if lowPivot > highPivot {
		t.Fatalf("pivots out of order: data[%d]=%v > data[%d]=%v", left, lowPivot, right, highPivot)
	}

	for i := low; i < left; i++ {
		if data[i] >= lowPivot {
			t.Errorf("data[%d]=%v should be < low pivot %v", i, data[i], lowPivot)
		}
	}
	for i := left + 1; i < right; i++ {
		if data[i] < lowPivot || data[i] > highPivot {
			t.Errorf("data[%d]=%v should be within [%v, %v]", i, data[i], lowPivot, highPivot)
		}
	}
	for i := right + 1; i <= high; i++ {
		if data[i] <= highPivot {
			t.Errorf("data[%d]=%v should be > high pivot %v", i, data[i], highPivot)
		}
	}
}

// TestPartition tests the three-zone split on fixed inputs
func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		data []int32
	}{
		{"mixed", []int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"sorted", []int32{1, 2, 3, 4, 5}},
		{"reverse", []int32{5, 4, 3, 2, 1}},
		{"duplicates", []int32{5, 1, 5, 5, 2, 5}},
		{"all_equal", []int32{7, 7, 7, 7, 7}},
		{"negatives", []int32{0, -3, 8, -7, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.data)
			left, right := Partition(data, 0, len(data)-1)
			checkPartition(t, data, 0, len(data)-1, left, right)

			// Same multiset before and after.
			orig := slices.Clone(tt.data)
			got := slices.Clone(data)
			slices.Sort(orig)
			slices.Sort(got)
			if !slices.Equal(orig, got) {
				t.Errorf("partition changed the elements: %v -> %v", tt.data, data)
			}
		})
	}
}

// TestPartitionLengthTwo tests the degenerate range where the scan body
// never runs
func TestPartitionLengthTwo(t *testing.T) {
	data := []int32{9, 2}
	left, right := Partition(data, 0, 1)

	if left != 0 || right != 1 {
		t.Errorf("Partition([9,2]) = (%d, %d), want (0, 1)", left, right)
	}
	if data[0] != 2 || data[1] != 9 {
		t.Errorf("Partition([9,2]) left %v, want [2 9]", data)
	}
}

// TestPartitionSubrange tests that elements outside [low, high] are untouched
func TestPartitionSubrange(t *testing.T) {
	data := []int64{100, 5, 1, 4, 2, 8, 200}
	left, right := Partition(data, 1, 5)

	checkPartition(t, data, 1, 5, left, right)
	if data[0] != 100 || data[6] != 200 {
		t.Errorf("partition touched elements outside the range: %v", data)
	}
}

// TestPartitionRandom tests the postcondition over random inputs
func TestPartitionRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{2, 3, 4, 5, 8, 16, 100, 1000}

	for _, n := range sizes {
		for trial := 0; trial < 20; trial++ {
			data := make([]int32, n)
			for i := range data {
				data[i] = rng.Int31n(50) - 25
			}

			orig := slices.Clone(data)
			left, right := Partition(data, 0, n-1)
			checkPartition(t, data, 0, n-1, left, right)

			got := slices.Clone(data)
			slices.Sort(orig)
			slices.Sort(got)
			if !slices.Equal(orig, got) {
				t.Fatalf("partition changed the elements, n=%d", n)
			}
		}
	}
}
