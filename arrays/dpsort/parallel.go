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
	"github.com/exascience/pargo/parallel"

	"github.com/arrayops/go-arrayops/arrays"
)

// parallelGrain is the range length below which forking stops paying
// for itself and the sequential engine takes over.
const parallelGrain = 0x800

// ParallelSort sorts data in place like Sort, forking the three zone
// recursions of each partition step onto separate goroutines while the
// ranges stay above a grain size. The zones of one step share no
// indices, so the result is identical to Sort.
//
// Inputs at or below the grain size, single-CPU hosts, and hosts with
// ARRAYOPS_NO_PARALLEL set fall back to Sort outright.
func ParallelSort[T arrays.Int](data []T) {
	if len(data) <= parallelGrain || arrays.Parallelism() == 1 || arrays.NoParallelEnv() {
		Sort(data)
		return
	}
	parallelSortRange(data, 0, len(data)-1)
}

// parallelSortRange forks the three-zone recursion, joining before
// return so the caller sees a fully sorted range.
func parallelSortRange[T arrays.Int](data []T, low, high int) {
	if high-low < parallelGrain {
		sortRange(data, low, high)
		return
	}

	left, right := Partition(data, low, high)

	parallel.Do(
		func() { parallelSortRange(data, low, left-1) },
		func() { parallelSortRange(data, left+1, right-1) },
		func() { parallelSortRange(data, right+1, high) },
	)
}
