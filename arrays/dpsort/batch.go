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
	"github.com/arrayops/go-arrayops/arrays"
	"github.com/arrayops/go-arrayops/arrays/workerpool"
)

// SortEach sorts every slice in batch, one pool task per slice. The
// slices must not alias one another. A nil pool sorts sequentially, so
// callers can thread an optional pool straight through.
func SortEach[T arrays.Int](pool *workerpool.Pool, batch [][]T) {
	if pool == nil {
		for _, data := range batch {
			Sort(data)
		}
		return
	}

	pool.ForEachIndex(len(batch), func(i int) {
		Sort(batch[i])
	})
}
