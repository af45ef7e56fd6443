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

import "unsafe"

// HashCode returns an order-sensitive content hash of data.
//
// A nil slice hashes to 0. Any other slice starts from seed 1 and folds
// each element in as hash = hash*19 + fold(v), where fold XORs the value
// with its sign bit smeared across the full width (v ^ (v >> 31) for
// 32-bit elements, v ^ (v >> 63) for 64-bit), mapping negatives to
// non-negative contributions. An empty non-nil slice therefore hashes
// to 1: nil and empty are distinguishable.
//
// The hash is deterministic across runs and not cryptographic.
func HashCode[T Int](data []T) uint64 {
	if data == nil {
		return 0
	}

	var zero T
	shift := uint(unsafe.Sizeof(zero))*8 - 1

	hash := uint64(1)
	for _, v := range data {
		folded := v ^ (v >> shift)
		hash = hash*19 + uint64(folded)
	}
	return hash
}
