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

import "errors"

// Sentinel errors reported by operations that validate their inputs.
// Operations wrap them with context where they have any; match with
// errors.Is either way.
var (
	// ErrOutOfBounds reports an index or range reaching outside the slice.
	ErrOutOfBounds = errors.New("arrays: index out of bounds")

	// ErrEmptyInput reports an operation that needs at least one element.
	ErrEmptyInput = errors.New("arrays: empty input")

	// ErrDivideByZero reports a modulus taken over a zero-length slice.
	ErrDivideByZero = errors.New("arrays: divide by zero")
)
