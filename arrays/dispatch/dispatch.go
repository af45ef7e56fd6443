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

// Package dispatch bundles the whole operation surface of the library
// into one table of function references, published under stable
// registry names (Names lists them; Synopsis describes each).
//
// New constructs the table once; after that it is immutable and shared
// by reference. There is no process-wide instance and no way to rebind
// an operation: callers that want different behavior build their own
// routing on top.
//
//	table := dispatch.New[int32]()
//	if err := table.Sort(data, 0, len(data)-1); err != nil { ... }
//	fmt.Println(table.ToString(data))
//
// Each field propagates exactly what the bound operation signals:
// errors stay errors, -1 stays a value.
package dispatch

//go:generate go run ../../cmd/opgen --output names_gen.go

import (
	"github.com/arrayops/go-arrayops/arrays"
	"github.com/arrayops/go-arrayops/arrays/dpsort"
)

// Table carries one function reference per registry operation. Fields
// must not be reassigned after New returns.
type Table[T arrays.Int] struct {
	// CopyOfRange is registry name "copyOfRange": arrays.CopyRange.
	CopyOfRange func(data []T, start, end int) ([]T, error)

	// Rotate is registry name "rotate": arrays.Rotate.
	Rotate func(data []T, k int) error

	// SearchLin is registry name "searchLIN": arrays.IndexOf. The
	// registry kept two spellings of one linear scan; both bind here
	// to the same function (see IndexOf below).
	SearchLin func(data []T, target T) int

	// Search is registry name "search": arrays.Occurrences, the silent
	// count. arrays.VisitOccurrences is the emitting variant for
	// callers that want the matching indices.
	Search func(data []T, target T) int

	// SearchBin is registry name "searchBIN": arrays.SearchBinary, the
	// probe scan. Not a membership test; see its documentation.
	SearchBin func(data []T, target T) int

	// Reverse is registry name "reverse": arrays.Reverse.
	Reverse func(data []T)

	// MaxValue is registry name "maxValue": arrays.Max.
	MaxValue func(data []T) (T, error)

	// MinValue is registry name "minValue": arrays.Min.
	MinValue func(data []T) (T, error)

	// GetMaxOccurrence is registry name "getMaxOccurrence":
	// arrays.MaxOccurrence.
	GetMaxOccurrence func(data []T) (int, error)

	// ToString is registry name "toString": arrays.Format.
	ToString func(data []T) string

	// Sort is registry name "sort": dpsort.SortRange over the
	// inclusive range [low, high].
	Sort func(data []T, low, high int) error

	// Compare is registry name "compare": arrays.Equal.
	Compare func(a, b []T) bool

	// Sum is registry name "sum": arrays.Sum.
	Sum func(data []T) T

	// IsSorted is registry name "isSorted": arrays.IsSorted.
	IsSorted func(data []T) bool

	// Concat is registry name "concat": arrays.Concat.
	Concat func(a, b []T) []T

	// IndexOf is registry name "indexOf": arrays.IndexOf.
	IndexOf func(data []T, target T) int

	// HashCode is registry name "hashCode": arrays.HashCode.
	HashCode func(data []T) uint64
}

// New builds the table, binding every registry name to its operation.
func New[T arrays.Int]() *Table[T] {
	return &Table[T]{
		CopyOfRange:      arrays.CopyRange[T],
		Rotate:           arrays.Rotate[T],
		SearchLin:        arrays.IndexOf[T],
		Search:           arrays.Occurrences[T],
		SearchBin:        arrays.SearchBinary[T],
		Reverse:          arrays.Reverse[T],
		MaxValue:         arrays.Max[T],
		MinValue:         arrays.Min[T],
		GetMaxOccurrence: arrays.MaxOccurrence[T],
		ToString:         arrays.Format[T],
		Sort:             dpsort.SortRange[T],
		Compare:          arrays.Equal[T],
		Sum:              arrays.Sum[T],
		IsSorted:         arrays.IsSorted[T],
		Concat:           arrays.Concat[T],
		IndexOf:          arrays.IndexOf[T],
		HashCode:         arrays.HashCode[T],
	}
}
