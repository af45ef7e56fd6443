package dpsort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(10000) - 5000
	}
	return data
}

// Int32 benchmarks
func BenchmarkSort_Int32_100(b *testing.B) {
	benchmarkSortInt32(b, 100)
}

func BenchmarkSort_Int32_1000(b *testing.B) {
	benchmarkSortInt32(b, 1000)
}

func BenchmarkSort_Int32_10000(b *testing.B) {
	benchmarkSortInt32(b, 10000)
}

func BenchmarkSort_Int32_100000(b *testing.B) {
	benchmarkSortInt32(b, 100000)
}

func benchmarkSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Int64 benchmarks
func BenchmarkSort_Int64_1000(b *testing.B) {
	benchmarkSortInt64(b, 1000)
}

func BenchmarkSort_Int64_10000(b *testing.B) {
	benchmarkSortInt64(b, 10000)
}

func benchmarkSortInt64(b *testing.B, n int) {
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Parallel engine benchmarks
func BenchmarkParallelSort_Int32_10000(b *testing.B) {
	benchmarkParallelSortInt32(b, 10000)
}

func BenchmarkParallelSort_Int32_100000(b *testing.B) {
	benchmarkParallelSortInt32(b, 100000)
}

func BenchmarkParallelSort_Int32_1000000(b *testing.B) {
	benchmarkParallelSortInt32(b, 1000000)
}

func benchmarkParallelSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		ParallelSort(data)
	}
}

// Stdlib baseline for comparison
func BenchmarkStdlibSort_Int32_10000(b *testing.B) {
	ref := generateInt32(10000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkStdlibSort_Int32_100000(b *testing.B) {
	ref := generateInt32(100000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// Rank selection benchmark: median without a full sort
func BenchmarkNthElement_Int32_100000(b *testing.B) {
	ref := generateInt32(100000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := NthElement(data, len(data)/2); err != nil {
			b.Fatal(err)
		}
	}
}
