package arrays

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

// NoParallelEnv checks if the ARRAYOPS_NO_PARALLEL environment variable
// is set. When set, parallel entry points fall back to their sequential
// implementations regardless of host parallelism. This is useful for
// testing and debugging.
func NoParallelEnv() bool {
	val := os.Getenv("ARRAYOPS_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Parallelism returns the number of CPUs usable for parallel operations,
// never less than 1.
func Parallelism() int {
	if n := runtime.GOMAXPROCS(0); n > 1 {
		return n
	}
	return 1
}

// CPUName returns a human-readable name for the host's vector unit
// class: "avx512", "avx2", "sse2", "neon", or "generic". It is purely
// diagnostic; no operation in this module changes behavior based on it.
func CPUName() string {
	switch {
	case cpu.X86.HasAVX512:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.X86.HasSSE2:
		return "sse2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	}
	return "generic"
}
