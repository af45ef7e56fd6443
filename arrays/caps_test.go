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

import "testing"

// TestCPUName tests that the reported class is one of the known names
func TestCPUName(t *testing.T) {
	known := map[string]bool{
		"avx512":  true,
		"avx2":    true,
		"sse2":    true,
		"neon":    true,
		"generic": true,
	}
	if name := CPUName(); !known[name] {
		t.Errorf("CPUName() = %q, want one of avx512/avx2/sse2/neon/generic", name)
	}
}

// TestParallelism tests the lower bound
func TestParallelism(t *testing.T) {
	if n := Parallelism(); n < 1 {
		t.Errorf("Parallelism() = %d, want >= 1", n)
	}
}

// TestNoParallelEnv tests the kill-switch parsing
func TestNoParallelEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true}, // unparseable but non-empty
	}

	for _, tt := range tests {
		t.Run("val="+tt.val, func(t *testing.T) {
			t.Setenv("ARRAYOPS_NO_PARALLEL", tt.val)
			if got := NoParallelEnv(); got != tt.want {
				t.Errorf("NoParallelEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
