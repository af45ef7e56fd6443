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

package main

import (
	"fmt"
	"math/rand"
)

// sawtoothPeriod is the cycle length of the "sawtooth" shape: many
// duplicates, locally sorted runs.
const sawtoothPeriod = 1024

// knownDistribution reports whether name is a dataset shape the
// generator can build.
func knownDistribution(name string) bool {
	switch name {
	case "random", "sorted", "reversed", "sawtooth", "constant":
		return true
	}
	return false
}

// makeDataset builds one dataset of the named shape and length n.
// Only "random" draws from rng; the other shapes are deterministic.
func makeDataset(dist string, n int, rng *rand.Rand) ([]int32, error) {
	data := make([]int32, n)
	switch dist {
	case "random":
		for i := range data {
			data[i] = int32(rng.Uint32())
		}
	case "sorted":
		for i := range data {
			data[i] = int32(i)
		}
	case "reversed":
		for i := range data {
			data[i] = int32(n - i)
		}
	case "sawtooth":
		for i := range data {
			data[i] = int32(i % sawtoothPeriod)
		}
	case "constant":
		for i := range data {
			data[i] = 42
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
	return data, nil
}
