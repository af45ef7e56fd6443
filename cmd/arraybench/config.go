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
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one benchmark run: which datasets to build and how
// to execute the measurements.
type Config struct {
	// Seed feeds the dataset generator; two runs with the same seed
	// measure identical data.
	Seed int64 `yaml:"seed"`

	// Trials is how many times each measurement repeats. The report
	// keeps the fastest trial.
	Trials int `yaml:"trials"`

	// Sizes lists the dataset lengths to measure.
	Sizes []int `yaml:"sizes"`

	// Distributions names the dataset shapes to measure: random,
	// sorted, reversed, sawtooth, constant. The adversarial shapes
	// (sorted, reversed) show the documented quadratic degradation,
	// so keep their sizes moderate.
	Distributions []string `yaml:"distributions"`

	// Workers sizes the worker pool for the batch measurement.
	// Zero or negative means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Parallel also measures the forking engine next to the
	// sequential one.
	Parallel bool `yaml:"parallel"`

	// BatchCount is how many independent slices the batch measurement
	// sorts per pool run.
	BatchCount int `yaml:"batch_count"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Seed:          1,
		Trials:        3,
		Sizes:         []int{1000, 10000, 50000},
		Distributions: []string{"random", "sorted", "reversed", "sawtooth", "constant"},
		Workers:       0,
		Parallel:      true,
		BatchCount:    64,
	}
}

// Load loads configuration from the file named by the
// ARRAYBENCH_CONFIG environment variable, or the defaults when it is
// unset.
func Load() (*Config, error) {
	path := os.Getenv("ARRAYBENCH_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a YAML file. File values are
// merged over the defaults, so a partial file is fine.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("sizes must be positive, got %d", n)
		}
	}
	if len(c.Distributions) == 0 {
		return fmt.Errorf("no distributions configured")
	}
	for _, dist := range c.Distributions {
		if !knownDistribution(dist) {
			return fmt.Errorf("unknown distribution %q", dist)
		}
	}
	if c.BatchCount < 1 {
		return fmt.Errorf("batch_count must be positive, got %d", c.BatchCount)
	}
	return nil
}
