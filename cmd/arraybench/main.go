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

// Command arraybench measures the dual-pivot sort engines against the
// standard library across configurable dataset shapes, then times a
// batch of independent slices on the worker pool.
//
// Usage:
//
//	arraybench [--config bench.yaml] [--verbose]
//
// Without --config it reads the file named by ARRAYBENCH_CONFIG, and
// without that it runs built-in defaults. Logs go to stderr; the
// report goes to stdout. Setting ARRAYOPS_DEBUG enables debug logging
// like --verbose does.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"

	"github.com/arrayops/go-arrayops/arrays"
	"github.com/arrayops/go-arrayops/arrays/dpsort"
	"github.com/arrayops/go-arrayops/arrays/workerpool"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var verbose bool

	flagSet := pflag.NewFlagSet("arraybench", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "",
		"path to a YAML benchmark config (default: ARRAYBENCH_CONFIG, then built-in defaults)")
	flagSet.BoolVar(&verbose, "verbose", false,
		"log debug detail")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	logLevel := slog.LevelInfo
	if verbose || os.Getenv("ARRAYOPS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger.Info("starting benchmark",
		"cpu", arrays.CPUName(),
		"parallelism", arrays.Parallelism(),
		"seed", cfg.Seed,
		"trials", cfg.Trials)

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	if err := benchSorts(logger, cfg); err != nil {
		return err
	}
	benchBatch(logger, cfg, pool)

	logger.Info("benchmark complete")
	return nil
}

// loadConfig resolves the configuration: explicit flag first, then
// the ARRAYBENCH_CONFIG environment variable, then defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

// benchSorts measures each configured shape and size with the
// sequential engine, the forking engine, and slices.Sort, and prints
// one report row per dataset.
func benchSorts(logger *slog.Logger, cfg *Config) error {
	fmt.Printf("%-10s %10s %14s %14s %14s\n",
		"shape", "n", "dpsort", "parallel", "stdlib")

	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, dist := range cfg.Distributions {
		for _, n := range cfg.Sizes {
			ref, err := makeDataset(dist, n, rng)
			if err != nil {
				return err
			}
			logger.Debug("dataset ready", "shape", dist, "n", n)

			seq := measure(ref, cfg.Trials, dpsort.Sort[int32])
			par := "-"
			if cfg.Parallel {
				par = measure(ref, cfg.Trials, dpsort.ParallelSort[int32]).String()
			}
			std := measure(ref, cfg.Trials, func(data []int32) {
				slices.Sort(data)
			})

			fmt.Printf("%-10s %10d %14s %14s %14s\n",
				dist, n, seq, par, std)
		}
	}
	return nil
}

// measure runs sortFn on a fresh copy of ref trials times and returns
// the fastest wall time.
func measure(ref []int32, trials int, sortFn func([]int32)) time.Duration {
	data := make([]int32, len(ref))
	best := time.Duration(math.MaxInt64)
	for t := 0; t < trials; t++ {
		copy(data, ref)
		start := time.Now()
		sortFn(data)
		if elapsed := time.Since(start); elapsed < best {
			best = elapsed
		}
	}
	return best
}

// benchBatch sorts a batch of independent random slices twice, once
// sequentially and once with one pool task per slice, and prints the
// two times.
func benchBatch(logger *slog.Logger, cfg *Config, pool *workerpool.Pool) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	ref := make([][]int32, cfg.BatchCount)
	for i := range ref {
		n := cfg.Sizes[i%len(cfg.Sizes)]
		data := make([]int32, n)
		for j := range data {
			data[j] = int32(rng.Uint32())
		}
		ref[i] = data
	}
	logger.Debug("batch ready", "slices", len(ref))

	batch := cloneBatch(pool, ref)
	start := time.Now()
	dpsort.SortEach[int32](nil, batch)
	seq := time.Since(start)

	batch = cloneBatch(pool, ref)
	start = time.Now()
	dpsort.SortEach(pool, batch)
	pooled := time.Since(start)

	fmt.Printf("\nbatch of %d slices: sequential %s, pool of %d workers %s\n",
		cfg.BatchCount, seq, pool.NumWorkers(), pooled)
}

// cloneBatch deep-copies a batch so every measurement sorts the same
// input. The copies are independent, so the pool chunks them.
func cloneBatch(pool *workerpool.Pool, ref [][]int32) [][]int32 {
	out := make([][]int32, len(ref))
	pool.ParallelFor(len(ref), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = slices.Clone(ref[i])
		}
	})
	return out
}
