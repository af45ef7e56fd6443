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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRenderContainsEveryOperation tests the rendered file mentions
// each manifest entry
func TestRenderContainsEveryOperation(t *testing.T) {
	src, err := render("dispatch", "names_gen.go")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	out := string(src)
	if !strings.HasPrefix(out, "// Code generated by opgen; DO NOT EDIT.") {
		t.Error("missing generated-code header")
	}
	if !strings.Contains(out, "package dispatch") {
		t.Error("missing package clause")
	}

	for _, op := range registry {
		if !strings.Contains(out, `"`+op.Name+`"`) {
			t.Errorf("rendered file does not mention %q", op.Name)
		}
	}
}

// TestRegistryNamesUnique tests the manifest has no duplicate names and
// no empty synopses
func TestRegistryNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range registry {
		if seen[op.Name] {
			t.Errorf("duplicate registry name %q", op.Name)
		}
		seen[op.Name] = true

		if op.Synopsis == "" {
			t.Errorf("operation %q has no synopsis", op.Name)
		}
	}
}

// TestRunWritesFile tests the full flag-to-file path
func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "names_gen.go")

	if err := run([]string{"--output", out}); err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `case "hashCode":`) {
		t.Error("output missing the hashCode case")
	}
}
