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

// Command opgen generates the registry name file of the dispatch
// package from the operation manifest below.
//
// Usage:
//
//	opgen --output names_gen.go
//
// Or via go:generate from the dispatch package:
//
//	//go:generate go run ../../cmd/opgen --output names_gen.go
//
// The output is formatted and committed; rerun after changing the
// manifest and keep dispatch.New in step with it.
package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/pflag"
	"golang.org/x/tools/imports"
)

// operation is one registry entry: the stable name plus its one-line
// description.
type operation struct {
	Name     string
	Synopsis string
}

// registry is the operation manifest, in registry order. dispatch.New
// binds every entry; the dispatch tests check the two stay in step.
var registry = []operation{
	{"copyOfRange", "new array holding the elements of [start, end)"},
	{"rotate", "right-rotate in place by k mod length"},
	{"searchLIN", "index of the first match, or -1"},
	{"search", "count of matching elements"},
	{"searchBIN", "probe scan of sorted input: index of a probe hit, or -1"},
	{"reverse", "reverse in place"},
	{"maxValue", "largest element"},
	{"minValue", "smallest element"},
	{"getMaxOccurrence", "count of elements tied for the maximum"},
	{"toString", "bracketed rendering, [NULL] when empty"},
	{"sort", "dual-pivot quicksort of an inclusive range"},
	{"compare", "element-wise equality"},
	{"sum", "sum of all elements"},
	{"isSorted", "true if non-decreasing"},
	{"concat", "new array of a followed by b"},
	{"indexOf", "index of the first match, or -1"},
	{"hashCode", "order-sensitive content hash, 0 for nil"},
}

const fileTemplate = `// Code generated by opgen; DO NOT EDIT.

package {{.Package}}

// Names lists every registry operation bound by New, in registry order.
func Names() []string {
	return []string{
{{- range .Ops}}
		"{{.Name}}",
{{- end}}
	}
}

// Synopsis returns a one-line description of the named registry
// operation, or the empty string if the name is unknown.
func Synopsis(name string) string {
	switch name {
{{- range .Ops}}
	case "{{.Name}}":
		return "{{.Synopsis}}"
{{- end}}
	}
	return ""
}
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("opgen", pflag.ContinueOnError)
	output := flagSet.String("output", "names_gen.go", "output file path")
	pkg := flagSet.String("package", "dispatch", "package name for the generated file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	src, err := render(*pkg, *output)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d operations)\n", *output, len(registry))
	return nil
}

// render executes the template and formats the result. A manifest or
// template mistake surfaces here as a parse error instead of landing in
// the tree.
func render(pkg, filename string) ([]byte, error) {
	tmpl, err := template.New("names").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package string
		Ops     []operation
	}{Package: pkg, Ops: registry})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", filename, err)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return src, nil
}
