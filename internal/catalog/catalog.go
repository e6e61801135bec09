// Package catalog serves the evaluation suites embedded in the binary.
package catalog

import (
	"embed"
	"fmt"
	"strings"

	"github.com/dshills/ruleeval/internal/scenario"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltin loads a built-in suite by name and assigns missing case IDs.
func LoadBuiltin(name string) (*scenario.Suite, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: unknown suite %q: %w", name, err)
	}
	s, err := scenario.Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: parse %q: %w", name, err)
	}
	scenario.InferCaseIDs(s)
	return s, nil
}

// List returns the names of all available built-in suites.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Describe renders a short listing of a suite: its description and the
// number of cases per kind.
func Describe(s *scenario.Suite) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%d cases)\n", s.Name, len(s.Cases))
	if s.Description != "" {
		fmt.Fprintf(&b, "  %s\n", strings.TrimSpace(s.Description))
	}

	counts := make(map[scenario.Kind]int)
	for _, c := range s.Cases {
		counts[c.Kind]++
	}
	for _, k := range scenario.Kinds {
		if counts[k] > 0 {
			fmt.Fprintf(&b, "  - %s: %d\n", k, counts[k])
		}
	}
	return b.String()
}
