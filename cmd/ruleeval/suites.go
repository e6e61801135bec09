package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/ruleeval/internal/catalog"
)

func newSuitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suites",
		Short: "List the built-in suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSuites(cmd.OutOrStdout())
		},
	}
}

func listSuites(w io.Writer) error {
	names, err := catalog.List()
	if err != nil {
		return fmt.Errorf("failed to list suites: %w", err)
	}
	for _, name := range names {
		s, err := catalog.LoadBuiltin(name)
		if err != nil {
			return exitError(exitInput, "failed to load suite %s: %v", name, err)
		}
		fmt.Fprint(w, catalog.Describe(s))
	}
	return nil
}
