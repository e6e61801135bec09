package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/ruleeval/internal/catalog"
	"github.com/dshills/ruleeval/internal/render"
	"github.com/dshills/ruleeval/internal/runner"
)

const demoSuite = "reference"

func newDemoCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference calls and print one line per result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), g.logLevel)
		},
	}
}

func runDemo(ctx context.Context, w io.Writer, logLevel string) error {
	s, err := catalog.LoadBuiltin(demoSuite)
	if err != nil {
		return exitError(exitInput, "failed to load demo suite: %v", err)
	}
	rep, err := runner.Run(ctx, s, runner.Options{
		Tool:    "ruleeval",
		Version: version,
		Builtin: true,
		Logger:  newLogger(logLevel),
	})
	if err != nil {
		return exitError(exitGeneric, "evaluation failed: %v", err)
	}

	fmt.Fprintf(w, "Running rule evaluation demo (%s suite)\n", s.Name)
	fmt.Fprint(w, render.Text(rep))
	return nil
}
