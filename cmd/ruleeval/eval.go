package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/ruleeval/internal/catalog"
	"github.com/dshills/ruleeval/internal/metrics"
	"github.com/dshills/ruleeval/internal/redact"
	"github.com/dshills/ruleeval/internal/render"
	"github.com/dshills/ruleeval/internal/report"
	"github.com/dshills/ruleeval/internal/runner"
	"github.com/dshills/ruleeval/internal/scenario"
	"github.com/dshills/ruleeval/internal/schema"
)

type evalFlags struct {
	builtin       string
	format        string
	out           string
	parallel      int
	failOn        string
	redactEnabled bool
	metricsOut    string
	maxResults    int
	sortResults   bool
	logLevel      string

	stdout io.Writer
}

func newEvalCmd(g *globalFlags) *cobra.Command {
	f := &evalFlags{}

	cmd := &cobra.Command{
		Use:   "eval [suite-file]",
		Short: "Evaluate a suite file or a built-in suite and report the results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.logLevel = g.logLevel
			f.stdout = cmd.OutOrStdout()
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEval(cmd.Context(), path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.builtin, "builtin", "", "Name of a built-in suite (see 'ruleeval suites')")
	flags.StringVar(&f.format, "format", "text", "Output format: text, json, yaml, or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.IntVar(&f.parallel, "parallel", 1, "Number of cases evaluated concurrently")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit 2 on: mismatch or deny")
	flags.BoolVar(&f.redactEnabled, "redact", true, "Mask secrets in lexical text samples")
	flags.StringVar(&f.metricsOut, "metrics-out", "", "Write Prometheus metrics to this file")
	flags.IntVar(&f.maxResults, "max-results", report.DefaultMaxResults, "Maximum number of results in the output (0 for no limit)")
	flags.BoolVar(&f.sortResults, "sort", false, "List failures first")

	return cmd
}

func runEval(ctx context.Context, suitePath string, f *evalFlags) error {
	logger := newLogger(f.logLevel)

	if f.failOn != "" && !validFailOn(f.failOn) {
		return exitError(exitInput, "unknown --fail-on value: %s", f.failOn)
	}

	// 1. Load suite
	var (
		s   *scenario.Suite
		err error
	)
	switch {
	case suitePath != "" && f.builtin != "":
		return exitError(exitInput, "pass either a suite file or --builtin, not both")
	case f.builtin != "":
		logger.Info("loading built-in suite", "name", f.builtin)
		s, err = catalog.LoadBuiltin(f.builtin)
	case suitePath != "":
		logger.Info("loading suite", "path", suitePath)
		s, err = scenario.Load(suitePath)
	default:
		return exitError(exitInput, "a suite file or --builtin is required")
	}
	if err != nil {
		return exitError(exitInput, "failed to load suite: %v", err)
	}
	scenario.InferCaseIDs(s)

	// 2. Validate
	if errs := schema.Validate(s); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Suite validation errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(exitValidation, "suite %s failed validation (%d errors)", s.Name, len(errs))
	}

	// 3. Evaluate
	var m *metrics.Metrics
	if f.metricsOut != "" {
		m = metrics.New()
	}
	rep, err := runner.Run(ctx, s, runner.Options{
		Tool:     "ruleeval",
		Version:  version,
		Builtin:  f.builtin != "",
		Parallel: f.parallel,
		Metrics:  m,
		Logger:   logger,
	})
	if err != nil {
		return exitError(exitGeneric, "evaluation failed: %v", err)
	}

	// 4. Post-process
	if f.redactEnabled {
		if n := redact.Report(rep); n > 0 {
			logger.Info("redacted text samples", "count", n)
		}
	}
	if f.sortResults {
		report.SortResults(rep.Results)
	}
	report.Truncate(rep, f.maxResults)

	// 5. Output
	output, err := formatReport(rep, f.format)
	if err != nil {
		return err
	}
	if f.out != "" {
		logger.Info("writing output", "path", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(outWriter(f.stdout), output)
	}

	if m != nil {
		logger.Info("writing metrics", "path", f.metricsOut)
		if err := m.WriteTextfile(f.metricsOut); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	// 6. Exit code based on --fail-on
	if f.failOn != "" && failOnMet(rep.Summary, f.failOn) {
		return exitError(exitFailOn, "suite %s meets fail condition %s", s.Name, f.failOn)
	}
	return nil
}

func formatReport(rep *report.Report, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return render.Text(rep), nil
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return "", fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data), nil
	case "md":
		return render.Markdown(rep), nil
	default:
		return "", exitError(exitInput, "unknown format: %s", format)
	}
}

func validFailOn(v string) bool {
	switch strings.ToLower(v) {
	case "mismatch", "deny":
		return true
	}
	return false
}

func failOnMet(s report.Summary, failOn string) bool {
	switch strings.ToLower(failOn) {
	case "mismatch":
		return s.Failed > 0
	case "deny":
		return s.Denied > 0
	}
	return false
}
