// Package runner evaluates a suite and assembles the report.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/ruleeval/internal/metrics"
	"github.com/dshills/ruleeval/internal/report"
	"github.com/dshills/ruleeval/internal/rules"
	"github.com/dshills/ruleeval/internal/scenario"
)

// Options controls a suite run.
type Options struct {
	Tool    string
	Version string
	Builtin bool

	// Parallel bounds the number of cases evaluated at once. Values below 1
	// evaluate serially.
	Parallel int

	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Run evaluates every case in s. Results keep suite order; the caller may
// reorder them with report.SortResults.
func Run(ctx context.Context, s *scenario.Suite, opts Options) (*report.Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	start := time.Now()
	results := make([]report.Result, len(s.Cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range s.Cases {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(&s.Cases[i])
			if err != nil {
				return err
			}
			results[i] = res
			record(opts.Metrics, res)
			logger.Debug("case evaluated", "id", res.ID, "kind", res.Kind, "status", res.Status)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("runner.Run: %w", err)
	}

	elapsed := time.Since(start)
	opts.Metrics.ObserveRunLatency(elapsed)

	rep := &report.Report{
		Tool:    opts.Tool,
		Version: opts.Version,
		RunID:   uuid.NewString(),
		Input: report.Input{
			Suite:     s.Name,
			SuiteFile: s.FilePath,
			SuiteHash: s.Hash,
			Builtin:   opts.Builtin,
		},
		Results: results,
		Meta:    report.Meta{Parallel: parallel},
	}
	rep.Summary = report.ComputeSummary(results)

	logger.Info("suite evaluated",
		"suite", s.Name, "cases", rep.Summary.Total,
		"failed", rep.Summary.Failed, "elapsed", elapsed)
	return rep, nil
}

func record(m *metrics.Metrics, res report.Result) {
	m.IncrementOutcome(string(res.Kind), string(res.Status))
	if d, ok := res.Detail.(rules.AccessDecision); ok {
		m.IncrementAccess(d.Allowed, string(d.Reason))
	}
}
