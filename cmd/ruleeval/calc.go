package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/ruleeval/internal/rules"
)

// newCalcCmds returns one command per evaluator for single ad-hoc calls.
func newCalcCmds() []*cobra.Command {
	return []*cobra.Command{
		newScoreCmd(),
		newRiskCmd(),
		newAccessCmd(),
		newWordCmd(),
		newTransformCmd(),
	}
}

func newScoreCmd() *cobra.Command {
	var (
		a       rules.Activity
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute an engagement score (-1 for negative input)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), a.Score(), a.Explain(), explain)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&a.Age, "age", 0, "Age in years")
	flags.IntVar(&a.YearsActive, "years-active", 0, "Years active")
	flags.IntVar(&a.Posts, "posts", 0, "Number of posts")
	flags.BoolVar(&a.Verified, "verified", false, "Account is verified")
	flags.BoolVar(&explain, "explain", false, "Print the score breakdown as JSON")
	return cmd
}

func newRiskCmd() *cobra.Command {
	var (
		p       rules.FinancialProfile
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Classify a financial profile into a risk tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), p.Classify(), p.Explain(), explain)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&p.CreditScore, "credit-score", 0, "Credit score (0..850)")
	flags.IntVar(&p.LatePayments, "late-payments", 0, "Number of late payments")
	flags.Float64Var(&p.DebtRatio, "debt-ratio", 0, "Debt-to-income ratio")
	flags.BoolVar(&p.IsStudent, "student", false, "Applicant is a student")
	flags.BoolVar(&p.HasJob, "has-job", false, "Applicant is employed")
	flags.BoolVar(&explain, "explain", false, "Print the matching rule as JSON")
	return cmd
}

func newAccessCmd() *cobra.Command {
	var (
		r       rules.AccessRequest
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "access",
		Short: "Decide whether an action is allowed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), r.Allowed(), r.Explain(), explain)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&r.Hour24, "hour", 12, "Hour of day (0..23)")
	flags.IntVar(&r.FailedLogins, "failed-logins", 0, "Recent failed logins")
	flags.IntVar(&r.Flags, "flags", 0, "Flag mask: 0x1 require 2FA, 0x2 admin, 0x4 read-only, 0x8 trial")
	flags.BoolVar(&r.EmailVerified, "email-verified", false, "Email address is verified")
	flags.BoolVar(&explain, "explain", false, "Print the decision and deny reason as JSON")
	return cmd
}

func newWordCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "word [text]",
		Short: "Score the character composition of a text sample",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			}
			return printResult(cmd.OutOrStdout(), rules.WordScore(text), rules.Compose(text), explain)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "Print the character class counts as JSON")
	return cmd
}

func newTransformCmd() *cobra.Command {
	var (
		x, y, z int
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply the bounded transform to three integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), rules.BoundedTransform(x, y, z), rules.ExplainTransform(x, y, z), explain)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&x, "x", 0, "First operand")
	flags.IntVar(&y, "y", 0, "Second operand")
	flags.IntVar(&z, "z", 0, "Third operand")
	flags.BoolVar(&explain, "explain", false, "Print the stage breakdown as JSON")
	return cmd
}

func printResult(w io.Writer, value, detail any, explain bool) error {
	if !explain {
		_, err := fmt.Fprintln(w, value)
		return err
	}
	data, err := json.MarshalIndent(map[string]any{"value": value, "detail": detail}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
