package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "ruleeval",
		Short:         "Evaluate engagement, risk, access, lexical and transform rules",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, or error")

	root.AddCommand(newEvalCmd(g))
	root.AddCommand(newDemoCmd(g))
	root.AddCommand(newSuitesCmd())
	root.AddCommand(newCalcCmds()...)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
