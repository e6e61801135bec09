package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dshills/ruleeval/internal/logging"
)

// Exit codes.
const (
	exitGeneric    = 1
	exitFailOn     = 2
	exitInput      = 3
	exitValidation = 5
)

type globalFlags struct {
	logLevel string
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func newLogger(level string) *slog.Logger {
	return logging.NewCLILogger(os.Stderr, level, colorEnabled(os.Stderr))
}

// colorEnabled reports whether f is a terminal and NO_COLOR is unset.
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func outWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
