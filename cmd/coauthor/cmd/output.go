package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/coauthor/internal/github"
)

// usageError is a malformed invocation. err is nil for a wrong argument count.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "expected exactly one GitHub username"
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

// configError is an unreadable config or env file.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

// report writes the diagnostic for err to stderr and returns the exit code.
func report(cmd *cobra.Command, err error, color bool) int {
	w := cmd.ErrOrStderr()
	prefix := errorPrefix(w, color)

	var usageErr *usageError
	var cfgErr *configError
	var apiErr *github.APIError

	switch {
	case errors.As(err, &usageErr):
		if usageErr.err != nil {
			fmt.Fprintf(w, "%s %v\n", prefix, usageErr.err)
		}
		printUsage(cmd)
		return ExitUsage
	case errors.As(err, &cfgErr):
		fmt.Fprintf(w, "%s %v\n", prefix, cfgErr)
		return ExitUsage
	case errors.As(err, &apiErr):
		fmt.Fprintf(w, "%s %v\n", prefix, apiErr)
		if strings.TrimSpace(apiErr.Body) != "" {
			fmt.Fprintln(w, apiErr.Body)
		}
		return ExitError
	default:
		fmt.Fprintf(w, "%s %v\n", prefix, err)
		return ExitError
	}
}

// errorPrefix returns "error:", styled red and bold when color is on.
func errorPrefix(w io.Writer, color bool) string {
	if !color {
		return "error:"
	}
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("#ff5555")).
		Bold(true)
	return style.Render("error:")
}

// newLogger returns a stderr logger: warnings by default, debug when verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "coauthor",
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
