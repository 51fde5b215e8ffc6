// Package controller provides output adapters for displaying fixture results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

// UI defines how workflow results are shown to the operator.
type UI interface {
	DisplayGenerated(ctx context.Context, path m.Path, size int)
	DisplayInjection(ctx context.Context, report m.FixtureReport)
	DisplayDiff(ctx context.Context, a, b m.Path, size int, ranges []m.Range)
}

// NewUI returns the UI for cmd. Styling is only enabled on a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
