package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

var faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// SimpleUI implements UI by printing to the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayGenerated reports a freshly generated baseline file.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, path m.Path, size int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s (%s)\n", s.heading("Generated random binary file:"), path, humanize.IBytes(uint64(size)))
}

// DisplayInjection prints the burst events and counters of one injection.
func (s *SimpleUI) DisplayInjection(ctx context.Context, report m.FixtureReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s\n", s.heading("Added errors to binary file:"), report.Corrupted)

	if len(report.Bursts) > 0 {
		s.printf("\n%s", renderBurstTable(report.Bursts))
	}

	s.printf("%s\n", s.faint(fmt.Sprintf(
		"bursts %d, random %d, touched %d, changed %d of %d bytes",
		len(report.Bursts), len(report.Positions), report.Touched, report.Changed, report.Size,
	)))
}

// DisplayDiff prints the differing ranges between two files.
func (s *SimpleUI) DisplayDiff(ctx context.Context, a, b m.Path, size int, ranges []m.Range) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s %s\n", s.heading("Comparing"), a, b)

	if len(ranges) == 0 {
		s.printf("files are identical (%s)\n", humanize.IBytes(uint64(size)))
		return
	}

	s.printf("\n%s", renderRangeTable(ranges, size))
}

func renderBurstTable(bursts []m.BurstEvent) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Burst", "Position", "Length"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for i, burst := range bursts {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", burst.Position),
			fmt.Sprintf("%d", burst.Length),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func renderRangeTable(ranges []m.Range, size int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Start", "End", "Length"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	differing := 0

	for _, r := range ranges {
		table.Append([]string{
			fmt.Sprintf("%d", r.Start),
			fmt.Sprintf("%d", r.End),
			fmt.Sprintf("%d", r.Len()),
		})

		differing += r.Len()
	}

	table.SetFooter([]string{
		fmt.Sprintf("Ranges %d", len(ranges)),
		"",
		fmt.Sprintf("%d/%d", differing, size),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) heading(text string) string {
	if !s.styled {
		return text
	}

	return headingStyle.Render(text)
}

func (s *SimpleUI) faint(text string) string {
	if !s.styled {
		return text
	}

	return faintStyle.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
