package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

func newTestUI(styled bool) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, styled), &buf
}

func TestSimpleUI_DisplayGenerated(t *testing.T) {
	ui, buf := newTestUI(false)

	ui.DisplayGenerated(context.Background(), "original.bin", 1020)

	assert.Contains(t, buf.String(), "Generated random binary file: original.bin")
	assert.Contains(t, buf.String(), "1020 B")
}

func TestSimpleUI_DisplayInjection(t *testing.T) {
	tests := []struct {
		name         string
		report       m.FixtureReport
		wantContains []string
		wantMissing  []string
	}{
		{
			name: "random only",
			report: m.FixtureReport{
				Corrupted: "corrupted.bin",
				Size:      1020,
				Bursts:    []m.BurstEvent{},
				Positions: make([]int, 60),
				Touched:   58,
				Changed:   57,
			},
			wantContains: []string{"corrupted.bin", "bursts 0, random 60, touched 58, changed 57 of 1020 bytes"},
			wantMissing:  []string{"POSITION"},
		},
		{
			name: "with bursts",
			report: m.FixtureReport{
				Corrupted: "corrupted.bin",
				Size:      500,
				Bursts:    []m.BurstEvent{{Position: 12, Length: 48}, {Position: 470, Length: 30}},
				Touched:   78,
				Changed:   77,
			},
			wantContains: []string{"POSITION", "LENGTH", "470", "48", "bursts 2, random 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestUI(false)

			ui.DisplayInjection(context.Background(), tt.report)

			out := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}

			for _, missing := range tt.wantMissing {
				assert.NotContains(t, out, missing)
			}
		})
	}
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		ui, buf := newTestUI(false)

		ui.DisplayDiff(context.Background(), "a.bin", "b.bin", 10, nil)

		assert.Contains(t, buf.String(), "files are identical")
	})

	t.Run("ranges", func(t *testing.T) {
		ui, buf := newTestUI(false)

		ui.DisplayDiff(context.Background(), "a.bin", "b.bin", 500, []m.Range{{Start: 3, End: 9}, {Start: 40, End: 41}})

		out := buf.String()
		assert.Contains(t, strings.ToUpper(out), "RANGES 2")
		assert.Contains(t, out, "7/500")
	})
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	ui, buf := newTestUI(false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayGenerated(ctx, "x.bin", 1)
	ui.DisplayInjection(ctx, m.FixtureReport{})
	ui.DisplayDiff(ctx, "a", "b", 0, nil)

	assert.Empty(t, buf.String())
}

func TestSimpleUI_UnstyledHasNoEscapes(t *testing.T) {
	ui, buf := newTestUI(false)

	ui.DisplayGenerated(context.Background(), "x.bin", 1)

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestIsTTY_Nil(t *testing.T) {
	assert.False(t, IsTTY(nil))
}
