// Package domain contains fixture generation, error injection and the
// workflow that ties them to the filesystem and the UI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"bitrot.dev/pkg/bitrot/internal/adapter"
	"bitrot.dev/pkg/bitrot/internal/controller"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

// GenerateArgs contains the arguments for generating a baseline file.
type GenerateArgs struct {
	Path m.Path
	Size int
	Seed *uint64
}

// CorruptArgs contains the arguments for corrupting an existing file.
type CorruptArgs struct {
	Source m.Path
	Dest   m.Path
	Burst  m.BurstSpec
	Random m.RandomSpec
	Seed   *uint64
	// Mask and Report are optional output paths.
	Mask   m.Path
	Report m.Path
}

// FixtureArgs contains the arguments for producing original/corrupted pairs.
type FixtureArgs struct {
	Original  m.Path
	Corrupted m.Path
	Size      int
	Burst     m.BurstSpec
	Random    m.RandomSpec
	Seed      *uint64
	Mask      m.Path
	Report    m.Path
	// Sets > 1 produces numbered pairs; Parallel bounds the workers (0 = unbounded).
	Sets     int
	Parallel int
}

// DiffArgs contains the arguments for comparing two files.
type DiffArgs struct {
	A m.Path
	B m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	Corrupt(ctx context.Context, args CorruptArgs) error
	Fixture(ctx context.Context, args FixtureArgs) error
	Diff(ctx context.Context, args DiffArgs) ([]m.Range, error)
}

type workflow struct {
	adapter.FileAdapter
	adapter.ReportStore
	controller.UI
	Generator
	Injector
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	files adapter.FileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	generator Generator,
	injector Injector,
) Workflow {
	return &workflow{
		FileAdapter: files,
		ReportStore: reportStore,
		UI:          ui,
		Generator:   generator,
		Injector:    injector,
	}
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if err := w.Generator.Generate(ctx, args.Path, args.Size, byteSourceFor(args.Seed, 0)); err != nil {
		slog.Error("failed to generate file", "path", args.Path, "error", err)
		return fmt.Errorf("generate %s: %w", args.Path, err)
	}

	w.DisplayGenerated(ctx, args.Path, args.Size)

	return nil
}

func (w *workflow) Corrupt(ctx context.Context, args CorruptArgs) error {
	if err := ValidateSpecs(args.Burst, args.Random); err != nil {
		return err
	}

	if err := distinctPaths(w.FileAdapter, args.Source, args.Dest, args.Mask, args.Report); err != nil {
		return err
	}

	report, err := w.corrupt(ctx, args, samplerFor(args.Seed, 0))
	if err != nil {
		return err
	}

	if args.Report != "" {
		if err := w.SaveReports(args.Report, []m.FixtureReport{report}); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	w.DisplayInjection(ctx, report)

	return nil
}

func (w *workflow) Fixture(ctx context.Context, args FixtureArgs) error {
	if err := validateFixtureArgs(args); err != nil {
		return err
	}

	if err := distinctPaths(w.FileAdapter, args.Original, args.Corrupted, args.Mask, args.Report); err != nil {
		return err
	}

	sets := max(args.Sets, 1)
	reports := make([]m.FixtureReport, sets)

	var group errgroup.Group
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i := range sets {
		group.Go(func() error {
			report, err := w.fixture(ctx, args, i, sets)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("fixture generation failed", "error", err)
		return err
	}

	if args.Report != "" {
		if err := w.SaveReports(args.Report, reports); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	for _, report := range reports {
		w.DisplayGenerated(ctx, report.Original, report.Size)
		w.DisplayInjection(ctx, report)
	}

	return nil
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) ([]m.Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, err := w.ReadFile(args.A)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceAccess, args.A, err)
	}

	b, err := w.ReadFile(args.B)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceAccess, args.B, err)
	}

	ranges, err := Compare(a, b)
	if err != nil {
		return nil, fmt.Errorf("compare %s %s: %w", args.A, args.B, err)
	}

	w.DisplayDiff(ctx, args.A, args.B, len(a), ranges)

	return ranges, nil
}

// fixture produces the index-th pair. Each pair owns its sampler and buffer.
func (w *workflow) fixture(ctx context.Context, args FixtureArgs, index, sets int) (m.FixtureReport, error) {
	original := numbered(args.Original, index, sets)
	sampler := samplerFor(args.Seed, index)

	var source adapter.ByteSource = sampler
	if args.Seed == nil {
		source = adapter.NewEntropySource()
	}

	if err := w.Generator.Generate(ctx, original, args.Size, source); err != nil {
		return m.FixtureReport{}, fmt.Errorf("generate %s: %w", original, err)
	}

	var seed *uint64
	if args.Seed != nil {
		s := *args.Seed + uint64(index)
		seed = &s
	}

	return w.corrupt(ctx, CorruptArgs{
		Source: original,
		Dest:   numbered(args.Corrupted, index, sets),
		Burst:  args.Burst,
		Random: args.Random,
		Seed:   seed,
		Mask:   numbered(args.Mask, index, sets),
	}, sampler)
}

func (w *workflow) corrupt(ctx context.Context, args CorruptArgs, sampler Sampler) (m.FixtureReport, error) {
	injection, err := w.Inject(ctx, InjectArgs{
		Source:  args.Source,
		Dest:    args.Dest,
		Burst:   args.Burst,
		Random:  args.Random,
		Sampler: sampler,
	})
	if err != nil {
		slog.Error("failed to inject errors", "source", args.Source, "dest", args.Dest, "error", err)
		return m.FixtureReport{}, fmt.Errorf("inject %s: %w", args.Dest, err)
	}

	report := m.NewFixtureReport(args.Source, args.Dest, args.Seed, args.Burst, args.Random, injection)

	if args.Mask != "" {
		if err := w.WriteFile(args.Mask, injection.Mask); err != nil {
			return m.FixtureReport{}, fmt.Errorf("%w: mask %s: %w", ErrDestAccess, args.Mask, err)
		}

		report.Mask = args.Mask
	}

	if report.OriginalSHA256, err = w.HashFile(args.Source); err != nil {
		return m.FixtureReport{}, fmt.Errorf("%w: hash %s: %w", ErrSourceAccess, args.Source, err)
	}

	if report.CorruptedSHA256, err = w.HashFile(args.Dest); err != nil {
		return m.FixtureReport{}, fmt.Errorf("%w: hash %s: %w", ErrDestAccess, args.Dest, err)
	}

	return report, nil
}

func validateFixtureArgs(args FixtureArgs) error {
	if args.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, args.Size)
	}

	if err := ValidateSpecs(args.Burst, args.Random); err != nil {
		return err
	}

	if args.Sets < 0 {
		return fmt.Errorf("sets must be >= 0, got %d", args.Sets)
	}

	if args.Parallel < 0 {
		return fmt.Errorf("parallel must be >= 0, got %d", args.Parallel)
	}

	if args.Original == "" || args.Corrupted == "" {
		return errors.New("original and corrupted paths are required")
	}

	return nil
}

// distinctPaths rejects any two non-empty paths naming the same file, so
// no output can overwrite the source or another output.
func distinctPaths(files adapter.FileAdapter, paths ...m.Path) error {
	for i, a := range paths {
		if a == "" {
			continue
		}

		for _, b := range paths[i+1:] {
			if b == "" {
				continue
			}

			same, err := samePath(files, a, b)
			if err != nil {
				return err
			}

			if same {
				return fmt.Errorf("%w: %s and %s", ErrPathConflict, a, b)
			}
		}
	}

	return nil
}

// byteSourceFor returns a seeded stream when a seed is set and the OS
// entropy source otherwise.
func byteSourceFor(seed *uint64, offset int) adapter.ByteSource {
	if seed == nil {
		return adapter.NewEntropySource()
	}

	return samplerFor(seed, offset)
}

// numbered inserts a zero-padded index before the extension when more than
// one set is produced: original.bin -> original-003.bin.
func numbered(path m.Path, index, sets int) m.Path {
	if path == "" || sets <= 1 {
		return path
	}

	p := string(path)
	ext := filepath.Ext(p)

	return m.Path(fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(p, ext), index, ext))
}
