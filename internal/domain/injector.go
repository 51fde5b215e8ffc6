package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bitrot.dev/pkg/bitrot/internal/adapter"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

// InjectArgs holds the inputs of one injection.
type InjectArgs struct {
	Source  m.Path
	Dest    m.Path
	Burst   m.BurstSpec
	Random  m.RandomSpec
	Sampler Sampler
}

// Injector derives a corrupted copy of a file.
type Injector interface {
	Inject(ctx context.Context, args InjectArgs) (m.Injection, error)
}

type injector struct {
	adapter.FileAdapter
}

// NewInjector creates an Injector backed by files.
func NewInjector(files adapter.FileAdapter) Injector {
	return &injector{FileAdapter: files}
}

// ValidateSpecs rejects parameter errors before any I/O happens.
func ValidateSpecs(burst m.BurstSpec, random m.RandomSpec) error {
	if err := burst.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	if err := random.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return nil
}

// Inject copies Source to Dest with errors applied. The destination always
// keeps the source's length and the source is never written.
func (inj *injector) Inject(ctx context.Context, args InjectArgs) (m.Injection, error) {
	if err := ValidateSpecs(args.Burst, args.Random); err != nil {
		return m.Injection{}, err
	}

	if err := ctx.Err(); err != nil {
		return m.Injection{}, err
	}

	sampler := args.Sampler
	if sampler == nil {
		sampler = NewEntropySampler()
	}

	info, err := inj.FileInfo(args.Source)
	if err != nil {
		return m.Injection{}, fmt.Errorf("%w: %w", ErrSourceAccess, err)
	}

	if info.IsDir() {
		return m.Injection{}, fmt.Errorf("%w: %s is a directory", ErrSourceAccess, args.Source)
	}

	same, err := samePath(inj.FileAdapter, args.Source, args.Dest)
	if err != nil {
		return m.Injection{}, err
	}

	if same {
		return m.Injection{}, fmt.Errorf("%w: source and destination are both %s", ErrPathConflict, args.Source)
	}

	// The buffer read from the source is the byte-exact copy the errors are
	// applied to; dest is only written once, with the corrupted bytes.
	data, err := inj.ReadFile(args.Source)
	if err != nil {
		return m.Injection{}, fmt.Errorf("%w: read %s: %w", ErrSourceAccess, args.Source, err)
	}

	injection := Apply(data, args.Burst, args.Random, sampler)

	if err := inj.WriteFile(args.Dest, data); err != nil {
		return m.Injection{}, fmt.Errorf("%w: write %s: %w", ErrDestAccess, args.Dest, err)
	}

	slog.Info("added errors to binary file",
		"path", args.Dest,
		"bursts", len(injection.Bursts),
		"random", len(injection.Random),
		"changed", injection.Changed(),
	)

	return injection, nil
}

// Apply corrupts buf in place: first the burst phase, then the random phase.
// An empty buffer receives no mutations and consumes no randomness.
func Apply(buf []byte, burst m.BurstSpec, random m.RandomSpec, s Sampler) m.Injection {
	size := len(buf)
	injection := m.NewInjection(size)

	if size == 0 {
		return injection
	}

	for range burst.Count {
		raw := sampleRawLength(s, burst)
		position := s.IntN(size)
		event := m.BurstEvent{
			Position: position,
			Length:   clampBurstLength(raw, size-position),
		}

		for i := event.Position; i < event.End(); i++ {
			mask := sampleMask(s)
			buf[i] ^= mask
			injection.Record(i, mask)
		}

		slog.Debug("burst error", "position", event.Position, "length", event.Length)

		injection.Bursts = append(injection.Bursts, event)
	}

	for range random.Count {
		position := s.IntN(size)
		mask := sampleMask(s)
		buf[position] ^= mask
		injection.Record(position, mask)
		injection.Random = append(injection.Random, position)
	}

	return injection
}

// samePath reports whether a and b name the same file. Paths that do not
// exist yet are compared by absolute path.
func samePath(files adapter.FileAdapter, a, b m.Path) (bool, error) {
	infoA, errA := files.FileInfo(a)
	infoB, errB := files.FileInfo(b)

	if errA == nil && errB == nil {
		return os.SameFile(infoA, infoB), nil
	}

	absA, err := filepath.Abs(string(a))
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", a, err)
	}

	absB, err := filepath.Abs(string(b))
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", b, err)
	}

	return absA == absB, nil
}
