package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"bitrot.dev/pkg/bitrot/internal/adapter"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

// Generator writes baseline fixtures filled with uniform random bytes.
type Generator interface {
	Generate(ctx context.Context, path m.Path, size int, source adapter.ByteSource) error
}

type generator struct {
	adapter.FileAdapter
}

// NewGenerator creates a Generator that writes through files.
func NewGenerator(files adapter.FileAdapter) Generator {
	return &generator{FileAdapter: files}
}

// Generate creates or overwrites path with exactly size bytes read from
// source. size must be positive.
func (g *generator) Generate(ctx context.Context, path m.Path, size int, source adapter.ByteSource) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if source == nil {
		source = adapter.NewEntropySource()
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(source, data); err != nil {
		return fmt.Errorf("read random bytes: %w", err)
	}

	if err := g.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDestAccess, path, err)
	}

	slog.Info("generated random binary file", "path", path, "size", humanize.IBytes(uint64(size)))

	return nil
}
