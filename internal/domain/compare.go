package domain

import (
	"fmt"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

// Compare returns the maximal runs of offsets where a and b differ.
func Compare(a, b []byte) ([]m.Range, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	ranges := []m.Range{}
	start := -1

	for i := range a {
		switch {
		case a[i] != b[i] && start < 0:
			start = i
		case a[i] == b[i] && start >= 0:
			ranges = append(ranges, m.Range{Start: start, End: i})
			start = -1
		}
	}

	if start >= 0 {
		ranges = append(ranges, m.Range{Start: start, End: len(a)})
	}

	return ranges, nil
}

// ApplyMask XORs mask onto buf in place. Applying the mask recorded by an
// injection to the corrupted bytes yields the original bytes.
func ApplyMask(buf, mask []byte) error {
	if len(buf) != len(mask) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(buf), len(mask))
	}

	for i := range buf {
		buf[i] ^= mask[i]
	}

	return nil
}
