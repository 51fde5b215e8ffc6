package model

import (
	"fmt"
	"math"
)

// BurstSpec describes how many burst errors to inject and the normal
// distribution their lengths are drawn from.
type BurstSpec struct {
	Count      int     `yaml:"count"`
	MeanLength float64 `yaml:"mean_length"`
	StdLength  float64 `yaml:"std_length"`
}

// Validate rejects negative counts, negative deviations and non-finite values.
func (b BurstSpec) Validate() error {
	if b.Count < 0 {
		return fmt.Errorf("burst count must be >= 0, got %d", b.Count)
	}

	if math.IsNaN(b.MeanLength) || math.IsInf(b.MeanLength, 0) {
		return fmt.Errorf("burst mean length must be finite, got %v", b.MeanLength)
	}

	if math.IsNaN(b.StdLength) || math.IsInf(b.StdLength, 0) || b.StdLength < 0 {
		return fmt.Errorf("burst std length must be finite and >= 0, got %v", b.StdLength)
	}

	return nil
}

// RandomSpec is the number of independent single-byte corruptions.
type RandomSpec struct {
	Count int `yaml:"count"`
}

// Validate rejects negative counts.
func (r RandomSpec) Validate() error {
	if r.Count < 0 {
		return fmt.Errorf("random error count must be >= 0, got %d", r.Count)
	}

	return nil
}

// BurstEvent is one sampled burst. Length is already clamped so that
// 1 <= Length <= size-Position.
type BurstEvent struct {
	Position int `yaml:"position"`
	Length   int `yaml:"length"`
}

// End returns the first offset past the burst.
func (e BurstEvent) End() int {
	return e.Position + e.Length
}

// Injection records what a single injection did to a buffer.
type Injection struct {
	Size   int
	Bursts []BurstEvent
	Random []int
	// Mask holds, per offset, the XOR of every mask value applied there.
	// original[i] == corrupted[i] ^ Mask[i].
	Mask []byte

	touched []bool
}

// NewInjection allocates an empty record for a buffer of the given size.
func NewInjection(size int) Injection {
	return Injection{
		Size:    size,
		Bursts:  []BurstEvent{},
		Random:  []int{},
		Mask:    make([]byte, size),
		touched: make([]bool, size),
	}
}

// Record notes that mask was applied at offset.
func (in *Injection) Record(offset int, mask byte) {
	in.Mask[offset] ^= mask
	in.touched[offset] = true
}

// Touched counts offsets that were sampled at least once, including offsets
// whose mask was zero.
func (in Injection) Touched() int {
	n := 0

	for _, t := range in.touched {
		if t {
			n++
		}
	}

	return n
}

// Changed counts offsets whose accumulated mask is nonzero.
func (in Injection) Changed() int {
	n := 0

	for _, b := range in.Mask {
		if b != 0 {
			n++
		}
	}

	return n
}
