package domain

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

// Sampler is the randomness the generator and injector draw from. It is
// passed in explicitly so tests can script exact draws.
type Sampler interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// NormFloat64 returns a standard normal draw.
	NormFloat64() float64
	// Read fills p with uniform bytes.
	Read(p []byte) (int, error)
}

type chachaSampler struct {
	*rand.Rand
	src *rand.ChaCha8
}

func (s *chachaSampler) Read(p []byte) (int, error) {
	return s.src.Read(p)
}

func newChaChaSampler(key [32]byte) Sampler {
	src := rand.NewChaCha8(key)
	return &chachaSampler{Rand: rand.New(src), src: src}
}

// NewSampler returns a reproducible sampler: equal seeds yield equal streams.
func NewSampler(seed uint64) Sampler {
	var key [32]byte

	binary.LittleEndian.PutUint64(key[:8], seed)

	return newChaChaSampler(key)
}

// NewEntropySampler returns a sampler keyed from the operating system's
// entropy source. Its output is not reproducible.
func NewEntropySampler() Sampler {
	var key [32]byte

	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = cryptorand.Read(key[:])

	return newChaChaSampler(key)
}

// samplerFor picks a seeded sampler when a seed is configured. offset
// separates the streams of numbered fixture sets.
func samplerFor(seed *uint64, offset int) Sampler {
	if seed == nil {
		return NewEntropySampler()
	}

	return NewSampler(*seed + uint64(offset))
}

// sampleRawLength draws a burst length from Normal(mean, std) and truncates
// it toward zero. The result is clamped later, once the position is known.
func sampleRawLength(s Sampler, spec m.BurstSpec) float64 {
	return math.Trunc(spec.MeanLength + spec.StdLength*s.NormFloat64())
}

// clampBurstLength bounds a truncated draw to [1, remaining]. It works in
// float space so huge or NaN draws never reach an int conversion.
func clampBurstLength(raw float64, remaining int) int {
	if !(raw >= 1) {
		return 1
	}

	if raw >= float64(remaining) {
		return remaining
	}

	return int(raw)
}

func sampleMask(s Sampler) byte {
	return byte(s.IntN(256))
}
