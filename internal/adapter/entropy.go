package adapter

import (
	"crypto/rand"
	"io"
)

// ByteSource yields uniformly random bytes.
type ByteSource = io.Reader

// NewEntropySource returns the operating system's random byte source.
func NewEntropySource() ByteSource {
	return rand.Reader
}
