// Package model defines the data structures shared by the fixture generator
// and the error injector.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Range is a half-open interval [Start, End) of byte offsets.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Len returns the number of offsets covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}
