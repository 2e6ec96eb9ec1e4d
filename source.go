package lcg

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Generator to rand.Source64. Each Uint64 consumes two
// values and keeps the low 32 bits of each, so the bits are only evenly
// spread when m is a power of two >= 1<<32.
type Source struct {
	g *Generator
}

// NewSource create a rand.Source backed by a default-parameter Generator.
func NewSource(seed int64) rand.Source {
	return &Source{g: NewDefault(seed)}
}

// SourceOf adapts g. The Source shares g's state.
func SourceOf(g *Generator) *Source {
	return &Source{g: g}
}

// Seed implements rand.Source.
func (s *Source) Seed(seed int64) {
	s.g.Seed(seed)
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.g.Advance()) & 0xffffffff
	lo := uint64(s.g.Advance()) & 0xffffffff
	return hi<<32 | lo
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
