package lcg

import (
	"errors"
	"fmt"
	"math/bits"
)

// Default parameters (Numerical Recipes).
const (
	DefaultMultiplier int64 = 1664525
	DefaultIncrement  int64 = 1013904223
	DefaultModulus    int64 = 1 << 32
)

// ErrInvalidParameter is returned when a generator is constructed with a modulus <= 0.
var ErrInvalidParameter = errors.New("lcg: invalid parameter")

// Generator is a linear congruential generator x' = (a*x + c) mod m.
//
// A Generator is not safe for concurrent use. Wrap it with NewLocked when it
// has to be shared.
type Generator struct {
	a, c, m int64

	// residues of a and c in [0, m)
	ra, rc uint64
	um     uint64
	x      uint64
}

// New create a new Generator. m must be positive; a, c and seed may have any sign
// and are reduced to their residues in [0, m).
func New(a, c, m, seed int64) (*Generator, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive, got %d", ErrInvalidParameter, m)
	}
	g := &Generator{
		a:  a,
		c:  c,
		m:  m,
		ra: residue(a, m),
		rc: residue(c, m),
		um: uint64(m),
	}
	g.x = residue(seed, m)
	return g, nil
}

// NewDefault create a new Generator with the default parameters.
func NewDefault(seed int64) *Generator {
	g, _ := New(DefaultMultiplier, DefaultIncrement, DefaultModulus, seed)
	return g
}

// A returns the multiplier.
func (g *Generator) A() int64 { return g.a }

// C returns the increment.
func (g *Generator) C() int64 { return g.c }

// M returns the modulus.
func (g *Generator) M() int64 { return g.m }

// State returns the value the next Advance will return.
func (g *Generator) State() int64 { return int64(g.x) }

// Seed resets the state.
func (g *Generator) Seed(seed int64) {
	g.x = residue(seed, g.m)
}

// Advance returns the current state and then steps the recurrence.
func (g *Generator) Advance() int64 {
	v := g.x
	hi, lo := bits.Mul64(g.ra, g.x)
	var carry uint64
	lo, carry = bits.Add64(lo, g.rc, 0)
	// ra, x, rc < m, so a*x+c < m*m and hi < m.
	g.x = bits.Rem64(hi+carry, lo, g.um)
	return int64(v)
}

// Next returns a single value.
func (g *Generator) Next() int64 {
	return g.Advance()
}

// NextN returns count values in generation order. A count <= 0 returns an
// empty slice and leaves the state untouched.
func (g *Generator) NextN(count int) []int64 {
	if count <= 0 {
		return []int64{}
	}
	out := make([]int64, count)
	g.Fill(out)
	return out
}

// Fill writes len(dst) values into dst.
func (g *Generator) Fill(dst []int64) {
	for i := range dst {
		dst[i] = g.Advance()
	}
}

func (g *Generator) String() string {
	return fmt.Sprintf("lcg(a=%d, c=%d, m=%d, x=%d)", g.a, g.c, g.m, g.x)
}

// residue is the mathematical modulus of v by m (m > 0).
func residue(v, m int64) uint64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}
