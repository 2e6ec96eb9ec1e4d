package lcg

import (
	"math/big"
	"math/bits"
	"slices"
)

// HullDobell reports whether (a, c, m) gives a full period of m:
// c and m coprime, a-1 divisible by every prime factor of m, and by 4 when 4 divides m.
func HullDobell(a, c, m int64) bool {
	if m <= 0 {
		return false
	}
	if m == 1 {
		return true
	}
	ra, rc := residue(a, m), residue(c, m)
	if gcd(rc, uint64(m)) != 1 {
		return false
	}
	// a-1 taken mod m
	am1 := (ra + uint64(m) - 1) % uint64(m)
	for _, p := range primeFactors(uint64(m)) {
		if am1%p != 0 {
			return false
		}
	}
	if m%4 == 0 && am1%4 != 0 {
		return false
	}
	return true
}

// FullPeriod reports whether the generator visits all m states before repeating.
func (g *Generator) FullPeriod() bool {
	return HullDobell(g.a, g.c, g.m)
}

// CycleLength steps a copy of g until a state repeats and returns the length
// of the cycle it falls into, using Brent's algorithm. It returns 0 after
// limit steps; about 3 steps per cycle element are needed.
func CycleLength(g *Generator, limit int64) int64 {
	h := *g
	power, lam := int64(1), int64(1)
	tortoise := h.Advance()
	hare := h.Advance()
	var steps int64 = 1
	for tortoise != hare {
		if steps >= limit {
			return 0
		}
		if power == lam {
			tortoise = hare
			power *= 2
			lam = 0
		}
		hare = h.Advance()
		lam++
		steps++
	}
	return lam
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// primeFactors returns the distinct prime factors of n in ascending order.
// Small factors are divided out directly; whatever is left is split with
// Pollard's rho, so a prime near 1<<63 costs one primality test.
func primeFactors(n uint64) []uint64 {
	var fs []uint64
	for p := uint64(2); p < trialLimit && p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		fs = append(fs, p)
		for n%p == 0 {
			n /= p
		}
	}
	fs = splitFactor(fs, n)
	slices.Sort(fs)
	return slices.Compact(fs)
}

const trialLimit = 1 << 12

func splitFactor(fs []uint64, n uint64) []uint64 {
	if n == 1 {
		return fs
	}
	// exact for n < 1<<64 (Baillie-PSW)
	if new(big.Int).SetUint64(n).ProbablyPrime(0) {
		return append(fs, n)
	}
	d := rho(n)
	return splitFactor(splitFactor(fs, d), n/d)
}

// rho finds a nontrivial factor of the odd composite n (n < 1<<63).
func rho(n uint64) uint64 {
	for c := uint64(1); ; c++ {
		f := func(v uint64) uint64 {
			hi, lo := bits.Mul64(v, v)
			return (bits.Rem64(hi, lo, n) + c) % n
		}
		x, y, d := uint64(2), uint64(2), uint64(1)
		for d == 1 {
			x = f(x)
			y = f(f(y))
			if x > y {
				d = gcd(x-y, n)
			} else {
				d = gcd(y-x, n)
			}
		}
		if d != n {
			return d
		}
	}
}
