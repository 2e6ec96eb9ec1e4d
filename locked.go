package lcg

import "sync"

// Locked is a Generator guarded by a mutex.
type Locked struct {
	g  *Generator
	mu sync.Mutex
}

// NewLocked wraps g. Callers must stop using g directly.
func NewLocked(g *Generator) *Locked {
	return &Locked{g: g}
}

func (l *Locked) Next() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Next()
}

func (l *Locked) NextN(count int) []int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.NextN(count)
}

func (l *Locked) Fill(dst []int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Fill(dst)
}

// Snapshot returns a copy of the wrapped generator.
func (l *Locked) Snapshot() Generator {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.g
}
