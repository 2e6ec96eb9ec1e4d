package period

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func TestRate(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	c := newPeriodCounter(time.Second, clk.now)

	c.Add(500)
	if c.IncreaceRatePerSec() != 0 {
		t.Fatalf("rate updated before a period elapsed: %d", c.IncreaceRatePerSec())
	}

	clk.t = clk.t.Add(2 * time.Second)
	c.Add(1500)
	if got := c.IncreaceRatePerSec(); got != 1000 {
		t.Fatalf("rate = %d, want 1000", got)
	}
	if c.Value() != 2000 {
		t.Fatalf("value = %d", c.Value())
	}

	clk.t = clk.t.Add(500 * time.Millisecond)
	c.Add(10)
	if got := c.IncreaceRatePerSec(); got != 1000 {
		t.Fatalf("rate changed within period: %d", got)
	}
}

func TestConcurrentAdd(t *testing.T) {
	c := NewPeriodCounter(time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if c.Value() != 4000 {
		t.Fatalf("value = %d", c.Value())
	}
}
