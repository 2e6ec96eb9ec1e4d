package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/lcg/counter"
)

var _ counter.Counter = &periodCounter{}

type periodCounter struct {
	value              int64
	period             time.Duration
	increaceRatePerSec int64

	lastValue int64
	lastTime  time.Time
	now       func() time.Time
	mut       sync.Mutex
}

// NewPeriodCounter create a counter whose rate is recomputed at most once per period.
func NewPeriodCounter(period time.Duration) counter.Counter {
	return newPeriodCounter(period, time.Now)
}

func newPeriodCounter(period time.Duration, now func() time.Time) *periodCounter {
	return &periodCounter{
		period:   period,
		lastTime: now(),
		now:      now,
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// IncreaceRatePerSec implements Counter.
func (c *periodCounter) IncreaceRatePerSec() int64 {
	return atomic.LoadInt64(&c.increaceRatePerSec)
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.check()
}

func (c *periodCounter) check() {
	c.mut.Lock()
	defer c.mut.Unlock()

	now := c.now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.period || elapsed <= 0 {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.increaceRatePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = now
}
