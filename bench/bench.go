// Package bench is a timing harness that drives a generator's batch call in a loop.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/tutils/lcg/logger"
)

// Batcher produces count values per call; *lcg.Generator and *lcg.Locked satisfy it.
type Batcher interface {
	NextN(count int) []int64
}

// Result of a run
type Result struct {
	Rounds     int           `json:"rounds"`
	BatchSize  int           `json:"batchSize"`
	Values     int64         `json:"values"`
	Elapsed    time.Duration `json:"elapsed"`
	PerSec     float64       `json:"perSec"`
	NsPerValue float64       `json:"nsPerValue"`
	Checksum   int64         `json:"checksum"`
}

func (r Result) String() string {
	return fmt.Sprintf("%d rounds x %d = %d values in %v (%.0f values/s, %.2f ns/value, checksum %d)",
		r.Rounds, r.BatchSize, r.Values, r.Elapsed, r.PerSec, r.NsPerValue, r.Checksum)
}

// Runner runs a benchmark
type Runner struct {
	gen  Batcher
	opts *Options
}

// New create a new Runner
func New(gen Batcher, opts ...Option) *Runner {
	return &Runner{
		gen:  gen,
		opts: newOptions(opts...),
	}
}

// Run calls NextN until the round limit or duration is reached, or ctx is done.
// Cancellation is not an error; the partial result is returned.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.gen == nil {
		return Result{}, fmt.Errorf("bench: nil generator")
	}
	opt := r.opts
	res := Result{BatchSize: opt.batch}

	var deadline time.Time
	start := time.Now()
	if opt.duration > 0 {
		deadline = start.Add(opt.duration)
	}
	lastReport := start

	for opt.rounds <= 0 || res.Rounds < opt.rounds {
		if res.Rounds&63 == 0 {
			if ctx.Err() != nil {
				break
			}
			if !deadline.IsZero() && !time.Now().Before(deadline) {
				break
			}
		}

		for _, v := range r.gen.NextN(opt.batch) {
			res.Checksum ^= v
		}
		res.Rounds++
		res.Values += int64(opt.batch)
		if opt.counter != nil {
			opt.counter.Add(int64(opt.batch))
		}

		if opt.report > 0 && res.Rounds&63 == 0 {
			if now := time.Now(); now.Sub(lastReport) >= opt.report {
				logger.Debug("bench progress", "rounds", res.Rounds, "values", res.Values)
				lastReport = now
			}
		}
	}

	res.Elapsed = time.Since(start)
	if res.Elapsed > 0 {
		res.PerSec = float64(res.Values) / res.Elapsed.Seconds()
	}
	if res.Values > 0 {
		res.NsPerValue = float64(res.Elapsed.Nanoseconds()) / float64(res.Values)
	}
	logger.Info("bench finished", "rounds", res.Rounds, "values", res.Values, "elapsed", res.Elapsed)
	return res, nil
}
