package bench

import (
	"time"

	"github.com/tutils/lcg/counter"
)

// Options is runner options
type Options struct {
	batch    int
	rounds   int
	duration time.Duration
	counter  counter.Counter
	report   time.Duration
}

// Option is option setter for runner
type Option func(*Options)

// default runner options
var (
	DefaultBatchSize = 1000
	DefaultRounds    = 1000
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}
	if opt.batch <= 0 {
		opt.batch = DefaultBatchSize
	}
	if opt.rounds <= 0 && opt.duration <= 0 {
		opt.rounds = DefaultRounds
	}
	return opt
}

// WithBatchSize sets the count passed to NextN per round
func WithBatchSize(n int) Option {
	return func(opts *Options) {
		opts.batch = n
	}
}

// WithRounds stops the run after n rounds
func WithRounds(n int) Option {
	return func(opts *Options) {
		opts.rounds = n
	}
}

// WithDuration stops the run after d
func WithDuration(d time.Duration) Option {
	return func(opts *Options) {
		opts.duration = d
	}
}

// WithCounter adds every generated batch to c
func WithCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.counter = c
	}
}

// WithReportInterval logs progress every d
func WithReportInterval(d time.Duration) Option {
	return func(opts *Options) {
		opts.report = d
	}
}
