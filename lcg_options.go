package lcg

// Options is generator parameters
type Options struct {
	a, c, m int64
	seed    int64
}

// Option is option setter for generator
type Option func(*Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{
		a: DefaultMultiplier,
		c: DefaultIncrement,
		m: DefaultModulus,
	}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithMultiplier sets the multiplier a
func WithMultiplier(a int64) Option {
	return func(opts *Options) {
		opts.a = a
	}
}

// WithIncrement sets the increment c
func WithIncrement(c int64) Option {
	return func(opts *Options) {
		opts.c = c
	}
}

// WithModulus sets the modulus m
func WithModulus(m int64) Option {
	return func(opts *Options) {
		opts.m = m
	}
}

// WithSeed sets the initial state
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.seed = seed
	}
}

// NewWithOptions create a new Generator from the default parameters overridden by opts.
func NewWithOptions(opts ...Option) (*Generator, error) {
	opt := newOptions(opts...)
	return New(opt.a, opt.c, opt.m, opt.seed)
}
