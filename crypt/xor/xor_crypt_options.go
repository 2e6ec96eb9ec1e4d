package xor

import (
	"math/rand"

	"github.com/tutils/lcg"
	"github.com/tutils/lcg/crypt"
)

// RandomSourceNewer builds the keystream source from the crypt key
type RandomSourceNewer func(int64) rand.Source

// DefaultRandomSourceNewer draws the keystream from a default-parameter LCG.
var DefaultRandomSourceNewer RandomSourceNewer = lcg.NewSource

type xorEncoderOptions struct {
	sourceNewer RandomSourceNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.sourceNewer == nil {
		opt.sourceNewer = DefaultRandomSourceNewer
	}
	return &opt
}

func WithEncoderRandomSourceNewer(newer RandomSourceNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.sourceNewer = newer
		}
	}
}

type xorDecoderOptions struct {
	sourceNewer RandomSourceNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.sourceNewer == nil {
		opt.sourceNewer = DefaultRandomSourceNewer
	}
	return &opt
}

func WithDecoderRandomSourceNewer(newer RandomSourceNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.sourceNewer = newer
		}
	}
}
