package crypt

import (
	"io"
)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}

// EncoderOptions is implemented by each Crypt's private encoder options
type EncoderOptions interface{}

// EncoderOption is option setter for encoder
type EncoderOption func(opts EncoderOptions)

// DecoderOptions is implemented by each Crypt's private decoder options
type DecoderOptions interface{}

// DecoderOption is option setter for decoder
type DecoderOption func(opts DecoderOptions)
