// Package dump stores generated values for offline plotting.
//
// A dump is the 8 byte magic "LCGDUMP1", one codec byte, then the values as
// little-endian int64 passed through the codec.
package dump

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/DataDog/zstd"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Codec is the compression applied to the value stream
type Codec byte

const (
	CodecNone Codec = iota
	CodecLZ4
	CodecSnappy
	CodecZstd
)

const magic = "LCGDUMP1"

var ErrBadMagic = errors.New("dump: not a value dump")

var codecNames = map[Codec]string{
	CodecNone:   "none",
	CodecLZ4:    "lz4",
	CodecSnappy: "snappy",
	CodecZstd:   "zstd",
}

func (c Codec) String() string {
	if s, ok := codecNames[c]; ok {
		return s
	}
	return fmt.Sprintf("codec(%d)", byte(c))
}

// ParseCodec maps a name to a Codec.
func ParseCodec(name string) (Codec, error) {
	if name == "" {
		return CodecNone, nil
	}
	for c, s := range codecNames {
		if s == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("dump: unknown codec %q", name)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Writer encodes values to a dump
type Writer struct {
	cw  io.WriteCloser
	bw  *bufio.Writer
	buf [8]byte
	n   int64
}

// NewWriter writes the header and returns a Writer. Close flushes the codec
// but does not close w.
func NewWriter(w io.Writer, codec Codec) (*Writer, error) {
	if _, err := io.WriteString(w, magic); err != nil {
		return nil, err
	}
	if _, err := w.Write([]byte{byte(codec)}); err != nil {
		return nil, err
	}
	var cw io.WriteCloser
	switch codec {
	case CodecNone:
		cw = nopCloser{w}
	case CodecLZ4:
		cw = lz4.NewWriter(w)
	case CodecSnappy:
		cw = snappy.NewBufferedWriter(w)
	case CodecZstd:
		cw = zstd.NewWriter(w)
	default:
		return nil, fmt.Errorf("dump: unknown codec %v", codec)
	}
	return &Writer{
		cw: cw,
		bw: bufio.NewWriterSize(cw, 32<<10),
	}, nil
}

// Write appends values.
func (w *Writer) Write(values []int64) error {
	for _, v := range values {
		binary.LittleEndian.PutUint64(w.buf[:], uint64(v))
		if _, err := w.bw.Write(w.buf[:]); err != nil {
			return err
		}
	}
	w.n += int64(len(values))
	return nil
}

// Count returns the number of values written.
func (w *Writer) Count() int64 {
	return w.n
}

func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}
	return w.cw.Close()
}

// Reader decodes a dump
type Reader struct {
	Codec Codec

	r   *bufio.Reader
	c   io.Closer
	buf [8]byte
}

// NewReader reads the header and prepares the codec.
func NewReader(r io.Reader) (*Reader, error) {
	var hdr [len(magic) + 1]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if string(hdr[:len(magic)]) != magic {
		return nil, ErrBadMagic
	}
	codec := Codec(hdr[len(magic)])
	dr := &Reader{Codec: codec}
	var body io.Reader
	switch codec {
	case CodecNone:
		body = r
	case CodecLZ4:
		body = lz4.NewReader(r)
	case CodecSnappy:
		body = snappy.NewReader(r)
	case CodecZstd:
		zr := zstd.NewReader(r)
		dr.c = zr
		body = zr
	default:
		return nil, fmt.Errorf("dump: unknown codec %v", codec)
	}
	dr.r = bufio.NewReaderSize(body, 32<<10)
	return dr, nil
}

// Next returns the next value, or io.EOF at the end of the dump.
func (r *Reader) Next() (int64, error) {
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("dump: truncated value: %w", err)
		}
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(r.buf[:])), nil
}

// ReadAll returns every remaining value.
func (r *Reader) ReadAll() ([]int64, error) {
	var out []int64
	for {
		v, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

func (r *Reader) Close() error {
	if r.c != nil {
		return r.c.Close()
	}
	return nil
}
