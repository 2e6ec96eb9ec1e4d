package dump

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tutils/lcg"
)

func TestRoundTripCodecs(t *testing.T) {
	for _, codec := range []Codec{CodecNone, CodecLZ4, CodecSnappy, CodecZstd} {
		t.Run(codec.String(), func(t *testing.T) {
			values := lcg.NewDefault(42).NextN(5000)
			buf := &bytes.Buffer{}
			w, err := NewWriter(buf, codec)
			if err != nil {
				t.Fatal(err)
			}
			if err := w.Write(values[:1000]); err != nil {
				t.Fatal(err)
			}
			if err := w.Write(values[1000:]); err != nil {
				t.Fatal(err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}
			if w.Count() != 5000 {
				t.Fatalf("count = %d", w.Count())
			}
			t.Logf("%s: %d bytes for %d values", codec, buf.Len(), len(values))

			r, err := NewReader(buf)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()
			if r.Codec != codec {
				t.Fatalf("codec = %v", r.Codec)
			}
			got, err := r.ReadAll()
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(values) {
				t.Fatalf("read %d values", len(got))
			}
			for i := range values {
				if got[i] != values[i] {
					t.Fatalf("value %d: %d != %d", i, got[i], values[i])
				}
			}
		})
	}
}

func TestEmptyDump(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, CodecNone)
	w.Close()
	r, err := NewReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadAll()
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestBadInput(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte("nope"))); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("short: %v", err)
	}
	if _, err := NewReader(bytes.NewReader([]byte("NOTADUMP\x00"))); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("magic: %v", err)
	}
	if _, err := NewReader(bytes.NewReader([]byte(magic + "\x09"))); err == nil {
		t.Fatal("expected unknown codec error")
	}

	buf := bytes.NewBufferString(magic + "\x00" + "abc")
	r, err := NewReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadAll(); err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestParseCodec(t *testing.T) {
	for _, name := range []string{"none", "lz4", "snappy", "zstd"} {
		c, err := ParseCodec(name)
		if err != nil || c.String() != name {
			t.Fatalf("%s: %v %v", name, c, err)
		}
	}
	if c, err := ParseCodec(""); err != nil || c != CodecNone {
		t.Fatal("empty name should be none")
	}
	if _, err := ParseCodec("gzip"); err == nil {
		t.Fatal("expected error")
	}
}
