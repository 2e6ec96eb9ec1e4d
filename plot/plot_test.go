package plot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tutils/lcg"
)

func TestHistogram(t *testing.T) {
	counts, err := Histogram([]int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, -1, 10}, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range counts {
		if c != 2 {
			t.Fatalf("bin %d = %d, want 2 (%v)", i, c, counts)
		}
	}

	counts, err = Histogram([]int64{0, 1}, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 {
		t.Fatalf("bins not clamped to m: %d", len(counts))
	}

	if _, err := Histogram(nil, 0, 4); err == nil {
		t.Fatal("expected error for m=0")
	}
	if _, err := Histogram(nil, 4, 0); err == nil {
		t.Fatal("expected error for bins=0")
	}
}

func TestHistogramFullPeriod(t *testing.T) {
	g, _ := lcg.New(21, 1, 1<<12, 0)
	counts, err := Histogram(g.NextN(1<<12), 1<<12, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range counts {
		if c != 256 {
			t.Fatalf("bin %d = %d, want 256", i, c)
		}
	}
}

func TestRenderHistogram(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := RenderHistogram(buf, []int{1, 4, 2}, 40); err != nil {
		t.Fatal(err)
	}
	t.Log("\n" + buf.String())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if strings.Count(lines[1], "#") <= strings.Count(lines[0], "#") {
		t.Fatal("largest bin should have the longest bar")
	}
}

func TestRenderLattice(t *testing.T) {
	g, _ := lcg.New(5, 3, 16, 0)
	buf := &bytes.Buffer{}
	if err := RenderLattice(buf, g.NextN(17), 16, 18, 18); err != nil {
		t.Fatal(err)
	}
	t.Log("\n" + buf.String())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 18 {
		t.Fatalf("got %d lines", len(lines))
	}
	// one point per pair, all distinct in a full period on a 16x16 grid
	if n := strings.Count(buf.String(), "*"); n != 16 {
		t.Fatalf("got %d points, want 16", n)
	}
	if err := RenderLattice(buf, nil, 16, 2, 2); err == nil {
		t.Fatal("expected error for tiny canvas")
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	w, h := TerminalSize(-1)
	if w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("got %dx%d", w, h)
	}
}
