// Package plot draws generator output on a terminal.
package plot

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"golang.org/x/term"
)

// default canvas when the output is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// TerminalSize returns the size of the terminal on fd, or the defaults.
func TerminalSize(fd int) (width, height int) {
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// Histogram counts values into bins equal-width buckets over [0, m).
// Values outside [0, m) are ignored.
func Histogram(values []int64, m int64, bins int) ([]int, error) {
	if m <= 0 {
		return nil, fmt.Errorf("plot: modulus must be positive, got %d", m)
	}
	if bins <= 0 {
		return nil, fmt.Errorf("plot: bins must be positive, got %d", bins)
	}
	if int64(bins) > m {
		bins = int(m)
	}
	counts := make([]int, bins)
	for _, v := range values {
		if v < 0 || v >= m {
			continue
		}
		counts[scale(v, m, bins)]++
	}
	return counts, nil
}

// RenderHistogram draws one bar per bin, scaled to width columns.
func RenderHistogram(w io.Writer, counts []int, width int) error {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	label := len(fmt.Sprint(max))
	bar := width - label - len(fmt.Sprint(len(counts))) - 4
	if bar < 1 {
		bar = 1
	}
	for i, c := range counts {
		n := 0
		if max > 0 {
			n = c * bar / max
		}
		if _, err := fmt.Fprintf(w, "%*d %*d |%s\n",
			len(fmt.Sprint(len(counts))), i, label, c, strings.Repeat("#", n)); err != nil {
			return err
		}
	}
	return nil
}

// RenderLattice plots consecutive pairs (x_n, x_n+1) on a width x height grid.
// LCG output falls on a small number of parallel lines, which shows up here.
func RenderLattice(w io.Writer, values []int64, m int64, width, height int) error {
	if m <= 0 {
		return fmt.Errorf("plot: modulus must be positive, got %d", m)
	}
	if width < 3 || height < 3 {
		return fmt.Errorf("plot: canvas %dx%d too small", width, height)
	}
	// border takes two columns and two rows
	cols, rows := width-2, height-2
	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", cols))
	}
	for i := 0; i+1 < len(values); i++ {
		x, y := values[i], values[i+1]
		if x < 0 || x >= m || y < 0 || y >= m {
			continue
		}
		cx := scale(x, m, cols)
		cy := rows - 1 - scale(y, m, rows)
		grid[cy][cx] = '*'
	}

	edge := "+" + strings.Repeat("-", cols) + "+\n"
	if _, err := io.WriteString(w, edge); err != nil {
		return err
	}
	for _, line := range grid {
		if _, err := fmt.Fprintf(w, "|%s|\n", line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, edge)
	return err
}

// scale maps v in [0, m) to floor(v*n/m) in [0, n).
func scale(v, m int64, n int) int {
	hi, lo := bits.Mul64(uint64(v), uint64(n))
	q, _ := bits.Div64(hi, lo, uint64(m))
	return int(q)
}
