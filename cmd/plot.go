package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tutils/lcg/dump"
	"github.com/tutils/lcg/plot"
)

var (
	plotKind   string
	plotCount  int
	plotBins   int
	plotWidth  int
	plotHeight int
	plotFrom   string
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot values on the terminal",
	Long: `Draw a histogram or a (x_n, x_n+1) lattice of generated values, For example:
  lcg plot --kind=hist --count=100000 --bins=20
  lcg plot --kind=lattice -a 65539 -c 0 -m 2147483648 --seed=1
  lcg plot --from=values.lcg
  lcg gen --count=500 --json > values.json && lcg plot --from=values.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		m := g.M()

		var values []int64
		if plotFrom != "" {
			values, m, err = loadValues(plotFrom, m)
			if err != nil {
				return err
			}
		} else {
			values = g.NextN(plotCount)
		}

		width, height := plot.TerminalSize(int(os.Stdout.Fd()))
		if plotWidth > 0 {
			width = plotWidth
		}
		if plotHeight > 0 {
			height = plotHeight
		}

		out := cmd.OutOrStdout()
		switch plotKind {
		case "hist", "histogram":
			counts, err := plot.Histogram(values, m, plotBins)
			if err != nil {
				return err
			}
			return plot.RenderHistogram(out, counts, width)
		case "lattice", "scatter":
			return plot.RenderLattice(out, values, m, width, height-1)
		default:
			return fmt.Errorf("unknown plot kind %q", plotKind)
		}
	},
}

// loadValues reads a dump file, or a JSON document with "values" or
// "data.values" (gen --json output and API responses). A JSON "m" field
// overrides the modulus.
func loadValues(path string, m int64) ([]int64, int64, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	if r, err := dump.NewReader(bytes.NewReader(bs)); err == nil {
		defer r.Close()
		values, err := r.ReadAll()
		return values, m, err
	}

	if !gjson.ValidBytes(bs) {
		return nil, 0, fmt.Errorf("%s: neither a dump nor JSON", path)
	}
	doc := gjson.ParseBytes(bs)
	arr := doc.Get("values")
	if !arr.Exists() {
		arr = doc.Get("data.values")
	}
	if !arr.IsArray() {
		return nil, 0, fmt.Errorf("%s: no values array", path)
	}
	if jm := doc.Get("m"); jm.Exists() {
		m = jm.Int()
	}
	var values []int64
	arr.ForEach(func(_, v gjson.Result) bool {
		values = append(values, v.Int())
		return true
	})
	return values, m, nil
}

func init() {
	rootCmd.AddCommand(plotCmd)

	flags := plotCmd.Flags()
	flags.StringVarP(&plotKind, "kind", "k", "hist", "plot kind [hist,lattice]")
	flags.IntVarP(&plotCount, "count", "n", 10000, "number of values to generate")
	flags.IntVar(&plotBins, "bins", 20, "histogram bins")
	flags.IntVar(&plotWidth, "width", 0, "canvas width (default: terminal width)")
	flags.IntVar(&plotHeight, "height", 0, "canvas height (default: terminal height)")
	flags.StringVarP(&plotFrom, "from", "f", "", "plot values from a dump or JSON file")
}
