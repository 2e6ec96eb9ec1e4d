package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tutils/lcg"
	"github.com/tutils/lcg/dump"
	"github.com/tutils/lcg/logger"
)

// GenOutput is the JSON document written by gen --json
type GenOutput struct {
	A      int64   `json:"a"`
	C      int64   `json:"c"`
	M      int64   `json:"m"`
	Seed   int64   `json:"seed"`
	Values []int64 `json:"values"`
}

var (
	genCount int
	genJSON  bool
	genDump  string
	genCodec string
)

const dumpChunk = 1 << 16

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate values",
	Long: `Generate values from the generator, For example:
  lcg gen                      # one value
  lcg gen --count=10 --seed=42
  lcg gen --count=1000000 --dump=values.lcg --codec=zstd`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		seed := g.State()

		if genDump != "" {
			return writeDump(g, genDump, genCodec, genCount)
		}

		var values []int64
		if genCount < 0 {
			values = []int64{g.Next()}
		} else {
			values = g.NextN(genCount)
		}

		out := cmd.OutOrStdout()
		if genJSON {
			enc := json.NewEncoder(out)
			return enc.Encode(GenOutput{A: g.A(), C: g.C(), M: g.M(), Seed: seed, Values: values})
		}
		for _, v := range values {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeDump(g *lcg.Generator, path, codecName string, count int) error {
	codec, err := dump.ParseCodec(codecName)
	if err != nil {
		return err
	}
	if count < 0 {
		count = 1
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	n, err := fillDump(f, g, codec, count)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("dump written", "file", path, "codec", codec.String(), "values", n)
	return nil
}

// fillDump writes count values to w; it does not close w.
func fillDump(w io.Writer, g *lcg.Generator, codec dump.Codec, count int) (int64, error) {
	dw, err := dump.NewWriter(w, codec)
	if err != nil {
		return 0, err
	}
	buf := make([]int64, dumpChunk)
	for left := count; left > 0; {
		n := len(buf)
		if left < n {
			n = left
		}
		g.Fill(buf[:n])
		if err := dw.Write(buf[:n]); err != nil {
			return 0, err
		}
		left -= n
	}
	if err := dw.Close(); err != nil {
		return 0, err
	}
	return dw.Count(), nil
}

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.IntVarP(&genCount, "count", "n", -1, "number of values (omitted or negative: a single value)")
	flags.BoolVarP(&genJSON, "json", "j", false, "print a JSON document")
	flags.StringVarP(&genDump, "dump", "o", "", "write a binary dump to this file instead of printing")
	flags.StringVar(&genCodec, "codec", "none", "dump compression [none,lz4,snappy,zstd]")
}
