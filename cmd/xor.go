package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/tutils/lcg/crypt/xor"
)

var (
	xorCryptSeed int64
	xorDecode    bool
)

const defaultXorCryptSeed = 98545715754651

// xorCmd represents the xor command
var xorCmd = &cobra.Command{
	Use:   "xor",
	Short: "XOR stdin with an LCG keystream",
	Long: `XOR stdin with a keystream drawn from the default LCG and write stdout.
This is obfuscation, not encryption. For example:
  lcg xor --crypt-key=816559 < plain > masked
  lcg xor --crypt-key=816559 --decode < masked > plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := xor.NewCrypt(xorCryptSeed)
		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		var err error
		if xorDecode {
			_, err = io.Copy(out, c.NewDecoder(in))
		} else {
			_, err = io.Copy(c.NewEncoder(out), in)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(xorCmd)

	flags := xorCmd.Flags()
	flags.Int64VarP(&xorCryptSeed, "crypt-key", "k", defaultXorCryptSeed, "crypt key")
	flags.BoolVar(&xorDecode, "decode", false, "decode instead of encode")
}
