package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tutils/lcg"
)

var (
	checkVerify bool
	checkLimit  int64
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the Hull-Dobell conditions",
	Long: `Report whether the parameters give a full period of m, For example:
  lcg check
  lcg check -a 5 -c 3 -m 16 --verify`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "a=%d c=%d m=%d seed=%d\n", g.A(), g.C(), g.M(), g.State())
		fmt.Fprintf(out, "full period (Hull-Dobell): %v\n", g.FullPeriod())
		if !checkVerify {
			return nil
		}
		if g.M() > checkLimit {
			return fmt.Errorf("m=%d is larger than --limit=%d, refusing to walk the cycle", g.M(), checkLimit)
		}
		n := lcg.CycleLength(g, 4*g.M()+4)
		fmt.Fprintf(out, "cycle length from seed: %d\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	flags := checkCmd.Flags()
	flags.BoolVar(&checkVerify, "verify", false, "walk the sequence and measure the cycle length")
	flags.Int64Var(&checkLimit, "limit", 1<<26, "largest m --verify will walk")
}
