package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/lcg/bench"
	"github.com/tutils/lcg/counter/period"
)

var (
	benchBatch    int
	benchRounds   int
	benchDuration time.Duration
	benchJSON     bool
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure generator throughput",
	Long: `Call NextN(batch) in a loop and report values per second, For example:
  lcg bench --batch=1000 --rounds=10000
  lcg bench --batch=1 --duration=3s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		r := bench.New(g,
			bench.WithBatchSize(benchBatch),
			bench.WithRounds(benchRounds),
			bench.WithDuration(benchDuration),
			bench.WithCounter(period.NewPeriodCounter(time.Second)),
			bench.WithReportInterval(time.Second),
		)
		res, err := r.Run(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if benchJSON {
			return json.NewEncoder(out).Encode(res)
		}
		_, err = fmt.Fprintln(out, res)
		return err
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.IntVarP(&benchBatch, "batch", "b", bench.DefaultBatchSize, "values per NextN call")
	flags.IntVarP(&benchRounds, "rounds", "r", 0, "number of calls (0: unlimited when --duration is set)")
	flags.DurationVarP(&benchDuration, "duration", "d", 0, "stop after this long")
	flags.BoolVarP(&benchJSON, "json", "j", false, "print the result as JSON")
}
