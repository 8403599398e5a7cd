package cmd

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/ghedger/regression/dataset"
	"github.com/ghedger/regression/fit"
)

var describeCmd = TraverseRunHooks(&cobra.Command{
	Use:   "describe",
	Short: "Summary statistics for a dataset",
	Long: `Per-axis descriptive statistics, the xy correlation, and the fitted
line with its quality. Degenerate datasets still describe, only the
line is skipped.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, pts, err := loadPoints(cmd, args)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", src)
		fmt.Print(describe(pts))
		if l, err := fit.Fit(pts); err != nil {
			fmt.Printf("fit: %s\n", err)
		} else {
			fitCount.WithLabelValues("bestfit").Inc()
			fmt.Printf("fit: %s (r2=%.6f rmse=%.6f)\n",
				l, fit.RSquared(pts, l), fit.RMSE(pts, l))
		}
		return nil
	},
})

func describe(pts dataset.Points) string {
	if len(pts) == 0 {
		return "no points\n"
	}
	var s string
	for _, axis := range []struct {
		name string
		data stats.Float64Data
	}{
		{"x", pts.Xs()},
		{"y", pts.Ys()},
	} {
		min, _ := stats.Min(axis.data)
		max, _ := stats.Max(axis.data)
		mean, _ := stats.Mean(axis.data)
		median, _ := stats.Median(axis.data)
		sd, _ := stats.StandardDeviation(axis.data)
		s += fmt.Sprintf("%s: n=%d min=%.6g max=%.6g mean=%.6g median=%.6g sd=%.6g\n",
			axis.name, len(axis.data), min, max, mean, median, sd)
	}
	corr, err := stats.Correlation(stats.Float64Data(pts.Xs()), stats.Float64Data(pts.Ys()))
	if err == nil && !math.IsNaN(corr) {
		s += fmt.Sprintf("corr: %.6f\n", corr)
	}
	return s
}
