package cmd

import (
	"fmt"
	"log"
	"math"

	"github.com/markcheno/go-talib"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/ghedger/regression/chart"
	"github.com/ghedger/regression/dataset"
	"github.com/ghedger/regression/util"
)

var (
	period int

	trendCmd = TraverseRunHooks(&cobra.Command{
		Use:   "trend",
		Short: "Rolling least squares over the y series",
		Long: `trend treats the y values as an ordered series (x is ignored) and
solves a least squares line over each trailing window of --period
values. Prints the line evaluated at the series end, its slope, and
the one step forecast.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, pts, err := loadPoints(cmd, args)
			if err != nil {
				return err
			}
			report, err := trendReport(pts.Ys(), period)
			if err != nil {
				return err
			}
			fitCount.WithLabelValues("trend").Inc()
			fmt.Print(report)

			if chartFlag {
				ys := pts.Ys()
				p := util.Clamp(period, 2, len(ys))
				chart.SetTitles(src.String(), "i", "y")
				chart.AddLine(dataset.NewSeries(ys), "y")
				chart.AddLine(dataset.Series{Data: talib.LinearReg(ys, p), XStep: 1}.TrimLeft(),
					fmt.Sprintf("linreg(%d)", p))
				chart.AddLine(dataset.Series{Data: talib.Tsf(ys, p), XStep: 1}.TrimLeft(),
					fmt.Sprintf("tsf(%d)", p))
				width := vg.Length(math.Max(float64(4*len(ys)), 640))
				if err := chart.Save(width, width/1.77, false, chartOut); err != nil {
					return err
				}
				log.Printf("saved \"%s\"", chartOut)
			}
			return nil
		},
	})
)

func init() {
	trendCmd.Flags().IntVar(&period, "period", 14, "window length in values")
}

// trendReport runs the rolling fit and formats the tail values. The
// period clamps to [2, len(ys)].
func trendReport(ys []float64, period int) (string, error) {
	if len(ys) < 2 {
		return "", fmt.Errorf("need at least 2 values, have %d", len(ys))
	}
	if p := util.Clamp(period, 2, len(ys)); p != period {
		log.Printf("period %d clamped to %d", period, p)
		period = p
	}
	last := len(ys) - 1
	value := talib.LinearReg(ys, period)[last]
	slope := talib.LinearRegSlope(ys, period)[last]
	next := talib.Tsf(ys, period)[last]
	return fmt.Sprintf("trend of %d values, window %d:\nvalue=%f\nslope=%f\nnext=%f\n",
		len(ys), period, value, slope, next), nil
}
