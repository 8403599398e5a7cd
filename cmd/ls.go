package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghedger/regression/fit"
)

// lsCmd solves the same line through the normal equations directly,
// intercept first. Agrees with the root fit to well under 1e-9.
var lsCmd = TraverseRunHooks(&cobra.Command{
	Use:   "ls [x1] [y1] [x2] [y2] ...",
	Short: "Least squares fit, a=intercept b=slope",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pts, err := loadPoints(cmd, args)
		if err != nil {
			return err
		}
		a, b, err := fit.LeastSquares(pts)
		if err != nil {
			return err
		}
		fitCount.WithLabelValues("leastsquares").Inc()
		fmt.Printf("Least squares:\na=%f\nb=%f\n", a, b)
		return nil
	},
})
