package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = TraverseRunHooks(&cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved fit in full",
	Long: `show loads one saved fit by id and prints the stored record, its rank
in the scoreboard, and the fit report. With --chart the chart renders
again from the stored points.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		if !strings.HasPrefix(id, FitPrefix) {
			log.Fatalf("unsupported id prefix in %q", id)
		}
		d := openDB()
		var res FitResult
		if err := d.LoadJSON(id, &res); err != nil {
			log.Fatalln("db.LoadJSON:", err)
		}
		res.Id = id
		fmt.Printf("%s\n", &res)
		if rank, err := d.Rank(zkey, id); err == nil {
			fmt.Printf("rank: %d\n", rank)
		}
		fmt.Println()
		fmt.Print(res.Report())
		if chartFlag {
			if err := renderChart(res.Points, &res, chartOut); err != nil {
				log.Fatalln("chart:", err)
			}
		}
	},
})
