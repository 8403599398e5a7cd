package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var topCmd = TraverseRunHooks(&cobra.Command{
	Use:   "top",
	Short: "Show best saved fits",
	Run: func(cmd *cobra.Command, args []string) {
		d := openDB()
		ids, err := d.Top(zkey, n)
		if err != nil {
			log.Fatalln("db.Top:", err)
		}
		for i, id := range ids {
			var res FitResult
			if err := d.LoadJSON(id, &res); err != nil {
				log.Printf("db.LoadJSON %s: %s", id, err)
				continue
			}
			res.Id = id
			fmt.Printf("%3d/  %s\n", i+1, &res)
		}
	},
})

func init() {
	topCmd.Flags().IntVarP(&n, "number", "n", 10, "number of fits to display")
}
