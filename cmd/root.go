package cmd

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mediocregopher/radix.v2/pool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/ghedger/regression/chart"
	"github.com/ghedger/regression/dataset"
	_db "github.com/ghedger/regression/db"
)

var (
	debug      bool
	db         _db.Driver
	redisAddr  string
	promBind   string
	promHandle string
	promServer bool
	cfgPath    string
	cacheAge   time.Duration
	n          int
	zkey       string

	filePath  string
	urlFlag   string
	swapFlag  bool
	dumpFlag  bool
	saveFlag  bool
	chartFlag bool
	chartOut  string
	chartCfg  ChartConfig

	rootCmd = &cobra.Command{
		Use:   "regression [x1] [y1] [x2] [y2] ...",
		Short: "Ordinary least squares fit over xy datasets",
		Long: `regression fits y = mx + b over a dataset by ordinary least squares.

Points come from positional x y pairs, from -f <path>, or from --url.
Files parse as loose CSV: digits, '.' and '-' accumulate into numbers,
anything else separates them, values alternate x then y. The -x flag
exchanges x and y after parsing, so -xf <path> fits the file columns
swapped. Use -- before a negative leading coordinate.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// propagate debug flag
			dataset.Debug = debug

			if cfgPath != "" {
				c, err := loadConfig(cfgPath)
				if err != nil {
					log.Fatalf("config: %s", err)
				}
				applyConfig(c, cmd)
			}
			dataset.Client = dataset.CacheClient(cacheAge)

			// init prometheus
			prometheus.MustRegister(pointCount, fitCount)
			if promServer {
				http.Handle(promHandle, promhttp.Handler())
				fmt.Printf("%s%s\n", promBind, promHandle)
				go func() {
					log.Fatal("http listen:", http.ListenAndServe(promBind, nil))
				}()
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if promServer {
				fmt.Println("ctrl-c to quit")
				<-make(chan struct{})
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, pts, err := loadPoints(cmd, args)
			if err != nil {
				return err
			}
			if dumpFlag {
				if err = pts.Dump(os.Stdout); err != nil {
					return err
				}
			}
			res, err := newFitResult(src, pts, swapFlag)
			if err != nil {
				return err
			}
			fitCount.WithLabelValues("bestfit").Inc()
			fmt.Print(res.Report())

			if chartFlag {
				if err = renderChart(pts, res, chartOut); err != nil {
					return err
				}
			}
			saveResult(res)
			return nil
		},
	}

	// prometheus metrics
	pointCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "points", Help: "points parsed",
	}, []string{"source"})

	fitCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fits", Help: "fits computed",
	}, []string{"mode"})
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(color.RedString("%s", err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "optional toml config file")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "localhost:6379", "redis server location")
	rootCmd.PersistentFlags().StringVar(&promBind, "prometheus-bind", ":8080", "prometheus bind")
	rootCmd.PersistentFlags().StringVar(&promHandle, "prometheus-handle", "/prometheus", "prometheus handle")
	rootCmd.PersistentFlags().BoolVar(&promServer, "prometheus-server", false, "enable prometheus webserver")
	rootCmd.PersistentFlags().StringVar(&zkey, "zkey", "top:fits", "redis key for the fit ranking set")
	rootCmd.PersistentFlags().DurationVar(&cacheAge, "cache", 24*time.Hour, "max age for cached http datasets, 0 disables")

	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "read points from file")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "read points from url")
	rootCmd.PersistentFlags().BoolVarP(&swapFlag, "swap", "x", false, "exchange x and y after parsing")
	rootCmd.PersistentFlags().BoolVar(&chartFlag, "chart", false, "render the dataset and fitted line")
	rootCmd.PersistentFlags().StringVar(&chartOut, "chart-out", "fit.png", "chart output file")
	rootCmd.Flags().BoolVar(&dumpFlag, "dump", false, "echo parsed points before fitting")
	rootCmd.Flags().BoolVar(&saveFlag, "save", false, "save the fit to redis, ranked by r2")

	rootCmd.AddCommand(lsCmd, describeCmd, trendCmd, topCmd, showCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "flushdb",
		Short: "Clear the results store",
		Run: func(cmd *cobra.Command, args []string) {
			rd, ok := openDB().(*_db.RedisDriver)
			if !ok {
				log.Fatalln("flushdb needs a redis store")
			}
			if err := rd.Pool.Cmd("FLUSHDB").Err; err != nil {
				log.Fatalln("flushdb:", err)
			}
		},
	})
}

// openDB dials redis on first use, commands that never touch the store
// work without a server around. With no store reachable saves degrade
// to the nop driver.
func openDB() _db.Driver {
	if db != nil {
		return db
	}
	p, err := pool.New("tcp", redisAddr, 12)
	if err != nil {
		log.Println(color.YellowString("db: redis error: %s", err))
		db = _db.NopDriver{}
	} else {
		db = &_db.RedisDriver{Pool: p}
	}
	return db
}

func saveResult(res *FitResult) {
	if !saveFlag {
		return
	}
	id, err := openDB().SaveScorer(res, zkey)
	if err != nil {
		log.Println(color.YellowString("db: error saving fit: %s", err))
		return
	}
	log.Printf("saved %s", id)
}

func renderChart(pts dataset.Points, res *FitResult, name string) error {
	chart.SetTitles(res.Source, "x", "y")
	if err := chart.AddPoints(pts, fmt.Sprintf("n=%d", len(pts))); err != nil {
		return err
	}
	x0, x1, _, _ := pts.Range()
	chart.AddFitLine(res.Line, x0, x1, res.Line.String())
	chart.AddHorizontal(res.Line.At(res.XMean), "ȳ")
	chart.AddVertical(res.XMean, "x̄")
	if err := chart.AddMark(res.XMean, res.Line.At(res.XMean), ""); err != nil {
		return err
	}
	width := vg.Length(math.Max(float64(4*len(pts)), 640))
	height := width / 1.77
	if chartCfg.Width > 0 {
		width = vg.Length(chartCfg.Width)
	}
	if chartCfg.Height > 0 {
		height = vg.Length(chartCfg.Height)
	}
	if err := chart.Save(width, height, true, name); err != nil {
		return err
	}
	log.Printf("saved \"%s\"", name)
	return nil
}

// TraverseRunHooks modifies c's PersistentPreRun* and PersistentPostRun*
// functions (when present) so that they will search c's command chain and
// invoke the corresponding hook of the first parent that provides a hook.
// When used on every command in the chain the invocation of hooks will be
// propagated up the chain to the root command.
//
// In the case of PersistentPreRun* hooks the parent hook is invoked before the
// child hook.  In the case of PersistentPostRun* the child hook is invoked
// first.
//
// Use it in place of &cobra.Command{}, e.g.
//     command := TraverseRunHooks(&cobra.Command{
//     	PersistentPreRun: func ...,
//     })
func TraverseRunHooks(c *cobra.Command) *cobra.Command {
	preRunE := c.PersistentPreRunE
	preRun := c.PersistentPreRun
	if preRunE != nil || preRun != nil {
		c.PersistentPreRun = nil
		c.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
			for p := c.Parent(); p != nil; p = p.Parent() {
				if p.PersistentPreRunE != nil {
					if err := p.PersistentPreRunE(cmd, args); err != nil {
						return err
					}
					break
				} else if p.PersistentPreRun != nil {
					p.PersistentPreRun(cmd, args)
					break
				}
			}

			if preRunE != nil {
				return preRunE(cmd, args)
			}

			preRun(cmd, args)

			return nil
		}
	}

	postRunE := c.PersistentPostRunE
	postRun := c.PersistentPostRun
	if postRunE != nil || postRun != nil {
		c.PersistentPostRun = nil
		c.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
			if postRunE != nil {
				if err := postRunE(cmd, args); err != nil {
					return err
				}
			} else if postRun != nil {
				postRun(cmd, args)
			}

			for p := c.Parent(); p != nil; p = p.Parent() {
				if p.PersistentPostRunE != nil {
					if err := p.PersistentPostRunE(cmd, args); err != nil {
						return err
					}
					break
				} else if p.PersistentPostRun != nil {
					p.PersistentPostRun(cmd, args)
					break
				}
			}

			return nil
		}
	}

	return c
}
