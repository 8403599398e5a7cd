package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Config mirrors the root flags worth pinning in a file. Flags set
// explicitly on the command line win over file values.
type Config struct {
	Redis      string      `toml:"redis"`
	ZKey       string      `toml:"zkey"`
	Prometheus PromConfig  `toml:"prometheus"`
	Chart      ChartConfig `toml:"chart"`
}

type PromConfig struct {
	Server bool   `toml:"server"`
	Bind   string `toml:"bind"`
	Handle string `toml:"handle"`
}

type ChartConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Out    string  `toml:"out"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	var c Config
	if err = dec.Decode(&c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown options in %s:\n%s", path, strict.String())
		}
		return nil, err
	}
	return &c, nil
}

func applyConfig(c *Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if c.Redis != "" && !flags.Changed("redis") {
		redisAddr = c.Redis
	}
	if c.ZKey != "" && !flags.Changed("zkey") {
		zkey = c.ZKey
	}
	if c.Prometheus.Bind != "" && !flags.Changed("prometheus-bind") {
		promBind = c.Prometheus.Bind
	}
	if c.Prometheus.Handle != "" && !flags.Changed("prometheus-handle") {
		promHandle = c.Prometheus.Handle
	}
	if c.Prometheus.Server && !flags.Changed("prometheus-server") {
		promServer = true
	}
	if c.Chart.Out != "" && !flags.Changed("chart-out") {
		chartOut = c.Chart.Out
	}
	chartCfg = c.Chart
}
