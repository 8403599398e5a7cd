package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ghedger/regression/dataset"
)

var errUsage = errors.New("expected x y coordinate pairs, -f <path> or --url <url>")

// pickSource resolves where points come from. An explicit file wins
// over a url, both win over positional arguments.
func pickSource(args []string) (dataset.Source, error) {
	if filePath != "" {
		return dataset.FileSource{Path: filePath}, nil
	}
	if urlFlag != "" {
		return dataset.HTTPSource{URL: urlFlag}, nil
	}
	if len(args) < 2 {
		return nil, errUsage
	}
	return dataset.ArgsSource{Args: args}, nil
}

func sourceLabel(src dataset.Source) string {
	switch src.(type) {
	case dataset.FileSource:
		return "file"
	case dataset.HTTPSource:
		return "url"
	default:
		return "args"
	}
}

// loadPoints is the acquisition pipeline shared by every fitting
// command: pick a source, load it, apply -x.
func loadPoints(cmd *cobra.Command, args []string) (dataset.Source, dataset.Points, error) {
	src, err := pickSource(args)
	if err != nil {
		_ = cmd.Usage()
		return nil, nil, err
	}
	pts, err := src.Load()
	if err != nil {
		return src, nil, err
	}
	if swapFlag {
		pts = pts.SwapXY()
	}
	pointCount.WithLabelValues(sourceLabel(src)).Add(float64(len(pts)))
	return src, pts, nil
}
