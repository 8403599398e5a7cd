package cmd

import (
	"fmt"

	"github.com/ghedger/regression/dataset"
	_db "github.com/ghedger/regression/db"
	"github.com/ghedger/regression/fit"
)

const FitPrefix = "fit"

// FitResult captures one complete fit: where the points came from, the
// solved line, and its quality. It persists as a db entry ranked by R².
type FitResult struct {
	Source  string         `json:"source"`
	Swapped bool           `json:"swapped,omitempty"`
	N       int            `json:"n"`
	Line    fit.Line       `json:"line"`
	R2      float64        `json:"r2"`
	RMSE    float64        `json:"rmse"`
	XMean   float64        `json:"xmean"`
	Points  dataset.Points `json:"points"`

	Id string `json:"-"`
}

func newFitResult(src dataset.Source, pts dataset.Points, swapped bool) (*FitResult, error) {
	l, err := fit.Fit(pts)
	if err != nil {
		return nil, err
	}
	xm, err := fit.Mean(pts)
	if err != nil {
		return nil, err
	}
	return &FitResult{
		Source:  src.String(),
		Swapped: swapped,
		N:       len(pts),
		Line:    l,
		R2:      fit.RSquared(pts, l),
		RMSE:    fit.RMSE(pts, l),
		XMean:   xm,
		Points:  pts,
	}, nil
}

// Digest is the db.Digester implementation, the id hashes the json
// payload so identical fits collapse to one entry.
func (r *FitResult) Digest() (id string, data []byte, err error) {
	id, data, err = _db.JSONDigest(FitPrefix, r)
	r.Id = id
	return
}

// Score is the db.Scorer implementation, fits rank by goodness.
func (r *FitResult) Score() float64 {
	return r.R2
}

func (r *FitResult) String() string {
	if r.Id == "" {
		_, _, _ = r.Digest()
	}
	return fmt.Sprintf("%s | n=%d %s | %s | r2=%.4f rmse=%.4f",
		r.Id, r.N, r.Source, r.Line, r.R2, r.RMSE)
}

// Report is the fit output block: intercept, slope, and the fitted
// value at the mean x.
func (r *FitResult) Report() string {
	return fmt.Sprintf("Best fit (OLS):\nb=%f\nm=%f\n\ny=%f at x=x̄=%f\n",
		r.Line.Intercept, r.Line.Slope, r.Line.At(r.XMean), r.XMean)
}
