package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/montanaflynn/stats"

	"github.com/ghedger/regression/dataset"
)

var reference = dataset.Points{{X: 43, Y: 99}, {X: 21, Y: 65}, {X: 25, Y: 79}, {X: 42, Y: 75}, {X: 57, Y: 87}, {X: 59, Y: 81}}

func closeTo(a, b, tol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= tol*scale
}

func TestBestFit_Collinear(t *testing.T) {
	b, m, err := BestFit(dataset.Points{{1, 2}, {2, 4}, {3, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if m != 2 {
		t.Errorf("m: %f", m)
	}
	if b != 0 {
		t.Errorf("b: %f", b)
	}
}

func TestLeastSquares_Reference(t *testing.T) {
	a, b, err := LeastSquares(reference)
	if err != nil {
		t.Fatal(err)
	}
	if !closeTo(a, 484979.0/7445.0, 1e-12) {
		t.Errorf("a: %.9f", a)
	}
	if !closeTo(b, 2868.0/7445.0, 1e-12) {
		t.Errorf("b: %.9f", b)
	}
}

func TestBestFit_AgreesWithLeastSquares(t *testing.T) {
	for _, pts := range []dataset.Points{
		reference,
		{{1, 2}, {2, 4}, {3, 6}},
		{{-3, 7.5}, {0.5, -2}, {12, 40}, {17.25, 38}, {-8, -30}},
		{{0.001, 9000}, {0.002, 8000}, {0.005, 12000}},
	} {
		b, m, err := BestFit(pts)
		if err != nil {
			t.Fatal(err)
		}
		a, b2, err := LeastSquares(pts)
		if err != nil {
			t.Fatal(err)
		}
		if !closeTo(b, a, 1e-9) {
			t.Errorf("intercepts disagree: %.12f vs %.12f", b, a)
		}
		if !closeTo(m, b2, 1e-9) {
			t.Errorf("slopes disagree: %.12f vs %.12f", m, b2)
		}
	}
}

func TestFit_PassesThroughMeans(t *testing.T) {
	l, err := Fit(reference)
	if err != nil {
		t.Fatal(err)
	}
	xm, err := Mean(reference)
	if err != nil {
		t.Fatal(err)
	}
	ym, err := MeanY(reference)
	if err != nil {
		t.Fatal(err)
	}
	if !closeTo(l.At(xm), ym, 1e-9) {
		t.Errorf("line should pass through (x̄, ȳ): At(%f)=%f, ȳ=%f", xm, l.At(xm), ym)
	}
}

func TestMean(t *testing.T) {
	m, err := Mean(dataset.Points{{1, 0}, {2, 0}, {3, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if m != 2.0 {
		t.Errorf("mean: %f", m)
	}
	if _, err = Mean(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestBestFit_Degenerate(t *testing.T) {
	if _, _, err := BestFit(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("empty: expected ErrNoData, got %v", err)
	}
	if _, _, err := BestFit(dataset.Points{{4, 2}}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("single point: expected ErrDegenerate, got %v", err)
	}
	_, _, err := BestFit(dataset.Points{{2, 1}, {2, 5}, {2, 9}})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("identical x: expected ErrDegenerate, got %v", err)
	}
	if _, _, err = LeastSquares(dataset.Points{{2, 1}, {2, 5}}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("identical x: expected ErrDegenerate, got %v", err)
	}
}

func TestLine(t *testing.T) {
	l := Line{Slope: 2, Intercept: -1}
	if l.At(3) != 5 {
		t.Errorf("At: %f", l.At(3))
	}
	if l.String() != "y = 2.000000x - 1.000000" {
		t.Errorf("String: %s", l)
	}
	l.Intercept = 1
	if l.String() != "y = 2.000000x + 1.000000" {
		t.Errorf("String: %s", l)
	}
}

func TestQuality(t *testing.T) {
	collinear := dataset.Points{{1, 2}, {2, 4}, {3, 6}}
	l, err := Fit(collinear)
	if err != nil {
		t.Fatal(err)
	}
	if r2 := RSquared(collinear, l); r2 != 1 {
		t.Errorf("collinear r2: %f", r2)
	}
	if rmse := RMSE(collinear, l); rmse != 0 {
		t.Errorf("collinear rmse: %f", rmse)
	}

	l, err = Fit(reference)
	if err != nil {
		t.Fatal(err)
	}
	r2 := RSquared(reference, l)
	if r2 <= 0 || r2 >= 1 {
		t.Errorf("reference r2 out of (0, 1): %f", r2)
	}
	if rmse := RMSE(reference, l); rmse <= 0 {
		t.Errorf("reference rmse: %f", rmse)
	}
}

func TestFit_MatchesStatsRegression(t *testing.T) {
	l, err := Fit(reference)
	if err != nil {
		t.Fatal(err)
	}
	var series stats.Series
	for _, p := range reference {
		series = append(series, stats.Coordinate{X: p.X, Y: p.Y})
	}
	fitted, err := stats.LinearRegression(series)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range fitted {
		if !closeTo(l.At(reference[i].X), c.Y, 1e-9) {
			t.Errorf("at x=%f: expected %f got %f", reference[i].X, c.Y, l.At(reference[i].X))
		}
	}
}
