package cmd

import (
	"strings"
	"testing"

	"github.com/ghedger/regression/dataset"
)

var reference = dataset.Points{
	{43, 99}, {21, 65}, {25, 79}, {42, 75}, {57, 87}, {59, 81},
}

func TestFitResult_Report(t *testing.T) {
	res, err := newFitResult(dataset.ArgsSource{}, reference, false)
	if err != nil {
		t.Fatal(err)
	}
	expected := "Best fit (OLS):\nb=65.141572\nm=0.385225\n\ny=81.000000 at x=x̄=41.166667\n"
	if got := res.Report(); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestFitResult_Digest(t *testing.T) {
	res, err := newFitResult(dataset.ArgsSource{}, reference, false)
	if err != nil {
		t.Fatal(err)
	}
	id, data, err := res.Digest()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, FitPrefix+":") {
		t.Errorf("bad id prefix: %s", id)
	}
	if res.Id != id {
		t.Errorf("id not kept on result: %q != %q", res.Id, id)
	}
	if len(data) == 0 {
		t.Errorf("empty payload")
	}
	id2, _, _ := res.Digest()
	if id != id2 {
		t.Errorf("digest not deterministic: %s != %s", id, id2)
	}
	if res.Score() != res.R2 {
		t.Errorf("score should rank by r2")
	}
}

func TestFitResult_String(t *testing.T) {
	res, err := newFitResult(dataset.FileSource{Path: "data.csv"}, reference, false)
	if err != nil {
		t.Fatal(err)
	}
	s := res.String()
	for _, want := range []string{FitPrefix + ":", "n=6", "file:data.csv", "r2="} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in %q", want, s)
		}
	}
}
