package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parse(t *testing.T, in string) Points {
	t.Helper()
	pts, err := ParseReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseReader(%q): %s", in, err)
	}
	return pts
}

func pointsEq(t *testing.T, expected, got Points) {
	t.Helper()
	if len(expected) != len(got) {
		t.Errorf("expected %v got %v", expected, got)
		return
	}
	for i := range expected {
		if expected[i] != got[i] {
			t.Errorf("at index %d: expected %v got %v", i, expected[i], got[i])
		}
	}
}

func TestParseReader(t *testing.T) {
	pointsEq(t, Points{{1, 2}, {3, 6}}, parse(t, "1,2\n3,6\n"))
	pointsEq(t, Points{{1, 2}, {3, 6}}, parse(t, "1 2 3 6"))
	pointsEq(t, Points{{1, 2}, {3, 6}}, parse(t, "x=1 y=2; x=3 y=6;"))
	pointsEq(t, Points{{1.5, -2.25}}, parse(t, "1.5;-2.25"))
	pointsEq(t, Points{{-1, -2}}, parse(t, "-1,-2"))
	// runs of delimiters collapse
	pointsEq(t, Points{{1, 2}}, parse(t, ",,1,, \t 2,,"))
	// no trailing delimiter, last token still counts
	pointsEq(t, Points{{1, 2}}, parse(t, "1 2"))
	// trailing unpaired x is dropped
	pointsEq(t, Points{{1, 2}}, parse(t, "1 2 3"))
	// empty input
	pointsEq(t, nil, parse(t, ""))
	pointsEq(t, nil, parse(t, "no numbers here"))
}

func TestParseReader_Errors(t *testing.T) {
	if _, err := ParseReader(strings.NewReader("1..2 3")); err == nil {
		t.Errorf("expected parse error on 1..2")
	}
	if _, err := ParseReader(strings.NewReader("1 2-3")); err == nil {
		t.Errorf("expected parse error on 2-3")
	}
	long := strings.Repeat("1", MaxTokenLen+1)
	_, err := ParseReader(strings.NewReader(long))
	if !errors.Is(err, ErrTokenTooLong) {
		t.Errorf("expected ErrTokenTooLong, got %v", err)
	}
	// exactly MaxTokenLen bytes is still a token
	exact := strings.Repeat("1", MaxTokenLen)
	if _, err = ParseReader(strings.NewReader(exact + " 2")); err != nil {
		t.Errorf("token of MaxTokenLen bytes should parse: %s", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	err := os.WriteFile(path, []byte("43,99\n21,65\n25,79\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	src := FileSource{Path: path}
	pts, err := src.Load()
	if err != nil {
		t.Fatal(err)
	}
	pointsEq(t, Points{{43, 99}, {21, 65}, {25, 79}}, pts)
	if src.String() != "file:"+path {
		t.Errorf("String: %s", src)
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope")}.Load()
	if err == nil {
		t.Errorf("expected error on missing file")
	}
	if !strings.Contains(err.Error(), "could not read data file") {
		t.Errorf("unexpected error: %s", err)
	}
}
