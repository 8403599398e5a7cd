package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// MaxTokenLen bounds a single numeric token, longer runs abort the parse.
const MaxTokenLen = 256

// ErrTokenTooLong reports a numeric token exceeding MaxTokenLen.
var ErrTokenTooLong = errors.New("numeric token too long")

// FileSource tokenizes a file byte by byte: digits, '.' and '-'
// accumulate into the current token, any other byte ends it. Completed
// tokens alternate x then y, every full pair appends a point.
type FileSource struct {
	Path string
}

func (s FileSource) String() string {
	return fmt.Sprintf("file:%s", s.Path)
}

func (s FileSource) Load() (Points, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read data file %q: %w", s.Path, err)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader runs the byte-level tokenizer over r.
func ParseReader(r io.Reader) (Points, error) {
	var (
		pts    Points
		tok    = make([]byte, 0, MaxTokenLen)
		x      float64
		haveX  bool
		offset int64
	)

	flush := func() error {
		if len(tok) == 0 {
			return nil
		}
		v, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return fmt.Errorf("bad value %q at byte %d: %w", tok, offset-int64(len(tok)), err)
		}
		if haveX {
			pts = append(pts, Point{x, v})
			haveX = false
		} else {
			x, haveX = v, true
		}
		tok = tok[:0]
		return nil
	}

	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		offset++
		if isTokenByte(c) {
			if len(tok) >= MaxTokenLen {
				return nil, fmt.Errorf("at byte %d: %w", offset, ErrTokenTooLong)
			}
			tok = append(tok, c)
			continue
		}
		if err = flush(); err != nil {
			return nil, err
		}
	}
	// input need not end in a delimiter
	if err := flush(); err != nil {
		return nil, err
	}
	if haveX && Debug {
		log.Printf("dataset: dropping unpaired x value %f", x)
	}
	return pts, nil
}

func isTokenByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}
