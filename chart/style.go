package chart

import (
	"image/color"
	"strconv"
	"strings"
	"sync"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	W1 = vg.Length(1)
	W2 = vg.Length(2)
	W4 = vg.Length(4)
)

var (
	lineWidth = W2
	lineColor = 0
	lineLock  = sync.Mutex{}

	Colors = []color.Color{
		Color("247BA0"), // blue
		Color("F25F5C"), // coral
		Color("70C1B3"), // teal
		Color("50514F"), // slate
		Color("FFE066"), // yellow
	}

	Red   = Color("ff3300")
	Green = Color("339933")
)

func Color(hash string) color.Color {
	if strings.HasPrefix(hash, "#") {
		hash = hash[1:]
	}
	if len(hash) != 6 && len(hash) != 8 {
		return color.Black
	}
	var c color.RGBA
	c.A = 255
	cs := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(hash); i += 2 {
		ui, err := strconv.ParseUint(hash[i:i+2], 16, 8)
		if err != nil {
			return c
		}
		*cs[i/2] = uint8(ui)
	}
	return c
}

func SetLineWidth(length vg.Length) {
	lineLock.Lock()
	lineWidth = length
	lineLock.Unlock()
}

func CurrentLineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color: Colors[lineColor],
		Width: lineWidth,
	}
}

func NextLineStyle() draw.LineStyle {
	lineLock.Lock()
	d := draw.LineStyle{
		Color: Colors[lineColor],
		Width: lineWidth,
	}
	lineColor = (lineColor + 1) % len(Colors)
	lineLock.Unlock()
	return d
}

func NextGlyphStyle() draw.GlyphStyle {
	lineLock.Lock()
	d := draw.GlyphStyle{
		Color:  Colors[lineColor],
		Radius: 3,
		Shape:  draw.CircleGlyph{},
	}
	lineColor = (lineColor + 1) % len(Colors)
	lineLock.Unlock()
	return d
}

func ResetLineColor() {
	lineLock.Lock()
	lineColor = 0
	lineLock.Unlock()
}
