package main

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"gloom/engine"
)

// halfBlock shows two vertically stacked pixels per cell: the glyph's
// foreground is the upper one, the background the lower one.
const halfBlock = '▀'

// terminal presents frames on a tcell screen by averaging the image down to
// the screen's cell grid.
type terminal struct {
	screen tcell.Screen
}

func newTerminal(s tcell.Screen) *terminal {
	return &terminal{screen: s}
}

func (t *terminal) Present(img *engine.Image) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	w, h := img.Size()
	halves := rows * 2

	for y := 0; y < rows; y++ {
		top := (2 * y) * h / halves
		mid := (2*y + 1) * h / halves
		bottom := (2*y + 2) * h / halves
		for x := 0; x < cols; x++ {
			left := x * w / cols
			right := (x + 1) * w / cols

			upper := img.Average(image.Rect(left, top, right, mid))
			lower := img.Average(image.Rect(left, mid, right, bottom))
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}
