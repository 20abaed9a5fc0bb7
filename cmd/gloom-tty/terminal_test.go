package main

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"gloom/engine"
)

func TestPresentHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	// 8x8 image: each cell covers 2x4 pixels, striped red over blue
	img := engine.NewImageWithFonts(8, 8, nil)
	red := color.RGBA{200, 0, 0, 255}
	blue := color.RGBA{0, 0, 200, 255}
	for y := 0; y < 8; y += 4 {
		img.FillRect(0, float64(y), 8, 2, red)
		img.FillRect(0, float64(y+2), 8, 2, blue)
	}

	if err := newTerminal(screen).Present(img); err != nil {
		t.Fatal(err)
	}

	cells, w, h := screen.GetContents()
	if w != 4 || h != 2 {
		t.Fatalf("screen size = %dx%d", w, h)
	}
	for i, c := range cells {
		if len(c.Runes) != 1 || c.Runes[0] != halfBlock {
			t.Fatalf("cell %d runes = %q", i, c.Runes)
		}
		fg, bg, _ := c.Style.Decompose()
		if fg != tcell.NewRGBColor(200, 0, 0) || bg != tcell.NewRGBColor(0, 0, 200) {
			t.Errorf("cell %d colors = %v on %v", i, fg, bg)
		}
	}
}
