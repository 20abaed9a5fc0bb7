package engine

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"

	"gloom/render"
)

type faceKey struct {
	size int
	bold bool
}

// Fonts caches TrueType faces by pixel size and weight.
type Fonts struct {
	regular *truetype.Font
	bold    *truetype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// LoadFonts parses the Go Mono regular and bold faces.
func LoadFonts() (*Fonts, error) {
	regular, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

var DefaultFonts = sync.OnceValues(LoadFonts)

func (f *Fonts) Face(style render.Font) font.Face {
	key := faceKey{size: max(1, int(math.Round(style.Size))), bold: style.Bold}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face
	}
	ttf := f.regular
	if style.Bold {
		ttf = f.bold
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}

// Measure returns the advance width of text in pixels.
func (f *Fonts) Measure(text string, style render.Font) float64 {
	adv := font.MeasureString(f.Face(style), text)
	return float64(adv) / 64
}

// FillText draws text with its baseline at y. x is the left edge, center or
// right edge depending on align.
func (img *Image) FillText(text string, x, y float64, style render.Font, align render.Align, clr color.Color) {
	if img.fonts == nil || text == "" {
		return
	}

	switch align {
	case render.AlignCenter:
		x -= img.fonts.Measure(text, style) / 2
	case render.AlignRight:
		x -= img.fonts.Measure(text, style)
	}

	d := &font.Drawer{
		Dst:  img.RGBA(),
		Src:  image.NewUniform(clr),
		Face: img.fonts.Face(style),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}
