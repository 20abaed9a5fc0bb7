package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"gloom/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type faceKey struct {
	size float64
	bold bool
}

// screen draws render output onto an ebiten image.
type screen struct {
	dst *ebiten.Image

	regular, bold *text.GoTextFaceSource
	faces         map[faceKey]*text.GoTextFace

	vs []ebiten.Vertex
	is []uint16
}

var _ render.Surface = (*screen)(nil)

func newScreen() (*screen, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &screen{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// target points the screen at the image for the next frame.
func (s *screen) target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screen) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *screen) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), clr, false)
}

func (s *screen) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *screen) StrokeCircle(cx, cy, r, lineWidth float64, clr color.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(lineWidth), clr, true)
}

func (s *screen) StrokePath(points []render.Point, lineWidth float64, clr color.Color) {
	if len(points) < 2 {
		return
	}
	path := pathOf(points)
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(lineWidth),
		LineJoin: vector.LineJoinMiter,
		LineCap:  vector.LineCapButt,
	})
	s.drawVertices(clr, ebiten.FillAll)
}

func (s *screen) FillPolygon(points []render.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	path := pathOf(points)
	path.Close()
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawVertices(clr, ebiten.EvenOdd)
}

func (s *screen) FillText(str string, x, y float64, font render.Font, align render.Align, clr color.Color) {
	face := s.face(font)

	op := &text.DrawOptions{}
	switch align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	// text.Draw positions the top of the line; y is the baseline.
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, face, op)
}

func (s *screen) face(font render.Font) *text.GoTextFace {
	key := faceKey{size: font.Size, bold: font.Bold}
	if f, ok := s.faces[key]; ok {
		return f
	}
	src := s.regular
	if font.Bold {
		src = s.bold
	}
	f := &text.GoTextFace{Source: src, Size: font.Size}
	s.faces[key] = f
	return f
}

func (s *screen) drawVertices(clr color.Color, rule ebiten.FillRule) {
	r, g, b, a := clr.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.FillRule = rule
	op.AntiAlias = true
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

func pathOf(points []render.Point) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	return &path
}
