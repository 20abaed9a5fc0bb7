// Package render draws a world onto a Surface. Every function here reads the
// world and never writes to it.
package render

import "image/color"

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

type Point struct {
	X, Y float64
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Font struct {
	Size float64
	Bold bool
}

// Surface is a fixed-size raster target. Text is positioned by its baseline.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, lineWidth float64, clr color.Color)
	StrokePath(points []Point, lineWidth float64, clr color.Color)
	FillPolygon(points []Point, clr color.Color)
	FillText(text string, x, y float64, font Font, align Align, clr color.Color)
}
