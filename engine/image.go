// Package engine is a software rasterizer. Image implements render.Surface
// on a plain RGBA pixel buffer so frames can be drawn without a GPU window.
package engine

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"gloom/render"
)

type Image struct {
	pixels []byte
	width  int
	height int
	fonts  *Fonts
}

var _ render.Surface = (*Image)(nil)

// NewImage allocates a transparent width x height image using the default
// Go Mono faces for text.
func NewImage(width, height int) (*Image, error) {
	fonts, err := DefaultFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}
	return NewImageWithFonts(width, height, fonts), nil
}

// NewImageWithFonts allocates an image that draws text with fonts. A nil
// fonts disables text.
func NewImageWithFonts(width, height int, fonts *Fonts) *Image {
	return &Image{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
		fonts:  fonts,
	}
}

func (img *Image) Size() (int, int) {
	return img.width, img.height
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// RGBA exposes the pixel buffer as an *image.RGBA without copying.
func (img *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    img.pixels,
		Stride: img.width * 4,
		Rect:   img.Bounds(),
	}
}

func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	i := (y*img.width + x) * 4
	return color.RGBA{img.pixels[i], img.pixels[i+1], img.pixels[i+2], img.pixels[i+3]}
}

// Set overwrites a pixel with no blending.
func (img *Image) Set(x, y int, c color.Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*img.width + x) * 4
	img.pixels[i] = byte(r >> 8)
	img.pixels[i+1] = byte(g >> 8)
	img.pixels[i+2] = byte(b >> 8)
	img.pixels[i+3] = byte(a >> 8)
}

// Clear fills the whole image with c.
func (img *Image) Clear(c color.Color) {
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			img.Set(x, y, c)
		}
	}
}

// blend composites c over the pixel at (x, y).
func (img *Image) blend(x, y int, c color.NRGBA) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || c.A == 0 {
		return
	}
	i := (y*img.width + x) * 4
	if c.A == 255 {
		img.pixels[i], img.pixels[i+1], img.pixels[i+2], img.pixels[i+3] = c.R, c.G, c.B, 255
		return
	}

	sa := uint32(c.A)
	da := uint32(img.pixels[i+3])
	inv := 255 - sa
	outA := sa + da*inv/255
	if outA == 0 {
		return
	}
	mix := func(s byte, d byte) byte {
		return byte((uint32(s)*sa + uint32(d)*da*inv/255) / outA)
	}
	img.pixels[i] = mix(c.R, img.pixels[i])
	img.pixels[i+1] = mix(c.G, img.pixels[i+1])
	img.pixels[i+2] = mix(c.B, img.pixels[i+2])
	img.pixels[i+3] = byte(outA)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// span converts a continuous interval into the pixel indexes whose centers it
// covers, clipped to [0, limit).
func span(from, to float64, limit int) (int, int) {
	lo := int(math.Ceil(from - 0.5))
	hi := int(math.Ceil(to - 0.5))
	return max(lo, 0), min(hi, limit)
}

func (img *Image) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c := toNRGBA(clr)
	x0, x1 := span(x, x+w, img.width)
	y0, y1 := span(y, y+h, img.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			img.blend(px, py, c)
		}
	}
}

func (img *Image) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	half := lineWidth / 2
	img.FillRect(x-half, y-half, w+lineWidth, lineWidth, clr)
	img.FillRect(x-half, y+h-half, w+lineWidth, lineWidth, clr)
	img.FillRect(x-half, y+half, lineWidth, h-lineWidth, clr)
	img.FillRect(x+w-half, y+half, lineWidth, h-lineWidth, clr)
}

func (img *Image) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	c := toNRGBA(clr)
	x0, x1 := span(cx-r, cx+r, img.width)
	y0, y1 := span(cy-r, cy+r, img.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.blend(px, py, c)
			}
		}
	}
}

func (img *Image) StrokeCircle(cx, cy, r, lineWidth float64, clr color.Color) {
	c := toNRGBA(clr)
	half := lineWidth / 2
	outer := r + half
	x0, x1 := span(cx-outer, cx+outer, img.width)
	y0, y1 := span(cy-outer, cy+outer, img.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			if math.Abs(d-r) <= half {
				img.blend(px, py, c)
			}
		}
	}
}

func (img *Image) StrokePath(points []render.Point, lineWidth float64, clr color.Color) {
	if len(points) == 1 {
		img.FillCircle(points[0].X, points[0].Y, lineWidth/2, clr)
		return
	}
	for i := 1; i < len(points); i++ {
		img.StrokeLine(points[i-1], points[i], lineWidth, clr)
	}
}

// StrokeLine paints every pixel whose center lies within lineWidth/2 of the
// segment a-b.
func (img *Image) StrokeLine(a, b render.Point, lineWidth float64, clr color.Color) {
	c := toNRGBA(clr)
	half := lineWidth / 2
	x0, x1 := span(min(a.X, b.X)-half, max(a.X, b.X)+half, img.width)
	y0, y1 := span(min(a.Y, b.Y)-half, max(a.Y, b.Y)+half, img.height)

	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			t := 0.0
			if lenSq > 0 {
				t = ((fx-a.X)*dx + (fy-a.Y)*dy) / lenSq
				t = max(0, min(1, t))
			}
			if math.Hypot(fx-(a.X+t*dx), fy-(a.Y+t*dy)) <= half {
				img.blend(px, py, c)
			}
		}
	}
}

// FillPolygon fills the polygon with the even-odd rule, sampling pixel
// centers one scanline at a time.
func (img *Image) FillPolygon(points []render.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	c := toNRGBA(clr)

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	y0, y1 := span(minY, maxY, img.height)

	xs := make([]float64, 0, len(points))
	for py := y0; py < y1; py++ {
		fy := float64(py) + 0.5
		xs = xs[:0]
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			xs = append(xs, a.X+(fy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := span(xs[i], xs[i+1], img.width)
			for px := x0; px < x1; px++ {
				img.blend(px, py, c)
			}
		}
	}
}

// Average returns the mean color of the pixels inside r.
func (img *Image) Average(r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Bounds())
	n := uint32(r.Dx() * r.Dy())
	if n == 0 {
		return color.RGBA{}
	}
	var sr, sg, sb, sa uint32
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := (y*img.width + x) * 4
			sr += uint32(img.pixels[i])
			sg += uint32(img.pixels[i+1])
			sb += uint32(img.pixels[i+2])
			sa += uint32(img.pixels[i+3])
		}
	}
	return color.RGBA{uint8(sr / n), uint8(sg / n), uint8(sb / n), uint8(sa / n)}
}
