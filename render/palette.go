package render

import (
	"image/color"
	"math"
)

var (
	colorBlack   = color.RGBA{0, 0, 0, 255}
	colorWhite   = color.RGBA{255, 255, 255, 255}
	colorGreen   = color.RGBA{0, 255, 0, 255}
	colorRed     = color.RGBA{255, 0, 0, 255}
	colorYellow  = color.RGBA{255, 255, 0, 255}
	colorOrange  = color.RGBA{255, 136, 0, 255}
	colorArmor   = color.RGBA{0, 170, 255, 255}
	colorCeiling = color.RGBA{51, 51, 51, 255}
	colorFloor   = color.RGBA{85, 85, 85, 255}
	colorGunBody = color.RGBA{68, 68, 68, 255}
	colorBarrel  = color.RGBA{34, 34, 34, 255}
)

// withAlpha returns c at opacity a in [0, 1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// wallShade tints a wall column by distance.
func wallShade(distance float64) color.RGBA {
	b := max(0, 255-distance*30)
	return color.RGBA{R: uint8(b), G: uint8(b * 0.5), B: uint8(b * 0.5), A: 255}
}

// healthColor picks the health bar fill.
func healthColor(health int) color.RGBA {
	switch {
	case health > 50:
		return colorGreen
	case health > 25:
		return colorYellow
	default:
		return colorRed
	}
}

// explosionColor cycles white, yellow then orange as the blast ages.
func explosionColor(frame int) color.RGBA {
	switch {
	case frame < 5:
		return colorWhite
	case frame < 10:
		return colorYellow
	default:
		return colorOrange
	}
}
