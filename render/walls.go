package render

import (
	"math"

	"gloom/model"
)

const (
	rayStep     = 0.1
	rayMaxDepth = 20.0
	wallScale   = 0.5
)

// Background clears the frame and paints the ceiling and floor halves.
func Background(s Surface) {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)
	s.FillRect(0, 0, fw, fh, colorBlack)
	s.FillRect(0, 0, fw, fh/2, colorCeiling)
	s.FillRect(0, fh/2, fw, fh/2, colorFloor)
}

// CastRay marches from (x, y) along angle until it enters a wall tile or
// leaves the grid, returning the raw travelled distance.
func CastRay(m model.TileMap, x, y, angle float64) float64 {
	dx, dy := math.Cos(angle), math.Sin(angle)
	dist := 0.0
	for dist < rayMaxDepth {
		dist += rayStep
		tx := int(math.Floor(x + dx*dist))
		ty := int(math.Floor(y + dy*dist))
		if m.Blocked(tx, ty) {
			break
		}
	}
	return dist
}

// Walls draws one shaded column per pixel of surface width.
func Walls(s Surface, w *model.World) {
	width, height := s.Size()
	fh := float64(height)
	p := w.State.Player

	for i := 0; i < width; i++ {
		rayAngle := p.Angle - model.FOV/2 + model.FOV*float64(i)/float64(width)
		dist := CastRay(w.Map, p.Position.X, p.Position.Y, rayAngle)
		dist *= math.Cos(rayAngle - p.Angle)

		wallHeight := (fh / dist) * wallScale
		top := fh/2 - wallHeight/2
		s.FillRect(float64(i), top, 1, wallHeight, wallShade(dist))
	}
}
