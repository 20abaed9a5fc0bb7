package render

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"

	"gloom/model"
)

const (
	minimapSize   = 150.0
	minimapOffset = 15.0
)

var minimapBacking = color.NRGBA{0, 0, 0, 128}

// Minimap draws the top-down inset in the upper left corner.
func Minimap(s Surface, w *model.World) {
	cell := minimapSize / float64(w.Map.Height())

	s.FillRect(minimapOffset, minimapOffset, minimapSize, minimapSize, minimapBacking)

	for y, row := range w.Map {
		for x, tile := range row {
			if tile == model.Wall {
				s.FillRect(minimapOffset+float64(x)*cell, minimapOffset+float64(y)*cell, cell, cell, colorWhite)
			}
		}
	}

	marker := func(pos geom.Vector2, size float64, clr color.Color) {
		s.FillRect(minimapOffset+pos.X*cell-size/2, minimapOffset+pos.Y*cell-size/2, size, size, clr)
	}

	marker(w.State.Player.Position, 6, colorGreen)
	for _, e := range w.Enemies {
		if !e.Exploding {
			marker(e.Position, 6, colorRed)
		}
	}
	for _, proj := range w.Projectiles {
		marker(proj.Position, 3, colorYellow)
	}
	if w.Pickup.Active {
		marker(w.Pickup.Position, 6, colorArmor)
	}
}
