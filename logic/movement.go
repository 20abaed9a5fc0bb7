package logic

import (
	"github.com/harbdog/raycaster-go/geom"

	"gloom/model"
)

// MovePlayer steps the player MoveSpeed along its heading, backwards when
// dir is negative. A step into a wall or off the grid is dropped.
func MovePlayer(w *model.World, dir float64) bool {
	p := &w.State.Player

	step := model.MoveSpeed
	if dir < 0 {
		step = -step
	}
	line := geom.LineFromAngle(p.Position.X, p.Position.Y, p.Angle, step)

	if !w.Map.Walkable(line.X2, line.Y2) {
		return false
	}
	p.Position.X, p.Position.Y = line.X2, line.Y2
	return true
}

// TurnPlayer rotates the heading by RotSpeed; dir < 0 turns left.
func TurnPlayer(w *model.World, dir float64) {
	if dir < 0 {
		w.State.Player.Angle -= model.RotSpeed
	} else if dir > 0 {
		w.State.Player.Angle += model.RotSpeed
	}
}
