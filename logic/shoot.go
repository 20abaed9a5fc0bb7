package logic

import (
	"math"

	"gloom/geometry"
	"gloom/model"
)

type ShotResult struct {
	Hits  int
	Kills int
	Score int
}

// Shoot resolves one trigger pull along the player's heading. Every live
// enemy inside ShotRange and within ShotTolerance of the heading is hit.
func Shoot(w *model.World) ShotResult {
	var res ShotResult
	p := &w.State.Player

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Exploding {
			continue
		}

		dist := geometry.Distance(p.Position.X, p.Position.Y, e.Position.X, e.Position.Y)
		if dist >= ShotRange {
			continue
		}

		angleTo := geometry.AngleTo(p.Position.X, p.Position.Y, e.Position.X, e.Position.Y)
		if math.Abs(geometry.NormalizeAngle(angleTo-p.Angle)) >= ShotTolerance {
			continue
		}

		res.Hits++
		e.Health--
		if e.Health <= 0 {
			e.Explode()
			res.Kills++
			res.Score += KillScore
		}
	}

	p.Score += res.Score
	p.Recoil = RecoilFrames
	p.MuzzleFlash = FlashFrames
	return res
}
