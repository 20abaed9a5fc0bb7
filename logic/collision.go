package logic

import (
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"gloom/geometry"
	"gloom/model"
)

type CollisionResult struct {
	Damaged  bool
	GameOver bool
	Pushed   bool
}

// CheckEnemyCollision applies contact damage from enemies touching the player.
// Damage is debounced on wall-clock time so a stuttering frame rate cannot
// apply it twice inside CollisionWindow.
func CheckEnemyCollision(w *model.World, now time.Time) CollisionResult {
	var res CollisionResult
	s := &w.State
	p := &s.Player

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Exploding {
			continue
		}

		dx := e.Position.X - p.Position.X
		dy := e.Position.Y - p.Position.Y
		if geometry.Distance(e.Position.X, e.Position.Y, p.Position.X, p.Position.Y) >= CollisionRange {
			continue
		}
		if !s.LastCollision.IsZero() && now.Sub(s.LastCollision) < CollisionWindow {
			continue
		}

		d := ApplyDamage(p, CollisionDamage)
		res.Damaged = true
		s.LastCollision = now

		push := geometry.AngleTo(0, 0, -dx, -dy)
		to := geom.LineFromAngle(p.Position.X, p.Position.Y, push, CollisionPush)
		if w.Map.Interior(to.X2, to.Y2) && w.Map.Walkable(to.X2, to.Y2) {
			p.Position.X, p.Position.Y = to.X2, to.Y2
			res.Pushed = true
		}

		if d.Fatal {
			res.GameOver = true
		}
	}

	return res
}

// CheckVictory reports whether the roster has been cleared on a game that
// has not already ended.
func CheckVictory(w *model.World) bool {
	return len(w.Enemies) == 0 && !w.State.Over
}
