package logic

import (
	"github.com/harbdog/raycaster-go/geom"

	"gloom/geometry"
	"gloom/model"
)

type ProjectileResult struct {
	Damaged  bool
	GameOver bool
	Removed  int
}

// UpdateProjectiles moves every projectile and resolves wall and player
// impacts. At most one projectile strikes the player per call; any other
// projectile in range keeps flying and may hit on a later tick.
func UpdateProjectiles(w *model.World) ProjectileResult {
	var res ProjectileResult
	p := &w.State.Player

	kept := w.Projectiles[:0]
	for _, proj := range w.Projectiles {
		line := geom.LineFromAngle(proj.Position.X, proj.Position.Y, proj.Angle, proj.Speed)
		proj.Position.X, proj.Position.Y = line.X2, line.Y2

		if !w.Map.Walkable(proj.Position.X, proj.Position.Y) {
			res.Removed++
			continue
		}

		if !res.Damaged && geometry.Distance(proj.Position.X, proj.Position.Y, p.Position.X, p.Position.Y) < ProjectileHitRange {
			d := ApplyDamage(p, ProjectileDamage)
			res.Damaged = true
			res.Removed++
			if d.Fatal {
				res.GameOver = true
			}
			continue
		}

		kept = append(kept, proj)
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept

	return res
}
