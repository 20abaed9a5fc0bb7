package logic

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"gloom/geometry"
	"gloom/model"
)

type EnemyResult struct {
	Fired   int
	Removed int
}

// UpdateEnemies ages explosions and runs the fire, wander and walk behavior
// of every live enemy.
func UpdateEnemies(w *model.World, sight Sight, rng Rand) EnemyResult {
	var res EnemyResult
	player := w.State.Player.Position

	kept := w.Enemies[:0]
	for i := range w.Enemies {
		e := w.Enemies[i]

		if e.Exploding {
			e.ExplosionFrame++
			if e.ExplosionFrame > ExplosionFrames {
				res.Removed++
				continue
			}
			kept = append(kept, e)
			continue
		}

		if e.ShootCooldown > 0 {
			e.ShootCooldown--
		}

		dist := geometry.Distance(e.Position.X, e.Position.Y, player.X, player.Y)
		angleToPlayer := geometry.AngleTo(e.Position.X, e.Position.Y, player.X, player.Y)
		visible := sight.LineOfSight(e.Position.X, e.Position.Y, player.X, player.Y)

		if dist < EnemySightRange && visible && e.ShootCooldown == 0 && rng.Float64() < EnemyFireChance {
			spread := (rng.Float64() - 0.5) * EnemyFireSpread
			w.Projectiles = append(w.Projectiles,
				model.NewProjectile(e.Position.X, e.Position.Y, angleToPlayer+spread, ProjectileSpeed))
			e.ShootCooldown = EnemyFireCooldown
			res.Fired++
		}

		if rng.Float64() < EnemyWanderChance {
			e.Angle += (rng.Float64() - 0.5) * EnemyWanderSpread
		}

		step := geom.LineFromAngle(e.Position.X, e.Position.Y, e.Angle, EnemyMoveSpeed)
		if w.Map.Interior(step.X2, step.Y2) && w.Map.Walkable(step.X2, step.Y2) {
			e.Position.X, e.Position.Y = step.X2, step.Y2
		} else {
			e.Angle += math.Pi/2 + (rng.Float64() - 0.5)
		}

		kept = append(kept, e)
	}
	clear(w.Enemies[len(kept):])
	w.Enemies = kept

	return res
}
