package logic

import (
	"time"

	"github.com/google/uuid"

	"gloom/model"
)

type StepResult struct {
	Enemies     EnemyResult
	Projectiles ProjectileResult
	Collision   CollisionResult
	Victory     bool
}

func (r StepResult) Damaged() bool {
	return r.Projectiles.Damaged || r.Collision.Damaged
}

func (r StepResult) GameOver() bool {
	return r.Projectiles.GameOver || r.Collision.GameOver || r.Victory
}

// Step runs one simulation tick: enemies, projectiles, contact damage and
// the victory check, then applies the resulting flags to the game state.
func Step(w *model.World, sight Sight, rng Rand, now time.Time) StepResult {
	var res StepResult

	res.Enemies = UpdateEnemies(w, sight, rng)
	res.Projectiles = UpdateProjectiles(w)
	res.Collision = CheckEnemyCollision(w, now)
	if !res.Projectiles.GameOver && !res.Collision.GameOver {
		res.Victory = CheckVictory(w)
	}

	if res.Damaged() {
		w.State.Player.ScreenFlash = DamageFlashFrames
	}
	if res.GameOver() {
		w.State.Over = true
	}
	return res
}

// Reset restores the session-start world and stamps the armor drop timer
// with now.
func Reset(w *model.World, now time.Time) {
	w.Enemies = model.InitialEnemies()
	w.Projectiles = nil
	w.Pickup = model.NewArmorPickup()
	w.State = model.GameState{
		Session:       uuid.NewString(),
		Started:       true,
		Player:        model.NewPlayer(),
		ArmorDropTime: now,
	}
}
