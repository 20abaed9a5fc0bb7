package render

import (
	"time"

	"gloom/model"
)

// Frame composes a full picture of w: the 3D view, minimap, billboards,
// weapon, HUD, damage flash and whichever overlay the game state calls for.
// It reads the feedback counters but leaves decrementing them to the caller.
func Frame(s Surface, w *model.World, sight Sight, now time.Time) {
	p := w.State.Player

	Background(s)
	Walls(s, w)
	Minimap(s, w)
	Enemies(s, w, sight)
	Projectiles(s, w)
	Pickup(s, w, sight, now)
	Weapon(s, p)
	Crosshair(s)
	HUD(s, w)
	DamageFlash(s, p)

	if !w.State.Started {
		StartScreen(s)
	}
	if w.State.Over {
		GameOverScreen(s, p)
	}
}
