// Package driver runs the game: it keeps the pressed-key set, throttles
// frames to a fixed cadence, and advances and renders the world.
package driver

import (
	"log/slog"
	"math/rand"
	"time"

	"gloom/geometry"
	"gloom/logic"
	"gloom/model"
	"gloom/render"
)

// DefaultFrameBudget caps the cadence at 60 frames per second.
const DefaultFrameBudget = time.Second / 60

type Options struct {
	Rand        logic.Rand
	Logger      *slog.Logger
	FrameBudget time.Duration

	// OnGameOver fires once each time a session ends.
	OnGameOver func(Summary)
	// OnExit fires once from Close.
	OnExit func(Summary)
}

type Driver struct {
	world  *model.World
	sight  *geometry.SightCache
	rng    logic.Rand
	log    *slog.Logger
	budget time.Duration

	pressed     keySet
	fireLatched bool
	last        time.Time
	closed      bool

	onGameOver func(Summary)
	onExit     func(Summary)
}

func New(opts Options) *Driver {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FrameBudget <= 0 {
		opts.FrameBudget = DefaultFrameBudget
	}

	w := model.NewWorld()
	d := &Driver{
		world:      w,
		sight:      geometry.NewSightCache(w.Map),
		rng:        opts.Rand,
		log:        opts.Logger,
		budget:     opts.FrameBudget,
		pressed:    make(keySet),
		onGameOver: opts.OnGameOver,
		onExit:     opts.OnExit,
	}
	d.logger().Info("driver ready", "phase", d.Phase())
	return d
}

func (d *Driver) logger() *slog.Logger {
	return d.log.With("session", d.world.State.Session)
}

func (d *Driver) Phase() Phase {
	return phaseOf(&d.world.State)
}

// World returns the live world. Callers must not hold on to it across frames.
func (d *Driver) World() *model.World {
	return d.world
}

// Snapshot returns a detached copy of the world.
func (d *Driver) Snapshot() *model.World {
	return d.world.Snapshot()
}

func (d *Driver) Summary() Summary {
	s := d.world.State
	return Summary{Session: s.Session, Score: s.Player.Score, Outcome: s.Outcome()}
}

func (d *Driver) Closed() bool {
	return d.closed
}

// KeyDown records a pressed key. Fire triggers once per press; enter starts
// or restarts the game.
func (d *Driver) KeyDown(k Key, now time.Time) {
	if d.closed {
		return
	}
	d.pressed[k] = true

	switch k {
	case KeySpace:
		if d.fireLatched {
			return
		}
		d.fireLatched = true
		if d.Phase() == Running {
			res := logic.Shoot(d.world)
			d.logger().Debug("shot", "hits", res.Hits, "kills", res.Kills, "score", d.world.State.Player.Score)
		}

	case KeyEnter:
		switch d.Phase() {
		case NotStarted:
			d.world.State.Started = true
			d.world.State.ArmorDropTime = now
			d.logger().Info("game started")
		case GameOver:
			logic.Reset(d.world, now)
			d.sight.Reset()
			d.fireLatched = false
			d.logger().Info("game restarted")
		}
	}
}

func (d *Driver) KeyUp(k Key) {
	if d.closed {
		return
	}
	delete(d.pressed, k)
	if k == KeySpace {
		d.fireLatched = false
	}
}

// Frame runs one throttled tick at time now and draws it onto s. It reports
// false when the frame was skipped, either because the budget has not
// elapsed or because the driver is closed.
func (d *Driver) Frame(now time.Time, s render.Surface) bool {
	if d.closed {
		return false
	}
	if !d.last.IsZero() {
		elapsed := now.Sub(d.last)
		if elapsed < d.budget {
			return false
		}
		d.last = now.Add(-(elapsed % d.budget))
	} else {
		d.last = now
	}

	if d.Phase() == Running {
		d.tick(now)
	}

	render.Frame(s, d.world, d.sight, now)
	d.world.State.Player.DecayFeedback()
	return true
}

func (d *Driver) tick(now time.Time) {
	w := d.world

	if res := logic.UpdatePickup(w, now); res.Dropped {
		d.logger().Debug("armor dropped")
	} else if res.Collected {
		d.logger().Debug("armor collected", "armor", w.State.Player.Armor)
	}

	if d.pressed.any(KeyW, KeyArrowUp) {
		logic.MovePlayer(w, 1)
	}
	if d.pressed.any(KeyS, KeyArrowDown) {
		logic.MovePlayer(w, -1)
	}
	if d.pressed.any(KeyA, KeyArrowLeft) {
		logic.TurnPlayer(w, -1)
	}
	if d.pressed.any(KeyD, KeyArrowRight) {
		logic.TurnPlayer(w, 1)
	}

	res := logic.Step(w, d.sight, d.rng, now)
	if res.Damaged() {
		d.logger().Debug("player damaged", "health", w.State.Player.Health, "armor", w.State.Player.Armor)
	}
	if res.GameOver() {
		d.fireLatched = false
		sum := d.Summary()
		d.logger().Info("game over", "outcome", sum.Outcome, "score", sum.Score)
		if d.onGameOver != nil {
			d.onGameOver(sum)
		}
	}
}

// Close stops the driver: later input is ignored and Frame draws nothing.
// The exit callback runs on the first call only.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	clear(d.pressed)
	d.fireLatched = false

	sum := d.Summary()
	d.logger().Info("driver closed", "score", sum.Score, "outcome", sum.Outcome)
	if d.onExit != nil {
		d.onExit(sum)
	}
}
