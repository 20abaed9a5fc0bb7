package render

import (
	"math"
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"gloom/geometry"
	"gloom/model"
)

const (
	// SpriteRange is the render cutoff for every billboard. It is wider than
	// the player's shot range on purpose.
	SpriteRange = 10.0

	spriteScale     = 0.3
	projectileScale = 0.1
	particleCount   = 8
	particleSize    = 4.0
	pulsePeriod     = 200 * time.Millisecond
)

// Sight is the visibility test used to occlude billboards.
type Sight interface {
	LineOfSight(x1, y1, x2, y2 float64) bool
}

// projection places a world point on screen as a billboard of size scale.
type projection struct {
	x, y, size float64
}

func project(s Surface, p model.Player, pos geom.Vector2, scale float64) (projection, bool) {
	dist := geometry.Distance(p.Position.X, p.Position.Y, pos.X, pos.Y)
	if dist >= SpriteRange {
		return projection{}, false
	}

	halfFOV := model.FOV / 2
	offset := geometry.NormalizeAngle(geometry.AngleTo(p.Position.X, p.Position.Y, pos.X, pos.Y) - p.Angle)
	if math.Abs(offset) >= halfFOV {
		return projection{}, false
	}

	w, h := s.Size()
	fw, fh := float64(w), float64(h)
	size := (fh / dist) * scale
	return projection{
		x:    fw/2 + (offset/halfFOV)*(fw/2) - size/2,
		y:    fh/2 - size/2,
		size: size,
	}, true
}

// Enemies draws living enemies as boxes with eyes and exploding ones as an
// expanding blast with ejected particles. Enemies behind walls are skipped.
func Enemies(s Surface, w *model.World, sight Sight) {
	p := w.State.Player
	for _, e := range w.Enemies {
		pr, ok := project(s, p, e.Position, spriteScale)
		if !ok || !sight.LineOfSight(p.Position.X, p.Position.Y, e.Position.X, e.Position.Y) {
			continue
		}
		if e.Exploding {
			drawExplosion(s, pr, e.ExplosionFrame)
			continue
		}

		s.FillRect(pr.x, pr.y, pr.size, pr.size, colorRed)
		eye := pr.size * 0.2
		s.FillRect(pr.x+pr.size*0.2, pr.y+pr.size*0.2, eye, eye, colorYellow)
		s.FillRect(pr.x+pr.size*0.6, pr.y+pr.size*0.2, eye, eye, colorYellow)
	}
}

func drawExplosion(s Surface, pr projection, frame int) {
	blast := pr.size * (1 + float64(frame)/10)
	cx := pr.x + pr.size/2
	cy := pr.y + pr.size/2

	s.FillCircle(cx, cy, blast/2, explosionColor(frame))

	spread := float64(frame) * 3
	for i := 0; i < particleCount; i++ {
		a := 2 * math.Pi * float64(i) / particleCount
		s.FillRect(cx+math.Cos(a)*spread, cy+math.Sin(a)*spread, particleSize, particleSize, colorRed)
	}
}

// Projectiles draws in-flight shots. They are not occluded by walls.
func Projectiles(s Surface, w *model.World) {
	p := w.State.Player
	for _, proj := range w.Projectiles {
		pr, ok := project(s, p, proj.Position, projectileScale)
		if !ok {
			continue
		}
		cx, cy := pr.x+pr.size/2, pr.y+pr.size/2
		s.FillCircle(cx, cy, pr.size/2, colorYellow)
		s.FillCircle(cx, cy, pr.size/3, colorRed)
	}
}

// Pickup draws the armor drop with a pulsing glow while it is active and
// visible.
func Pickup(s Surface, w *model.World, sight Sight, now time.Time) {
	if !w.Pickup.Active {
		return
	}
	p := w.State.Player
	pos := w.Pickup.Position
	pr, ok := project(s, p, pos, spriteScale)
	if !ok || !sight.LineOfSight(p.Position.X, p.Position.Y, pos.X, pos.Y) {
		return
	}

	phase := float64(now.UnixMilli()) / float64(pulsePeriod.Milliseconds())
	pulse := math.Sin(phase)*0.2 + 0.8
	s.FillRect(pr.x, pr.y, pr.size, pr.size, withAlpha(colorArmor, pulse))
	s.FillRect(pr.x+pr.size*0.2, pr.y+pr.size*0.2, pr.size*0.6, pr.size*0.6, colorArmor)
	s.FillText("A", pr.x+pr.size/2, pr.y+pr.size*0.65, Font{Size: pr.size * 0.4}, AlignCenter, colorWhite)
}
