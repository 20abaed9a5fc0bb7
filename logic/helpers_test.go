package logic

import (
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"gloom/model"
)

// seqRand replays vals in order and repeats the last one once exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.99
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// idleRand never fires and never wanders.
func idleRand() *seqRand { return &seqRand{vals: []float64{0.99}} }

type fixedSight bool

func (s fixedSight) LineOfSight(_, _, _, _ float64) bool { return bool(s) }

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestWorld() *model.World {
	w := model.NewWorld()
	w.State.Started = true
	w.State.ArmorDropTime = epoch
	return w
}

func at(x, y float64) geom.Vector2 { return geom.Vector2{X: x, Y: y} }
