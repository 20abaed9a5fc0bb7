package geometry

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// NormalizeAngle maps a into the half-open range (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleTo returns the heading from (x1, y1) toward (x2, y2).
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return geom.Distance(x1, y1, x2, y2)
}
