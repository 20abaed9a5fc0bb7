package model

import "github.com/harbdog/raycaster-go/geom"

type Projectile struct {
	Position geom.Vector2
	Angle    float64
	Speed    float64
}

func NewProjectile(x, y, angle, speed float64) Projectile {
	return Projectile{
		Position: geom.Vector2{X: x, Y: y},
		Angle:    angle,
		Speed:    speed,
	}
}
