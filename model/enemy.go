package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

type Enemy struct {
	Position       geom.Vector2
	Angle          float64
	Health         int
	Exploding      bool
	ExplosionFrame int
	ShootCooldown  int
}

// Explode switches the enemy into its terminal explosion animation.
func (e *Enemy) Explode() {
	e.Exploding = true
	e.ExplosionFrame = 0
}

var initialRoster = []Enemy{
	{Position: geom.Vector2{X: 1.5, Y: 1.5}, Angle: 0, Health: EnemyHealth},
	{Position: geom.Vector2{X: 6.5, Y: 1.5}, Angle: math.Pi, Health: EnemyHealth},
	{Position: geom.Vector2{X: 1.5, Y: 6.5}, Angle: math.Pi / 2, Health: EnemyHealth},
}

// InitialEnemies returns a deep copy of the session-start roster.
func InitialEnemies() []Enemy {
	var roster []Enemy
	if err := Clone(&roster, initialRoster); err != nil {
		// the roster is a plain slice of exported fields
		panic(err)
	}
	return roster
}
