// Package logic advances the world by one simulation tick. Every function
// takes the world by pointer, mutates it in place and reports what happened
// through a small result struct.
package logic

import "time"

// Rand supplies uniform values in [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Sight answers line-of-sight queries against the tile map.
type Sight interface {
	LineOfSight(x1, y1, x2, y2 float64) bool
}

const (
	EnemySightRange    = 6.0
	EnemyFireChance    = 0.03
	EnemyFireSpread    = 0.4
	EnemyFireCooldown  = 300
	EnemyWanderChance  = 0.02
	EnemyWanderSpread  = 1.0
	EnemyMoveSpeed     = 0.02
	ExplosionFrames    = 20
	ProjectileSpeed    = 0.04
	ProjectileHitRange = 0.3
	ProjectileDamage   = 10

	ShotRange     = 8.0
	ShotTolerance = 0.15
	KillScore     = 100
	RecoilFrames  = 10
	FlashFrames   = 5

	CollisionRange  = 0.4
	CollisionDamage = 10
	CollisionPush   = 0.3
	CollisionWindow = 1000 * time.Millisecond

	DamageFlashFrames = 10
)
