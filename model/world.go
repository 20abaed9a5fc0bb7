package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MoveSpeed = 0.05
	RotSpeed  = 0.05
	FOV       = math.Pi / 3

	MaxHealth   = 100
	MaxArmor    = 100
	EnemyHealth = 3

	PlayerStartX = 3.5
	PlayerStartY = 3.5

	PickupX      = 4.0
	PickupY      = 4.0
	PickupRadius = 0.5
	PickupArmor  = 50

	ArmorDropDelay = 15 * time.Second
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

type GameState struct {
	Session string
	Started bool
	Over    bool
	Player  Player

	LastCollision time.Time
	ArmorDropped  bool
	ArmorDropTime time.Time
}

// Outcome is victory when the game ended with the player alive.
func (s *GameState) Outcome() Outcome {
	if !s.Over {
		return OutcomeNone
	}
	if s.Player.Alive() {
		return OutcomeVictory
	}
	return OutcomeDefeat
}

// World is everything the simulation mutates. It is owned by a single
// goroutine and passed by pointer into each step.
type World struct {
	Map         TileMap
	State       GameState
	Enemies     []Enemy
	Projectiles []Projectile
	Pickup      ArmorPickup
}

func NewWorld() *World {
	return &World{
		Map: DefaultMap(),
		State: GameState{
			Session: uuid.NewString(),
			Player:  NewPlayer(),
		},
		Enemies: InitialEnemies(),
		Pickup:  NewArmorPickup(),
	}
}

// Snapshot returns a copy of w that shares nothing mutable with it.
func (w *World) Snapshot() *World {
	out := &World{
		Map:    w.Map.Clone(),
		State:  w.State,
		Pickup: w.Pickup,
	}
	if err := Clone(&out.Enemies, w.Enemies); err != nil {
		panic(err)
	}
	out.Projectiles = append([]Projectile(nil), w.Projectiles...)
	return out
}
