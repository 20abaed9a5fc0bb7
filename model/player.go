package model

import "github.com/harbdog/raycaster-go/geom"

type Player struct {
	Position geom.Vector2
	Angle    float64
	Health   int
	Armor    int
	Score    int

	// visual feedback countdowns, decremented once per rendered frame
	Recoil      int
	MuzzleFlash int
	ScreenFlash int
}

func NewPlayer() Player {
	return Player{
		Position: geom.Vector2{X: PlayerStartX, Y: PlayerStartY},
		Angle:    0,
		Health:   MaxHealth,
	}
}

func (p *Player) Alive() bool {
	return p.Health > 0
}

func (p *Player) AddArmor(amount int) {
	p.Armor = int(geom.Clamp(float64(p.Armor+amount), 0, MaxArmor))
}

// DecayFeedback counts each visual feedback timer down by one frame.
func (p *Player) DecayFeedback() {
	if p.Recoil > 0 {
		p.Recoil--
	}
	if p.MuzzleFlash > 0 {
		p.MuzzleFlash--
	}
	if p.ScreenFlash > 0 {
		p.ScreenFlash--
	}
}
