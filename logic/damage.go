package logic

import "gloom/model"

type Damage struct {
	Absorbed int
	Taken    int
	Fatal    bool
}

// ApplyDamage spends armor before health and clamps health at zero.
func ApplyDamage(p *model.Player, amount int) Damage {
	var d Damage
	if p.Armor > 0 {
		d.Absorbed = min(p.Armor, amount)
		p.Armor -= d.Absorbed
		amount -= d.Absorbed
	}

	d.Taken = amount
	p.Health -= amount
	if !p.Alive() {
		p.Health = 0
		d.Fatal = true
	}
	return d
}
