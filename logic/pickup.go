package logic

import (
	"time"

	"gloom/geometry"
	"gloom/model"
)

type PickupResult struct {
	Dropped   bool
	Collected bool
}

// UpdatePickup drops the armor pickup once ArmorDropDelay has passed since
// the session started and hands it to the player on contact.
func UpdatePickup(w *model.World, now time.Time) PickupResult {
	var res PickupResult
	s := &w.State

	if !s.ArmorDropped && now.Sub(s.ArmorDropTime) > model.ArmorDropDelay {
		w.Pickup.Active = true
		s.ArmorDropped = true
		res.Dropped = true
	}

	if !w.Pickup.Active {
		return res
	}

	p := &s.Player
	pos := w.Pickup.Position
	if geometry.Distance(pos.X, pos.Y, p.Position.X, p.Position.Y) < model.PickupRadius {
		p.AddArmor(model.PickupArmor)
		w.Pickup.Active = false
		res.Collected = true
	}
	return res
}
