package model

import "github.com/harbdog/raycaster-go/geom"

// ArmorPickup is the single armor drop. It stays inactive until the drop
// delay has passed and never returns once collected.
type ArmorPickup struct {
	Position geom.Vector2
	Active   bool
}

func NewArmorPickup() ArmorPickup {
	return ArmorPickup{Position: geom.Vector2{X: PickupX, Y: PickupY}}
}
