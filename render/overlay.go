package render

import "gloom/model"

const (
	gunWidth  = 180.0
	gunHeight = 225.0

	crosshairArm   = 15.0
	crosshairWidth = 3.0

	flashDivisor = 30.0
)

// Weapon draws the first-person gun, lowered by the recoil counter, with a
// muzzle flash while the flash counter runs.
func Weapon(s Surface, p model.Player) {
	w, h := s.Size()
	gx := float64(w)/2 - gunWidth/2
	gy := float64(h) - gunHeight + float64(p.Recoil)

	s.FillRect(gx+60, gy+75, 60, 150, colorGunBody)
	s.FillRect(gx+75, gy, 30, 90, colorBarrel)

	if p.MuzzleFlash > 0 {
		s.FillPolygon(flashBurst(gx+67.5, gy-30, 45, 30), colorYellow)
		s.FillPolygon(flashBurst(gx+75, gy-22.5, 30, 22.5), colorOrange)
	}
}

// flashBurst is a jagged flame shape filling the box (x, y, w, h) with its
// base on the box's bottom edge.
func flashBurst(x, y, w, h float64) []Point {
	return []Point{
		{x, y + h},
		{x, y + h*0.4},
		{x + w*0.25, y + h*0.55},
		{x + w*0.5, y},
		{x + w*0.75, y + h*0.55},
		{x + w, y + h*0.4},
		{x + w, y + h},
	}
}

// Crosshair draws the fixed sight at screen center.
func Crosshair(s Surface) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	s.StrokePath([]Point{{cx - crosshairArm, cy}, {cx + crosshairArm, cy}}, crosshairWidth, colorGreen)
	s.StrokePath([]Point{{cx, cy - crosshairArm}, {cx, cy + crosshairArm}}, crosshairWidth, colorGreen)
}

// DamageFlash tints the whole frame red while the screen flash counter runs.
func DamageFlash(s Surface, p model.Player) {
	if p.ScreenFlash <= 0 {
		return
	}
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), withAlpha(colorRed, float64(p.ScreenFlash)/flashDivisor))
}
