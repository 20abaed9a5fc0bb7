package render

import (
	"fmt"
	"image/color"

	"github.com/harbdog/raycaster-go/geom"

	"gloom/model"
)

const (
	barWidth  = 300.0
	barHeight = 30.0
	barInset  = 2.0
	hudMargin = 15.0
)

var (
	hudFont   = Font{Size: 24}
	labelFont = Font{Size: 18}
)

// HUD draws the score, enemy count, health bar and, while armor remains, the
// armor bar.
func HUD(s Surface, w *model.World) {
	width, height := s.Size()
	fw, fh := float64(width), float64(height)
	p := w.State.Player

	s.FillText(fmt.Sprintf("Score: %d", p.Score), hudMargin, fh-105, hudFont, AlignLeft, colorGreen)
	s.FillText(fmt.Sprintf("Enemies: %d", len(w.Enemies)), fw-180, fh-105, hudFont, AlignLeft, colorGreen)

	bar(s, fh-70, p.Health, colorGreen, healthColor(p.Health), fmt.Sprintf("HP: %d", p.Health))
	if p.Armor > 0 {
		bar(s, fh-35, p.Armor, colorArmor, colorArmor, fmt.Sprintf("ARMOR: %d", p.Armor))
	}
}

func bar(s Surface, y float64, value int, frame, fill color.Color, label string) {
	s.FillRect(hudMargin, y, barWidth, barHeight, colorBlack)
	s.StrokeRect(hudMargin, y, barWidth, barHeight, 1, frame)

	ratio := geom.Clamp(float64(value)/100, 0, 1)
	s.FillRect(hudMargin+barInset, y+barInset, (barWidth-2*barInset)*ratio, barHeight-2*barInset, fill)
	s.FillText(label, hudMargin+8, y+21, labelFont, AlignLeft, colorWhite)
}
