package render

import (
	"fmt"
	"image/color"

	"gloom/model"
)

var (
	startBacking    = color.NRGBA{0, 0, 0, 230}
	gameOverBacking = color.NRGBA{0, 0, 0, 204}
)

type line struct {
	text string
	dy   float64
	font Font
	clr  color.Color
}

var startLines = []line{
	{"GLOOM", -180, Font{Size: 96, Bold: true}, colorRed},
	{"MISSION:", -60, Font{Size: 30}, colorGreen},
	{"Eliminate all demons before they kill you!", -15, Font{Size: 24}, colorWhite},
	{"CONTROLS:", 45, Font{Size: 27}, colorGreen},
	{"W/↑ - Move Forward", 83, Font{Size: 21}, colorWhite},
	{"S/↓ - Move Backward", 113, Font{Size: 21}, colorWhite},
	{"A/← - Turn Left", 143, Font{Size: 21}, colorWhite},
	{"D/→ - Turn Right", 173, Font{Size: 21}, colorWhite},
	{"SPACE - Shoot", 203, Font{Size: 21}, colorWhite},
	{"Press ENTER to Start", 270, Font{Size: 36, Bold: true}, colorYellow},
}

// StartScreen covers the frame with the title and controls panel.
func StartScreen(s Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), startBacking)
	centered(s, startLines)
}

// GameOverScreen covers the frame with the result panel. The wording depends
// on whether the player survived.
func GameOverScreen(s Surface, p model.Player) {
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), gameOverBacking)

	title, tagline, clr := "VICTORY!", "All demons eliminated!", color.Color(colorGreen)
	if p.Health <= 0 {
		title, tagline, clr = "YOU DIED", "The demons have won...", colorRed
	}

	centered(s, []line{
		{title, -40, Font{Size: 48, Bold: true}, clr},
		{fmt.Sprintf("Final Score: %d", p.Score), 20, Font{Size: 24}, clr},
		{tagline, 60, Font{Size: 24}, clr},
		{"Press ENTER to Restart", 110, Font{Size: 20}, colorYellow},
	})
}

func centered(s Surface, lines []line) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	for _, l := range lines {
		s.FillText(l.text, cx, cy+l.dy, l.font, AlignCenter, l.clr)
	}
}
