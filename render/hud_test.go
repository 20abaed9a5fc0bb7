package render_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"gloom/model"
	"gloom/render"
)

func TestHUD(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		armor     int
		wantTexts []string
		rects     int
	}{
		{"no armor", 100, 0, []string{"Score: 200", "Enemies: 3", "HP: 100"}, 2},
		{"with armor", 40, 50, []string{"Score: 200", "Enemies: 3", "HP: 40", "ARMOR: 50"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSurface(t)
			for _, text := range tt.wantTexts {
				s.EXPECT().FillText(text, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			}
			s.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(tt.rects)
			s.EXPECT().StrokeRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(tt.rects / 2)

			w := model.NewWorld()
			w.State.Player.Health = tt.health
			w.State.Player.Armor = tt.armor
			w.State.Player.Score = 200
			render.HUD(s, w)
		})
	}
}

func TestHealthBarWidth(t *testing.T) {
	s := newSurface(t)
	s.EXPECT().FillText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().StrokeRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.EXPECT().FillRect(15.0, 650.0, 300.0, 30.0, gomock.Any())
	// 296 px of fill at quarter health, in the red band
	s.EXPECT().FillRect(17.0, 652.0, 74.0, 26.0, gomock.Any())

	w := model.NewWorld()
	w.State.Player.Health = 25
	render.HUD(s, w)
}

func TestGameOverScreen(t *testing.T) {
	tests := []struct {
		name   string
		health int
		title  string
	}{
		{"defeat", 0, "YOU DIED"},
		{"victory", 30, "VICTORY!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSurface(t)
			s.EXPECT().FillRect(0.0, 0.0, 960.0, 720.0, gomock.Any())
			s.EXPECT().FillText(tt.title, 480.0, 320.0, render.Font{Size: 48, Bold: true}, render.AlignCenter, gomock.Any())
			s.EXPECT().FillText("Final Score: 300", gomock.Any(), gomock.Any(), gomock.Any(), render.AlignCenter, gomock.Any())
			s.EXPECT().FillText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), render.AlignCenter, gomock.Any()).Times(2)

			render.GameOverScreen(s, model.Player{Health: tt.health, Score: 300})
		})
	}
}

func TestStartScreen(t *testing.T) {
	s := newSurface(t)
	s.EXPECT().FillRect(0.0, 0.0, 960.0, 720.0, gomock.Any())
	s.EXPECT().FillText("GLOOM", 480.0, 180.0, render.Font{Size: 96, Bold: true}, render.AlignCenter, gomock.Any())
	s.EXPECT().FillText("Press ENTER to Start", 480.0, 630.0, gomock.Any(), render.AlignCenter, gomock.Any())
	s.EXPECT().FillText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), render.AlignCenter, gomock.Any()).Times(8)

	render.StartScreen(s)
}
