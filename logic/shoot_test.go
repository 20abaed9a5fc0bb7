package logic

import (
	"math"
	"testing"

	"gloom/model"
)

func TestShoot(t *testing.T) {
	tests := []struct {
		name       string
		enemy      model.Enemy
		angle      float64
		wantHealth int
		wantScore  int
		wantBoom   bool
	}{
		{"dead ahead", model.Enemy{Position: at(5.5, 3.5), Health: 3}, 0, 2, 0, false},
		{"inside tolerance", model.Enemy{Position: at(5.5, 3.5), Health: 3}, 0.14, 2, 0, false},
		{"outside tolerance", model.Enemy{Position: at(5.5, 3.5), Health: 3}, 0.16, 3, 0, false},
		{"behind", model.Enemy{Position: at(1.5, 3.5), Health: 3}, 0, 3, 0, false},
		{"heading wraps", model.Enemy{Position: at(1.5, 3.5), Health: 3}, -math.Pi + 0.01, 2, 0, false},
		{"out of range", model.Enemy{Position: at(11.5, 3.5), Health: 3}, 0, 3, 0, false},
		{"killing blow", model.Enemy{Position: at(5.5, 3.5), Health: 1}, 0, 0, KillScore, true},
		{"already exploding", model.Enemy{Position: at(5.5, 3.5), Health: 0, Exploding: true}, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.State.Player.Angle = tt.angle
			w.Enemies = []model.Enemy{tt.enemy}

			res := Shoot(w)

			e := w.Enemies[0]
			if e.Health != tt.wantHealth {
				t.Errorf("health = %d, want %d", e.Health, tt.wantHealth)
			}
			if e.Exploding != tt.wantBoom {
				t.Errorf("exploding = %v, want %v", e.Exploding, tt.wantBoom)
			}
			if res.Score != tt.wantScore || w.State.Player.Score != tt.wantScore {
				t.Errorf("score = %d (player %d), want %d", res.Score, w.State.Player.Score, tt.wantScore)
			}
			if w.State.Player.Recoil != RecoilFrames || w.State.Player.MuzzleFlash != FlashFrames {
				t.Errorf("feedback not triggered: %+v", w.State.Player)
			}
		})
	}
}

func TestShootHitsEveryEnemyInLine(t *testing.T) {
	w := newTestWorld()
	w.Enemies = []model.Enemy{
		{Position: at(4.5, 3.5), Health: 3},
		{Position: at(6.5, 3.5), Health: 3},
	}

	res := Shoot(w)
	if res.Hits != 2 {
		t.Errorf("Hits = %d, want 2", res.Hits)
	}
}

func TestClearingRosterIsVictory(t *testing.T) {
	w := newTestWorld()
	rng := idleRand()

	for i := range w.Enemies {
		target := w.Enemies[i].Position
		p := &w.State.Player
		p.Angle = math.Atan2(target.Y-p.Position.Y, target.X-p.Position.X)
		for shot := 0; shot < model.EnemyHealth; shot++ {
			Shoot(w)
		}
		if !w.Enemies[i].Exploding {
			t.Fatalf("enemy %d survived three hits", i)
		}
	}
	if w.State.Player.Score != 300 {
		t.Fatalf("score = %d, want 300", w.State.Player.Score)
	}

	steps := 0
	for !w.State.Over && steps < 100 {
		Step(w, fixedSight(false), rng, epoch)
		steps++
	}

	if steps != ExplosionFrames+1 {
		t.Errorf("game ended after %d steps, want %d", steps, ExplosionFrames+1)
	}
	if w.State.Outcome() != model.OutcomeVictory {
		t.Errorf("outcome = %v, want victory", w.State.Outcome())
	}
	if w.State.Player.Score != 300 {
		t.Errorf("score = %d, want 300", w.State.Player.Score)
	}
}
