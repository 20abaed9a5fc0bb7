package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gloom/driver"
	"gloom/engine"
)

type idleRand struct{}

func (idleRand) Float64() float64 { return 0.99 }

func newTestGame(t *testing.T) (*ttyGame, chan tcell.Event, *time.Time) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	events := make(chan tcell.Event, 8)
	g := &ttyGame{
		driver: driver.New(driver.Options{
			Rand:   idleRand{},
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		screen: screen,
		events: events,
		holds:  newHolds(100 * time.Millisecond),
		now:    func() time.Time { return now },
	}
	return g, events, &now
}

func TestUpdateStartsAndFires(t *testing.T) {
	g, events, now := newTestGame(t)

	events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.driver.Phase() != driver.Running {
		t.Fatalf("phase = %v", g.driver.Phase())
	}

	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if got := g.driver.World().State.Player.Recoil; got == 0 {
		t.Error("space did not fire")
	}

	// held space repeats without refiring, then releases after the hold
	g.driver.World().State.Player.Recoil = 0
	*now = now.Add(50 * time.Millisecond)
	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	g.Update()
	if g.driver.World().State.Player.Recoil != 0 {
		t.Error("key repeat fired again")
	}

	*now = now.Add(200 * time.Millisecond)
	g.Update()
	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	g.Update()
	if g.driver.World().State.Player.Recoil == 0 {
		t.Error("press after release did not fire")
	}
}

func TestUpdateQuits(t *testing.T) {
	tests := []struct {
		name string
		send func(chan tcell.Event)
	}{
		{"escape", func(ch chan tcell.Event) { ch <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone) }},
		{"closed events", func(ch chan tcell.Event) { close(ch) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, events, _ := newTestGame(t)
			tt.send(events)

			if err := g.Update(); err != engine.ErrTerminated {
				t.Errorf("Update() = %v, want ErrTerminated", err)
			}
			if !g.driver.Closed() {
				t.Error("driver not closed")
			}
		})
	}
}

func TestDrawRendersFrame(t *testing.T) {
	g, _, _ := newTestGame(t)
	img := engine.NewImageWithFonts(320, 240, nil)

	g.Draw(img)
	if px := img.At(160, 10); px.A == 0 {
		t.Error("frame left the image empty")
	}
}
