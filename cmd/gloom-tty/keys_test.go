package main

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gloom/driver"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		want     driver.Key
		wantOK   bool
		wantQuit bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), driver.KeyW, true, false},
		{"shifted D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), driver.KeyD, true, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), driver.KeySpace, true, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), driver.KeyEnter, true, false},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), driver.KeyArrowUp, true, false},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), driver.KeyArrowLeft, true, false},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "", false, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "", false, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "", false, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "", false, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok, quit := translate(tt.ev)
			if k != tt.want || ok != tt.wantOK || quit != tt.wantQuit {
				t.Errorf("translate() = %q, %v, %v, want %q, %v, %v", k, ok, quit, tt.want, tt.wantOK, tt.wantQuit)
			}
		})
	}
}

func TestHolds(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	h := newHolds(100 * time.Millisecond)

	if !h.press(driver.KeyW, t0) {
		t.Fatal("first press not reported")
	}
	// key repeat keeps the key held
	if h.press(driver.KeyW, t0.Add(80*time.Millisecond)) {
		t.Error("repeat reported as a new press")
	}
	if got := h.expire(t0.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v while repeating", got)
	}

	h.press(driver.KeyA, t0.Add(150*time.Millisecond))
	got := h.expire(t0.Add(181 * time.Millisecond))
	if !slices.Equal(got, []driver.Key{driver.KeyW}) {
		t.Errorf("expire() = %v, want [w]", got)
	}
	if !h.press(driver.KeyW, t0.Add(200*time.Millisecond)) {
		t.Error("press after release not reported")
	}
}
