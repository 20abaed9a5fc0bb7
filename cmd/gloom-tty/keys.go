package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gloom/driver"
)

// translate maps a terminal key event to a driver key. quit reports the
// keys that end the program.
func translate(ev *tcell.EventKey) (k driver.Key, ok, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", false, true
	case tcell.KeyUp:
		return driver.KeyArrowUp, true, false
	case tcell.KeyDown:
		return driver.KeyArrowDown, true, false
	case tcell.KeyLeft:
		return driver.KeyArrowLeft, true, false
	case tcell.KeyRight:
		return driver.KeyArrowRight, true, false
	case tcell.KeyEnter:
		return driver.KeyEnter, true, false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return "", false, true
		}
		switch k := driver.ParseKey(string(ev.Rune())); k {
		case driver.KeyW, driver.KeyS, driver.KeyA, driver.KeyD, driver.KeySpace:
			return k, true, false
		}
	}
	return "", false, false
}

// holds turns key presses into press and release pairs. Terminals only
// report presses (repeated while held), so a key counts as released once no
// press for it has arrived within the hold window.
type holds struct {
	window time.Duration
	last   map[driver.Key]time.Time
}

func newHolds(window time.Duration) *holds {
	return &holds{window: window, last: make(map[driver.Key]time.Time)}
}

// press records k at now and reports whether it was not already held.
func (h *holds) press(k driver.Key, now time.Time) bool {
	_, held := h.last[k]
	h.last[k] = now
	return !held
}

// expire returns the keys released by now and forgets them.
func (h *holds) expire(now time.Time) []driver.Key {
	var released []driver.Key
	for k, at := range h.last {
		if now.Sub(at) > h.window {
			released = append(released, k)
			delete(h.last, k)
		}
	}
	return released
}
