package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gloom/driver"
	"gloom/engine"
)

// ttyGame feeds terminal events to the driver once per engine tick.
type ttyGame struct {
	driver *driver.Driver
	screen tcell.Screen
	events <-chan tcell.Event
	holds  *holds
	now    func() time.Time
}

func (g *ttyGame) Update() error {
	now := g.now()
drain:
	for {
		select {
		case ev, ok := <-g.events:
			if !ok {
				g.driver.Close()
				return engine.ErrTerminated
			}
			g.handle(ev, now)
		default:
			break drain
		}
	}

	for _, k := range g.holds.expire(now) {
		g.driver.KeyUp(k)
	}
	if g.driver.Closed() {
		return engine.ErrTerminated
	}
	return nil
}

func (g *ttyGame) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		k, ok, quit := translate(ev)
		if quit {
			g.driver.Close()
			return
		}
		if ok && g.holds.press(k, now) {
			g.driver.KeyDown(k, now)
		}
	}
}

func (g *ttyGame) Draw(screen *engine.Image) {
	g.driver.Frame(g.now(), screen)
}
