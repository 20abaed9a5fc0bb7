package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gloom/driver"
)

var keyMap = map[ebiten.Key]driver.Key{
	ebiten.KeyW:     driver.KeyW,
	ebiten.KeyS:     driver.KeyS,
	ebiten.KeyA:     driver.KeyA,
	ebiten.KeyD:     driver.KeyD,
	ebiten.KeyUp:    driver.KeyArrowUp,
	ebiten.KeyDown:  driver.KeyArrowDown,
	ebiten.KeyLeft:  driver.KeyArrowLeft,
	ebiten.KeyRight: driver.KeyArrowRight,
	ebiten.KeySpace: driver.KeySpace,
	ebiten.KeyEnter: driver.KeyEnter,
}

// handleInput forwards this tick's key edges to the driver.
func (g *Game) handleInput(now time.Time) {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if dk, ok := keyMap[k]; ok {
			g.driver.KeyDown(dk, now)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if dk, ok := keyMap[k]; ok {
			g.driver.KeyUp(dk)
		}
	}
}
