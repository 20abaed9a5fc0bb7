package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gloom/config"
	"gloom/driver"
)

// Game adapts the driver to ebiten's update and draw callbacks.
type Game struct {
	driver *driver.Driver
	screen *screen
	keys   []ebiten.Key

	width, height int
}

func NewGame(cfg *config.Config, d *driver.Driver) (*Game, error) {
	s, err := newScreen()
	if err != nil {
		return nil, err
	}

	g := &Game{
		driver: d,
		screen: s,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(g.width)*cfg.Window.Scale), int(float64(g.height)*cfg.Window.Scale))
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetWindowClosingHandled(true)

	// a throttled frame leaves the previous image on screen
	ebiten.SetScreenClearedEveryFrame(false)
	return g, nil
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.driver.Close()
		return ebiten.Termination
	}
	g.handleInput(time.Now())
	return nil
}

// Draw runs one driver frame onto the screen image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.target(screen)
	g.driver.Frame(time.Now(), g.screen)
}

// Layout keeps the logical resolution fixed regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
