package engine

import (
	"context"
	"errors"
	"time"
)

// ErrTerminated is returned from Game.Update to end Run without an error.
var ErrTerminated = errors.New("engine: terminated")

type Game interface {
	Update() error
	Draw(screen *Image)
}

// Presenter shows a finished frame, e.g. on a terminal.
type Presenter interface {
	Present(screen *Image) error
}

type Loop struct {
	game     Game
	out      Presenter
	screen   *Image
	interval time.Duration
}

func NewLoop(game Game, out Presenter, screen *Image, fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		game:     game,
		out:      out,
		screen:   screen,
		interval: time.Second / time.Duration(fps),
	}
}

// Run updates, draws and presents once per tick until ctx is done or the
// game terminates.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if err := l.game.Update(); err != nil {
			if errors.Is(err, ErrTerminated) {
				return nil
			}
			return err
		}

		l.game.Draw(l.screen)
		if err := l.out.Present(l.screen); err != nil {
			return err
		}
	}
}
