package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingGame struct {
	updates, draws int
	stopAfter      int
}

func (g *countingGame) Update() error {
	g.updates++
	if g.updates >= g.stopAfter {
		return ErrTerminated
	}
	return nil
}

func (g *countingGame) Draw(*Image) { g.draws++ }

type countingPresenter struct {
	frames int
	err    error
}

func (p *countingPresenter) Present(*Image) error {
	p.frames++
	return p.err
}

func TestLoopRunsUntilTerminated(t *testing.T) {
	game := &countingGame{stopAfter: 3}
	out := &countingPresenter{}
	loop := NewLoop(game, out, NewImageWithFonts(4, 4, nil), 1000)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if game.updates != 3 || game.draws != 2 || out.frames != 2 {
		t.Errorf("updates=%d draws=%d frames=%d", game.updates, game.draws, out.frames)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	loop := NewLoop(&countingGame{stopAfter: 1 << 30}, &countingPresenter{}, NewImageWithFonts(4, 4, nil), 500)
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

func TestLoopReportsPresentError(t *testing.T) {
	boom := errors.New("boom")
	loop := NewLoop(&countingGame{stopAfter: 1 << 30}, &countingPresenter{err: boom}, NewImageWithFonts(4, 4, nil), 1000)
	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want %v", err, boom)
	}
}
