// Command gloom-tty plays the game in a terminal, drawing frames with the
// software rasterizer and showing them as half-block characters.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"gloom/config"
	"gloom/driver"
	"gloom/engine"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := config.Flags("gloom-tty")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	// stderr belongs to the terminal while the game runs
	out, closeLog, err := config.OpenLog(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := config.NewLogger(cfg.Log, out)

	img, err := engine.NewImage(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}

	var summary driver.Summary
	opts := driver.Options{
		Logger: logger,
		OnExit: func(s driver.Summary) { summary = s },
	}
	if cfg.Game.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Game.Seed))
	}
	d := driver.New(opts)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := &ttyGame{
		driver: d,
		screen: screen,
		events: events,
		holds:  newHolds(cfg.TTY.Hold),
		now:    time.Now,
	}
	err = engine.NewLoop(game, newTerminal(screen), img, cfg.TTY.FPS).Run(ctx)

	close(quit)
	screen.Fini()
	d.Close()
	if err != nil {
		return err
	}

	fmt.Printf("final score: %d (%s)\n", summary.Score, summary.Outcome)
	return nil
}

