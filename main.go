package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"gloom/config"
	"gloom/driver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := config.Flags("gloom")
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

	out, closeLog, err := config.OpenLog(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := config.NewLogger(cfg.Log, out)
	if cfg.File != "" {
		logger.Info("loaded config", "file", cfg.File)
	}

	opts := driver.Options{
		Logger: logger,
		OnExit: func(s driver.Summary) {
			fmt.Printf("final score: %d (%s)\n", s.Score, s.Outcome)
		},
	}
	if cfg.Game.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Game.Seed))
	}

	g, err := NewGame(cfg, driver.New(opts))
	if err != nil {
		return err
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}
