// Package config loads runtime settings from defaults, an optional
// gloom.yaml file, GLOOM_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Window struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Title      string  `mapstructure:"title"`
	Scale      float64 `mapstructure:"scale"`
	Fullscreen bool    `mapstructure:"fullscreen"`
	VSync      bool    `mapstructure:"vsync"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Game struct {
	// Seed drives enemy behavior; 0 picks one from the clock.
	Seed int64 `mapstructure:"seed"`
}

type TTY struct {
	FPS  int           `mapstructure:"fps"`
	Hold time.Duration `mapstructure:"hold"`
}

type Config struct {
	Window Window `mapstructure:"window"`
	Log    Log    `mapstructure:"log"`
	Game   Game   `mapstructure:"game"`
	TTY    TTY    `mapstructure:"tty"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// MinTTYFPS is the lowest terminal frame rate that keeps the game at full
// speed.
const MinTTYFPS = 60

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "GLOOM")
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.vsync", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("game.seed", 0)
	v.SetDefault("tty.fps", 60)
	v.SetDefault("tty.hold", 150*time.Millisecond)
}

// Flags returns the command line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file")
	fs.Int("width", 960, "window width in pixels")
	fs.Int("height", 720, "window height in pixels")
	fs.Float64("scale", 1.0, "window scale factor")
	fs.Bool("fullscreen", false, "start in fullscreen")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-file", "", "write logs to this file instead of stderr")
	fs.Int64("seed", 0, "random seed for enemy behavior (0 = clock)")
	fs.Int("fps", 60, "terminal frames per second")
	fs.Duration("hold", 150*time.Millisecond, "terminal key hold after the last repeat")
	return fs
}

var flagKeys = map[string]string{
	"width":      "window.width",
	"height":     "window.height",
	"scale":      "window.scale",
	"fullscreen": "window.fullscreen",
	"log-level":  "log.level",
	"log-file":   "log.file",
	"seed":       "game.seed",
	"fps":        "tty.fps",
	"hold":       "tty.hold",
}

// Load resolves the configuration. fs may be nil; only flags that were set
// explicitly override the file and environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GLOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	path := ""
	if fs != nil {
		path, _ = fs.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gloom")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gloom"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("invalid window scale %v", c.Window.Scale)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.TTY.FPS < MinTTYFPS {
		return fmt.Errorf("invalid terminal fps %d: below %d slows the game down", c.TTY.FPS, MinTTYFPS)
	}
	if c.TTY.Hold <= 0 {
		return fmt.Errorf("invalid terminal key hold %v", c.TTY.Hold)
	}
	return nil
}
