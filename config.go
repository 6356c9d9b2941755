package main

import (
	"flag"
	"fmt"
	"time"

	"retro-snake/game"
	"retro-snake/ui"
)

// Gameplay constants. The tick interval is deliberately not a flag.
const (
	cellSize     = 30
	cellCount    = 25
	offset       = 75
	targetFPS    = 60
	tickInterval = game.DefaultTickInterval
)

const (
	frontendRaylib   = "raylib"
	frontendTerminal = "terminal"
)

type Config struct {
	Frontend     string
	Seed         uint64
	Mute         bool
	LogFile      string
	Debug        bool
	TickInterval time.Duration
	Layout       ui.Layout
}

// parseConfig reads the command line. A zero -seed means seed from the clock.
func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("retro-snake", flag.ContinueOnError)
	cfg := &Config{
		TickInterval: tickInterval,
		Layout: ui.Layout{
			CellSize:  cellSize,
			CellCount: cellCount,
			Offset:    offset,
		},
	}

	fs.StringVar(&cfg.Frontend, "frontend", frontendRaylib, "where to play: raylib or terminal")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "food placement seed (0 = random)")
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound effects")
	fs.StringVar(&cfg.LogFile, "log", "", "write logs to this file")
	fs.BoolVar(&cfg.Debug, "debug", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.Frontend {
	case frontendRaylib, frontendTerminal:
	default:
		return nil, fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
