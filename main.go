package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"retro-snake/audio"
	"retro-snake/game"
	"retro-snake/game/clock"
	"retro-snake/game/types"
	"retro-snake/ui"
	"retro-snake/ui/window"
)

// frontend is a game.Frontend that also owns a clock and OS resources.
type frontend interface {
	game.Frontend
	Clock() clock.Source
	Close()
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("retro-snake: %v", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("retro-snake: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Startup errors go to stderr until the frontend owns the terminal.
	f, err := openFrontend(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s frontend: %v", cfg.Frontend, err)
	}
	defer f.Close()
	log.SetOutput(logOutput(cfg.Frontend, logFile))

	sounds := audio.NewSoundManager()
	if !cfg.Mute {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, the game plays fine without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sounds.Cleanup()

	g := game.NewGame(int(cfg.Layout.CellCount), rand.New(rand.NewSource(cfg.Seed)))
	wireEvents(g, sounds, cfg.Debug)

	log.Printf("Starting game %s (frontend=%s seed=%d)", g.UUID, cfg.Frontend, cfg.Seed)
	g.Run(f, clock.NewTicker(f.Clock()), &game.InputGate{}, cfg.TickInterval)

	log.Printf("Game %s closed: %d games, best %d, average %.1f, median %.1f, average run %.1fs",
		g.UUID, g.Stats.GetGamesPlayed(), g.Stats.GetMaxScore(), g.Stats.GetAverageScore(),
		g.Stats.GetMedianScore(), g.Stats.GetAverageDuration())
}

func openFrontend(cfg *Config) (frontend, error) {
	if cfg.Frontend == frontendTerminal {
		t, err := ui.NewTerminal(int(cfg.Layout.CellCount), targetFPS)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	w, err := window.New(cfg.Layout, targetFPS)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func wireEvents(g *game.Game, sounds *audio.SoundManager, debug bool) {
	g.OnEat = func(score int) {
		sounds.PlayEat()
		if debug {
			log.Printf("Game %s: food eaten, score %d, food moved to (%d,%d)",
				g.UUID, score, g.Food.Position.X, g.Food.Position.Y)
		}
	}
	g.OnGameOver = func(cause types.CollisionType, finalScore int) {
		sounds.PlayWall()
		log.Printf("Game %s: game over (%s collision) after %d steps, score %d, best %d",
			g.UUID, cause, g.Steps, finalScore, g.Stats.GetMaxScore())
	}
}
