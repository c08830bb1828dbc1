// gridwalk is a turn-based grid walker: move the hero with hjklyubn or the
// arrow keys, bump into monsters to kill them, Ctrl-C to quit.
//
// Usage:
//
//	gridwalk [-config level.yaml] [-seed 42] [-log-level debug]
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridwalk/internal/config"
	"gridwalk/internal/game"
	"gridwalk/internal/logger"
	"gridwalk/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a YAML level file (built-in level if empty)")
	seed := flag.Int64("seed", 0, "Random seed for monster moves (0 picks one)")
	logLevel := flag.String("log-level", "", "Log level, overriding the config file")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := cfg.GenerateLevel(rng); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	base, closer, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer closer.Close()
	log := base.WithFields(logrus.Fields{"run_id": uuid.New().String(), "seed": cfg.Seed})

	opts, err := cfg.Options(rng, log)
	if err != nil {
		return err
	}
	g, err := game.New(opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := g.Run(ctx, screen, render.NewRenderer(screen)); err != nil {
		log.WithError(err).Error("game aborted")
		return err
	}
	return nil
}
