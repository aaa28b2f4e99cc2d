// Package main runs the class abilities showcase: it builds a Warrior, Mage, and Rogue,
// prints their stats, and has each of them hit a training dummy.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/observability"
	"github.com/cory-johannsen/arena/internal/showcase"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults only when empty)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	classes, weapons, err := showcase.LoadContent(cfg.Content)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("classes", len(classes.All())),
		zap.Int("weapons", len(weapons.AllWeapons())),
	)

	if err := showcase.Run(os.Stdout, cfg.Showcase, classes, weapons, combat.NewNarrator(logger)); err != nil {
		logger.Fatal("running showcase", zap.Error(err))
	}

	logger.Info("showcase complete",
		zap.Int("roster", len(cfg.Showcase.Roster)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
