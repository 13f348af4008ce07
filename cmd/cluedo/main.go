package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"cluedo-board/internal/cli"
	"cluedo-board/internal/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Parse command-line flags
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	seed := flag.Int64("seed", 0, "Random seed for the deal and dice (0 picks one from the clock)")
	configPath := flag.String("config", "", "Path to a JSON card configuration (defaults to the built-in deck)")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load game configuration
	var gameConfig *config.GameConfig
	if *configPath == "" {
		gameConfig, err = config.Default()
	} else {
		gameConfig, err = config.Load(*configPath)
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Debug("Seeding random source")

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application
	if err := ui.Run(flag.Args(), gameConfig, rand.New(rand.NewSource(*seed))); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
