package main

import (
	"os"

	"github.com/ericogr/saber-duel/internal/config"
	"github.com/ericogr/saber-duel/internal/logging"
)

func main() {
	env, err := config.LoadEnv(".env")
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	// Keep the terminal clean; only problems are logged.
	logging.SetLevel(logging.LevelWarn)
	cfg, err := config.LoadConfig(env.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid roster configuration", err, nil)
	}
	if err := run(os.Stdin, os.Stdout, cfg.Roster); err != nil {
		logging.Fatal("Terminal shell failed", err, nil)
	}
}
