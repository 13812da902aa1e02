/*
Package main
File: main.go
Description: Game entry point. Loads the world configuration, sets up the
JSON game log and hands control to the terminal menu loop.
*/

package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/seatrader/sea-trader/internal/cli"
	"github.com/seatrader/sea-trader/internal/config"
	"github.com/seatrader/sea-trader/internal/highscore"
)

func main() {
	configPath := flag.String("config", "world.yaml", "path to the world configuration file")
	flag.Parse()

	// 1. Load the static world configuration from YAML (+ env overrides).
	world, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config load failed", slog.String("path", *configPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Validate it. A malformed world is the only fatal error in the game.
	if err := world.Validate(); err != nil {
		slog.Error("invalid world configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 3. Set up the JSON game log. Terminal output stays clean; events go to
	// the log file (or stderr when no file is configured).
	var logSink io.Writer = os.Stderr
	if world.Files.LogPath != "" {
		f, err := os.OpenFile(world.Files.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("could not open log file", slog.String("path", world.Files.LogPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		logSink = f
	}
	logger := slog.New(slog.NewJSONHandler(logSink, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// 4. Run the menu loop until the player quits.
	scores := highscore.NewStore(world.Files.HighScoresPath)
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	menu := cli.NewMenu(world, scores, prompter, os.Stdout, logger)

	if err := menu.Run(); err != nil {
		logger.Error("game loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
