/*
Package config
File: loader.go
Description:
    Reads 'world.yaml', applies SEATRADER_* environment overrides on top and
    returns the final World. A .env file is loaded when present so local runs
    can override paths and the dice seed without touching the YAML.
*/

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the world file at path and merges environment overrides.
// The returned World has NOT been validated; callers invoke Validate() next.
func Load(path string) (*World, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var w World
	if err := yaml.Unmarshal(f, &w); err != nil {
		return nil, err
	}

	// Load .env if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&w)

	return &w, nil
}

// applyEnvOverrides overwrites World fields for every SEATRADER_* variable
// that is set, so operators can tweak a game without editing world.yaml.
func applyEnvOverrides(w *World) {
	setInt(&w.Balance.StartingBudget, "SEATRADER_STARTING_BUDGET")
	setInt(&w.Balance.WorkdayHours, "SEATRADER_WORKDAY_HOURS")
	setInt(&w.Balance.TotalTradeDays, "SEATRADER_TOTAL_TRADE_DAYS")
	setStr(&w.Balance.StartingCity, "SEATRADER_STARTING_CITY")
	setInt64(&w.Balance.Seed, "SEATRADER_SEED")

	setStr(&w.Files.HighScoresPath, "SEATRADER_HIGH_SCORES_PATH")
	setStr(&w.Files.LogPath, "SEATRADER_LOG_PATH")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
