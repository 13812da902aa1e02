/*
Package config
File: config.go
Description:
    Defines the structs that map to 'world.yaml': the city list, the product
    catalog with its legal price ranges, the player ship tuning and the global
    game balance. Malformed world data is a fatal startup error; nothing here
    is silently corrected.
*/

package config

import (
	"fmt"

	"github.com/seatrader/sea-trader/internal/game"
)

// GameBalance stores the global tuning variables of a game.
type GameBalance struct {
	StartingBudget int    `yaml:"starting_budget"`  // Coins a new player starts with
	WorkdayHours   int    `yaml:"workday_hours"`    // Hour budget of one trade day
	TotalTradeDays int    `yaml:"total_trade_days"` // The game ends after this many days
	StartingCity   string `yaml:"starting_city"`    // Must be one of the configured cities
	Seed           int64  `yaml:"seed"`             // Dice seed; 0 means seed from the clock
}

// ShipConfig stores the player ship tuning.
type ShipConfig struct {
	VoyageTime        int     `yaml:"voyage_time"`         // Hours per city-to-city trip
	BreakProbability  float64 `yaml:"break_probability"`   // Chance in [0,1] of breaking per voyage
	MinFixCost        int     `yaml:"min_fix_cost"`        // Lower bound of a repair bill
	MaxFixCost        int     `yaml:"max_fix_cost"`        // Upper bound of a repair bill
	UpgradeStep       int     `yaml:"upgrade_step"`        // Voyage hours removed per upgrade
	UpgradePrice      int     `yaml:"upgrade_price"`       // Coins one upgrade costs
	UpgradeLaborHours int     `yaml:"upgrade_labor_hours"` // Workday hours one upgrade consumes
}

// ProductConfig stores one catalog entry.
type ProductConfig struct {
	Name     string `yaml:"name"`
	MinPrice int    `yaml:"min_price"`
	MaxPrice int    `yaml:"max_price"`
}

// Files stores the paths of everything the game writes.
type Files struct {
	HighScoresPath string `yaml:"high_scores_path"` // YAML list of past game results
	LogPath        string `yaml:"log_path"`         // JSON game event log; empty logs to stderr
}

// World is the root configuration struct, mapping to the entire 'world.yaml' file.
type World struct {
	Balance  GameBalance     `yaml:"game_balance"`
	Ship     ShipConfig      `yaml:"player_ship"`
	Cities   []string        `yaml:"cities"`
	Products []ProductConfig `yaml:"products"`
	Files    Files           `yaml:"files"`
}

// Validate checks the world invariants the game relies on. Any violation is
// a fatal configuration error at startup.
func (w *World) Validate() error {
	if len(w.Cities) == 0 {
		return fmt.Errorf("config: no cities configured")
	}
	cityKnown := false
	for _, c := range w.Cities {
		if c == "" {
			return fmt.Errorf("config: empty city name")
		}
		if c == w.Balance.StartingCity {
			cityKnown = true
		}
	}
	if !cityKnown {
		return fmt.Errorf("config: starting city %q is not in the city list", w.Balance.StartingCity)
	}

	if len(w.Products) == 0 {
		return fmt.Errorf("config: no products configured")
	}
	if _, err := w.Catalog(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if w.Balance.StartingBudget < 0 {
		return fmt.Errorf("config: starting budget %d is negative", w.Balance.StartingBudget)
	}
	if w.Balance.WorkdayHours < 1 {
		return fmt.Errorf("config: workday of %d hours", w.Balance.WorkdayHours)
	}
	if w.Balance.TotalTradeDays < 1 {
		return fmt.Errorf("config: game of %d trade days", w.Balance.TotalTradeDays)
	}

	if w.Ship.VoyageTime < 1 {
		return fmt.Errorf("config: ship voyage time %d is below 1 hour", w.Ship.VoyageTime)
	}
	if w.Ship.BreakProbability < 0 || w.Ship.BreakProbability > 1 {
		return fmt.Errorf("config: break probability %v outside [0,1]", w.Ship.BreakProbability)
	}
	if w.Ship.MinFixCost > w.Ship.MaxFixCost {
		return fmt.Errorf("config: min fix cost %d is bigger than max fix cost %d",
			w.Ship.MinFixCost, w.Ship.MaxFixCost)
	}
	if w.Ship.UpgradeStep < 1 {
		return fmt.Errorf("config: ship upgrade step %d", w.Ship.UpgradeStep)
	}

	return nil
}

// Catalog builds the validated product catalog of this world.
func (w *World) Catalog() (*game.Catalog, error) {
	products := make([]game.Product, 0, len(w.Products))
	for _, pc := range w.Products {
		p, err := game.NewProduct(pc.Name, pc.MinPrice, pc.MaxPrice)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return game.NewCatalog(products...), nil
}

// SessionSpec assembles the session tuning for one player.
func (w *World) SessionSpec(playerName string) game.SessionSpec {
	return game.SessionSpec{
		PlayerName:     playerName,
		StartingBudget: w.Balance.StartingBudget,
		StartingCity:   w.Balance.StartingCity,
		WorkdayHours:   w.Balance.WorkdayHours,
		TotalTradeDays: w.Balance.TotalTradeDays,
		Cities:         w.Cities,
		Ship: game.ShipSpec{
			VoyageTime:        w.Ship.VoyageTime,
			BreakProbability:  w.Ship.BreakProbability,
			MinFixCost:        w.Ship.MinFixCost,
			MaxFixCost:        w.Ship.MaxFixCost,
			UpgradeStep:       w.Ship.UpgradeStep,
			UpgradePrice:      w.Ship.UpgradePrice,
			UpgradeLaborHours: w.Ship.UpgradeLaborHours,
		},
	}
}
