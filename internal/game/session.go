/*
Package game
File: session.go
Description:
    Manages the runtime state of one game of Sea Trader.
    The session owns the catalog, the world price board, the ledger, the ship
    and the transaction engine, and runs the trade-day clock:

        Morning -> (Trading | Sailing | ShipManagement)* -> DayEnd

    Sailing is refused while the ship is broken or when fewer workday hours
    remain than the voyage takes. At day end the clock resets, the day counter
    advances and every city draws fresh prices.
*/

package game

import "time"

// SessionSpec carries the tuning values a session is built from.
type SessionSpec struct {
	PlayerName     string
	StartingBudget int
	StartingCity   string
	WorkdayHours   int // Hour budget of one trade day
	TotalTradeDays int // The game ends after this many days
	Ship           ShipSpec
	Cities         []string
}

// Session is one running game: the player, the world and the day clock.
type Session struct {
	day             int
	lastDay         int
	workdayHours    int
	hoursLeft       int
	finishRequested bool

	catalog *Catalog
	world   *WorldPriceBoard
	ledger  *PlayerLedger
	ship    *Ship
	engine  *TransactionEngine
}

// NewSession builds a fresh game on day 1 with full workday hours.
// The single dice instance is shared by the price boards and the ship so a
// fixed seed reproduces the whole game.
func NewSession(spec SessionSpec, catalog *Catalog, dice Dice) *Session {
	world := NewWorldPriceBoard(spec.Cities, catalog, dice)
	ledger := NewPlayerLedger(spec.PlayerName, spec.StartingBudget, spec.StartingCity, catalog)

	return &Session{
		day:          1,
		lastDay:      spec.TotalTradeDays,
		workdayHours: spec.WorkdayHours,
		hoursLeft:    spec.WorkdayHours,
		catalog:      catalog,
		world:        world,
		ledger:       ledger,
		ship:         NewShip(spec.Ship, dice),
		engine:       NewTransactionEngine(ledger, world),
	}
}

// Catalog returns the game's product catalog.
func (s *Session) Catalog() *Catalog { return s.catalog }

// World returns the world price board.
func (s *Session) World() *WorldPriceBoard { return s.world }

// Ledger returns the player's ledger.
func (s *Session) Ledger() *PlayerLedger { return s.ledger }

// Ship returns the player's ship.
func (s *Session) Ship() *Ship { return s.ship }

// Engine returns the transaction engine.
func (s *Session) Engine() *TransactionEngine { return s.engine }

// Day returns the current trade day, starting at 1.
func (s *Session) Day() int { return s.day }

// LastDay returns the configured final trade day.
func (s *Session) LastDay() int { return s.lastDay }

// HoursLeft returns the hours remaining in the current workday.
func (s *Session) HoursLeft() int { return s.hoursLeft }

// Sail moves the player to another city, consuming voyage-time hours and
// rolling the breakdown check exactly once. Returns whether the ship broke
// during the voyage. No mutation happens when any guard fails.
func (s *Session) Sail(city string) (bool, error) {
	if s.ship.Broken() {
		return false, ErrShipBroken
	}
	if _, err := s.world.BoardFor(city); err != nil {
		return false, err
	}
	if city == s.ledger.Location() {
		return false, ErrAlreadyInCity
	}
	if s.hoursLeft < s.ship.VoyageTime() {
		return false, ErrNotEnoughHours
	}

	s.ledger.SetLocation(city)
	s.hoursLeft -= s.ship.VoyageTime()
	return s.ship.AttemptVoyageDamage(), nil
}

// FixShip pays the current fix cost and repairs the ship.
// A budget shortfall leaves both the budget and the ship untouched.
func (s *Session) FixShip() error {
	if err := s.engine.PayFlatCost(s.ship.FixCost()); err != nil {
		return err
	}
	s.ship.Fix()
	return nil
}

// UpgradeShip buys one voyage-time upgrade: the ship must be upgradeable,
// the upgrade price affordable and enough workday hours left for the labor.
// Failure of any guard leaves everything untouched.
func (s *Session) UpgradeShip() error {
	if !s.ship.IsUpgradeable() {
		return ErrShipNotUpgradeable
	}
	if s.hoursLeft < s.ship.UpgradeLaborHours() {
		return ErrNotEnoughHours
	}
	if err := s.engine.PayFlatCost(s.ship.UpgradePrice()); err != nil {
		return err
	}
	s.hoursLeft -= s.ship.UpgradeLaborHours()
	return s.ship.Upgrade()
}

// EndDay rolls the game over to the next morning: the workday clock resets,
// the day counter advances and every city draws fresh prices.
func (s *Session) EndDay() {
	s.hoursLeft = s.workdayHours
	s.day++
	s.world.RegenerateAll()
}

// RequestFinish marks the current day as the last one. Observed only at the
// day boundary; nothing stops mid-day.
func (s *Session) RequestFinish() {
	s.finishRequested = true
}

// FinishRequested reports whether the player asked to end the game early.
func (s *Session) FinishRequested() bool { return s.finishRequested }

// Finished reports whether the game is over: the day counter passed the last
// trade day, or the player requested an early finish.
func (s *Session) Finished() bool {
	return s.finishRequested || s.day > s.lastDay
}

// Result emits the score record of this game for the high-score table.
func (s *Session) Result() GameResult {
	days := s.day
	if days > s.lastDay {
		days = s.lastDay
	}
	return GameResult{
		Name:              s.ledger.Name(),
		CoinsEarned:       s.ledger.Budget(),
		AmountOfTradeDays: days,
		GameDatetime:      time.Now(),
	}
}
