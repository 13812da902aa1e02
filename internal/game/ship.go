/*
Package game
File: ship.go
Description:
    The player's ship. The ship gates movement between cities:
    - Every voyage rolls once against the break probability; a broken ship
      can not sail until its fix cost is paid.
    - Upgrades shave a fixed step off the voyage time, down to a floor of
      1 hour, for a price and a labor-time cost.
*/

package game

// ShipSpec carries the tuning values a ship is built from.
type ShipSpec struct {
	VoyageTime        int     // Hours per city-to-city trip, >= 1
	BreakProbability  float64 // Chance in [0,1] of breaking per voyage
	MinFixCost        int     // Lower bound of a randomly drawn repair bill
	MaxFixCost        int     // Upper bound of a randomly drawn repair bill
	UpgradeStep       int     // Hours removed from voyage time per upgrade
	UpgradePrice      int     // Coins one upgrade costs
	UpgradeLaborHours int     // Workday hours one upgrade consumes
}

// Ship is the voyage/breakdown/upgrade state machine.
type Ship struct {
	spec       ShipSpec
	voyageTime int
	broken     bool
	fixCost    int
	dice       Dice
}

// NewShip builds a healthy ship from its spec.
func NewShip(spec ShipSpec, dice Dice) *Ship {
	return &Ship{spec: spec, voyageTime: spec.VoyageTime, dice: dice}
}

// VoyageTime returns the current hours needed to sail between two cities.
func (s *Ship) VoyageTime() int { return s.voyageTime }

// Broken reports whether the ship is broken. A broken ship can not sail.
func (s *Ship) Broken() bool { return s.broken }

// FixCost returns the coins needed to fix the ship, 0 while healthy.
func (s *Ship) FixCost() int { return s.fixCost }

// UpgradePrice returns the coin cost of one voyage-time upgrade.
func (s *Ship) UpgradePrice() int { return s.spec.UpgradePrice }

// UpgradeLaborHours returns the workday hours one upgrade consumes.
func (s *Ship) UpgradeLaborHours() int { return s.spec.UpgradeLaborHours }

// AttemptVoyageDamage rolls once against the break probability.
// On damage the ship turns broken and a fix cost is drawn from the configured
// range. Returns whether damage occurred. Called exactly once per voyage.
func (s *Ship) AttemptVoyageDamage() bool {
	if s.dice.Float64() < s.spec.BreakProbability {
		s.broken = true
		s.fixCost = s.dice.IntBetween(s.spec.MinFixCost, s.spec.MaxFixCost)
		return true
	}
	return false
}

// Fix turns a broken ship healthy and clears the fix cost.
// Benign when the ship is already healthy.
func (s *Ship) Fix() {
	s.broken = false
	s.fixCost = 0
}

// IsUpgradeable reports whether one more upgrade keeps the voyage time at or
// above the 1-hour floor.
func (s *Ship) IsUpgradeable() bool {
	return s.voyageTime-s.spec.UpgradeStep >= 1
}

// Upgrade removes the configured step from the voyage time.
// Fails with ErrShipNotUpgradeable at the floor; voyage time is unchanged then.
func (s *Ship) Upgrade() error {
	if !s.IsUpgradeable() {
		return ErrShipNotUpgradeable
	}
	s.voyageTime -= s.spec.UpgradeStep
	return nil
}
