/*
Package game
File: errors.go
Description:
    Sentinel errors for every failure kind the trading core can signal.
    Callers compare with errors.Is and decide whether to re-prompt or abort;
    the core never retries and never prints.
*/

package game

import "errors"

var (
	// ErrInvalidProduct rejects catalog entries with an empty name or an
	// inverted price range. Fatal to the construction call only.
	ErrInvalidProduct = errors.New("invalid product definition")

	// ErrUnknownProduct is returned by lookups for a product outside the catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrUnknownCity is returned by lookups for a city outside the world list.
	ErrUnknownCity = errors.New("unknown city")

	// ErrInsufficientBudget aborts a buy or flat payment that exceeds the budget.
	ErrInsufficientBudget = errors.New("insufficient budget")

	// ErrInsufficientQuantity aborts a sell that exceeds the held amount.
	ErrInsufficientQuantity = errors.New("insufficient quantity in inventory")

	// ErrShipNotUpgradeable rejects an upgrade that would push voyage time
	// below the 1-hour floor.
	ErrShipNotUpgradeable = errors.New("ship can not be upgraded further")

	// ErrShipBroken blocks sailing until the ship is fixed.
	ErrShipBroken = errors.New("ship is broken")

	// ErrNotEnoughHours blocks actions that need more workday hours than remain.
	ErrNotEnoughHours = errors.New("not enough hours left in the workday")

	// ErrAlreadyInCity rejects sailing to the city the player is porting at.
	ErrAlreadyInCity = errors.New("already porting at this city")
)
