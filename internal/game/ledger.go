/*
Package game
File: ledger.go
Description:
    The player ledger: budget, location and per-product inventory.
    Budget mutations go only through Credit/Debit so the balance can never
    turn negative; inventory sufficiency is checked by Remove itself.
*/

package game

import "fmt"

// InventoryLine pairs a product with the quantity the player holds.
type InventoryLine struct {
	Name     string
	Quantity int
}

type inventoryLine struct {
	product  Product
	quantity int
}

// PlayerLedger tracks one player's budget, location and inventory.
type PlayerLedger struct {
	name     string
	location string
	budget   int
	lines    []*inventoryLine // One line per catalog product, catalog order
}

// NewPlayerLedger opens a ledger with the starting budget, the starting city
// and a zero-quantity line for every catalog product.
func NewPlayerLedger(name string, startingBudget int, startingCity string, catalog *Catalog) *PlayerLedger {
	lines := make([]*inventoryLine, 0, catalog.Len())
	for _, p := range catalog.Products() {
		lines = append(lines, &inventoryLine{product: p})
	}
	return &PlayerLedger{
		name:     name,
		location: startingCity,
		budget:   startingBudget,
		lines:    lines,
	}
}

// Name returns the player's name.
func (l *PlayerLedger) Name() string { return l.name }

// Budget returns the current coin balance.
func (l *PlayerLedger) Budget() int { return l.budget }

// Location returns the city the player is currently porting at.
func (l *PlayerLedger) Location() string { return l.location }

// SetLocation moves the player to a new city. The session validates the city
// against the world board before calling.
func (l *PlayerLedger) SetLocation(city string) { l.location = city }

// Credit adds coins to the budget unconditionally.
func (l *PlayerLedger) Credit(amount int) {
	l.budget += amount
}

// Debit removes coins from the budget, failing with ErrInsufficientBudget
// when the balance would turn negative. No mutation on failure.
func (l *PlayerLedger) Debit(amount int) error {
	if amount > l.budget {
		return fmt.Errorf("%w: current budget %d, amount to remove %d",
			ErrInsufficientBudget, l.budget, amount)
	}
	l.budget -= amount
	return nil
}

// QuantityOf returns the held quantity of a product.
func (l *PlayerLedger) QuantityOf(product Product) (int, error) {
	line, err := l.find(product)
	if err != nil {
		return 0, err
	}
	return line.quantity, nil
}

// HasAtLeast reports whether the player holds at least amount of a product.
func (l *PlayerLedger) HasAtLeast(product Product, amount int) (bool, error) {
	line, err := l.find(product)
	if err != nil {
		return false, err
	}
	return line.quantity >= amount, nil
}

// Add increases the held quantity. Callers pass non-negative amounts;
// removals go through Remove so the sufficiency guard always applies.
func (l *PlayerLedger) Add(product Product, amount int) error {
	line, err := l.find(product)
	if err != nil {
		return err
	}
	line.quantity += amount
	return nil
}

// Remove decreases the held quantity, failing with ErrInsufficientQuantity
// when more is removed than held. No mutation on failure.
func (l *PlayerLedger) Remove(product Product, amount int) error {
	line, err := l.find(product)
	if err != nil {
		return err
	}
	if amount > line.quantity {
		return fmt.Errorf("%w: %s held %d, amount to remove %d",
			ErrInsufficientQuantity, product.Name, line.quantity, amount)
	}
	line.quantity -= amount
	return nil
}

// Inventory lists every product and its held quantity in catalog order.
func (l *PlayerLedger) Inventory() []InventoryLine {
	out := make([]InventoryLine, 0, len(l.lines))
	for _, line := range l.lines {
		out = append(out, InventoryLine{Name: line.product.Name, Quantity: line.quantity})
	}
	return out
}

func (l *PlayerLedger) find(product Product) (*inventoryLine, error) {
	for _, line := range l.lines {
		if line.product.Name == product.Name {
			return line, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product.Name)
}
