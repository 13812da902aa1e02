/*
Package game
File: transactions.go
Description:
    The transaction engine. Routes every coin and every unit of cargo that
    changes hands through the same guard-then-mutate sequence, so a failed
    operation leaves budget and inventory exactly as they were.
*/

package game

// TransactionEngine executes trades against the ledger at the prices of the
// player's current city. It holds references only; the session owns both
// collaborators.
type TransactionEngine struct {
	ledger *PlayerLedger
	world  *WorldPriceBoard
}

// NewTransactionEngine wires the engine to the session's ledger and world board.
func NewTransactionEngine(ledger *PlayerLedger, world *WorldPriceBoard) *TransactionEngine {
	return &TransactionEngine{ledger: ledger, world: world}
}

// Buy purchases quantity units at the current city's price.
// Returns the total cost paid. ErrInsufficientBudget aborts before any
// mutation; budget and inventory are then unchanged.
func (t *TransactionEngine) Buy(product Product, quantity int) (int, error) {
	price, err := t.localPrice(product)
	if err != nil {
		return 0, err
	}

	cost := quantity * price

	// Debit carries the budget guard; the ledger line is known to exist
	// because the price lookup validated the product against the catalog.
	if err := t.ledger.Debit(cost); err != nil {
		return 0, err
	}
	if err := t.ledger.Add(product, quantity); err != nil {
		return 0, err
	}
	return cost, nil
}

// Sell sells quantity units at the current city's price.
// Returns the total proceeds credited. ErrInsufficientQuantity aborts before
// any mutation; budget and inventory are then unchanged.
func (t *TransactionEngine) Sell(product Product, quantity int) (int, error) {
	price, err := t.localPrice(product)
	if err != nil {
		return 0, err
	}

	proceeds := quantity * price

	// Remove carries the sufficiency guard; Credit can not fail, so the two
	// mutations are atomic from the caller's perspective.
	if err := t.ledger.Remove(product, quantity); err != nil {
		return 0, err
	}
	t.ledger.Credit(proceeds)
	return proceeds, nil
}

// PayFlatCost debits a cost unrelated to trading, like fixing or upgrading
// the ship. ErrInsufficientBudget leaves the budget unchanged.
func (t *TransactionEngine) PayFlatCost(amount int) error {
	return t.ledger.Debit(amount)
}

// localPrice looks up the product's price at the player's current city.
func (t *TransactionEngine) localPrice(product Product) (int, error) {
	board, err := t.world.BoardFor(t.ledger.Location())
	if err != nil {
		return 0, err
	}
	return board.PriceOf(product)
}
