package game

import (
	"errors"
	"testing"
)

// testEngine builds a one-city world with scripted prices: the draws land in
// catalog order (Wine, Olives, Flour).
func testEngine(t *testing.T, budget int, prices []int) (*TransactionEngine, *PlayerLedger, *Catalog) {
	t.Helper()
	catalog := testCatalog(t)
	world := NewWorldPriceBoard([]string{"Yafo"}, catalog, &scriptedDice{ints: prices})
	ledger := NewPlayerLedger("Mercator", budget, "Yafo", catalog)
	return NewTransactionEngine(ledger, world), ledger, catalog
}

func TestBuyThenSellScenario(t *testing.T) {
	// Budget 10000, Wine priced 20: buy 5 -> 9900/5, sell 3 -> 9960/2.
	engine, ledger, catalog := testEngine(t, 10000, []int{20, 15, 4})
	wine, _ := catalog.ByName("Wine")

	cost, err := engine.Buy(wine, 5)
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if cost != 100 {
		t.Fatalf("cost = %d, want 100", cost)
	}
	if ledger.Budget() != 9900 {
		t.Fatalf("budget = %d, want 9900", ledger.Budget())
	}
	if qty, _ := ledger.QuantityOf(wine); qty != 5 {
		t.Fatalf("quantity = %d, want 5", qty)
	}

	proceeds, err := engine.Sell(wine, 3)
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if proceeds != 60 {
		t.Fatalf("proceeds = %d, want 60", proceeds)
	}
	if ledger.Budget() != 9960 {
		t.Fatalf("budget = %d, want 9960", ledger.Budget())
	}
	if qty, _ := ledger.QuantityOf(wine); qty != 2 {
		t.Fatalf("quantity = %d, want 2", qty)
	}
}

func TestBuyInsufficientBudgetLeavesStateUntouched(t *testing.T) {
	engine, ledger, catalog := testEngine(t, 99, []int{20, 15, 4})
	wine, _ := catalog.ByName("Wine")

	_, err := engine.Buy(wine, 5) // costs 100
	if !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("want ErrInsufficientBudget, got %v", err)
	}
	if ledger.Budget() != 99 {
		t.Fatalf("failed buy mutated the budget: %d", ledger.Budget())
	}
	if qty, _ := ledger.QuantityOf(wine); qty != 0 {
		t.Fatalf("failed buy mutated the inventory: %d", qty)
	}
}

func TestSellMoreThanHeldLeavesStateUntouched(t *testing.T) {
	engine, ledger, catalog := testEngine(t, 10000, []int{20, 15, 4})
	wine, _ := catalog.ByName("Wine")

	if _, err := engine.Buy(wine, 2); err != nil {
		t.Fatal(err)
	}
	budgetBefore := ledger.Budget()

	_, err := engine.Sell(wine, 100)
	if !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("want ErrInsufficientQuantity, got %v", err)
	}
	if ledger.Budget() != budgetBefore {
		t.Fatalf("failed sell mutated the budget: %d", ledger.Budget())
	}
	if qty, _ := ledger.QuantityOf(wine); qty != 2 {
		t.Fatalf("failed sell mutated the inventory: %d", qty)
	}
}

func TestPayFlatCost(t *testing.T) {
	engine, ledger, _ := testEngine(t, 300, []int{20, 15, 4})

	if err := engine.PayFlatCost(250); err != nil {
		t.Fatalf("PayFlatCost: %v", err)
	}
	if ledger.Budget() != 50 {
		t.Fatalf("budget = %d, want 50", ledger.Budget())
	}

	if err := engine.PayFlatCost(51); !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("want ErrInsufficientBudget, got %v", err)
	}
	if ledger.Budget() != 50 {
		t.Fatalf("failed payment mutated the budget: %d", ledger.Budget())
	}
}

func TestBudgetAndInventoryConservation(t *testing.T) {
	// Over any sequence of successful trades the books must balance exactly:
	// budget = initial - sum(costs) + sum(proceeds),
	// quantity = sum(bought) - sum(sold).
	catalog := testCatalog(t)
	world := NewWorldPriceBoard([]string{"Yafo", "Larnaka"}, catalog, NewDice(2024))
	ledger := NewPlayerLedger("Mercator", 100000, "Yafo", catalog)
	engine := NewTransactionEngine(ledger, world)
	wine, _ := catalog.ByName("Wine")

	moves := NewDice(7)
	spent, earned, bought, sold := 0, 0, 0, 0

	for i := 0; i < 500; i++ {
		qty := moves.IntBetween(1, 10)
		if moves.Float64() < 0.5 {
			cost, err := engine.Buy(wine, qty)
			if err != nil {
				continue
			}
			spent += cost
			bought += qty
		} else {
			proceeds, err := engine.Sell(wine, qty)
			if err != nil {
				continue
			}
			earned += proceeds
			sold += qty
		}
		if i%50 == 0 {
			world.RegenerateAll()
		}
	}

	if want := 100000 - spent + earned; ledger.Budget() != want {
		t.Fatalf("budget = %d, want %d (spent %d, earned %d)",
			ledger.Budget(), want, spent, earned)
	}
	qty, _ := ledger.QuantityOf(wine)
	if want := bought - sold; qty != want {
		t.Fatalf("quantity = %d, want %d (bought %d, sold %d)", qty, want, bought, sold)
	}
	if qty < 0 {
		t.Fatalf("inventory went negative: %d", qty)
	}
}

func TestTradeUnknownProduct(t *testing.T) {
	engine, _, _ := testEngine(t, 10000, []int{20, 15, 4})
	silk := Product{Name: "Silk"}

	if _, err := engine.Buy(silk, 1); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("Buy: want ErrUnknownProduct, got %v", err)
	}
	if _, err := engine.Sell(silk, 1); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("Sell: want ErrUnknownProduct, got %v", err)
	}
}
