/*
Package game
File: prices.go
Description:
    Handles the price simulation of the trading world.
    This includes:
    1. Per-city price boards, regenerated wholesale every trade day.
    2. The world board covering every city in the game.

    Prices are drawn uniformly inside each product's legal range and carry no
    memory of the previous day (no smoothing, no trend).
*/

package game

import "fmt"

// ProductPrice pairs a product name with its current price, used for display.
type ProductPrice struct {
	Name  string
	Price int
}

// CityPriceBoard holds the current prices of all catalog products in one city.
type CityPriceBoard struct {
	catalog *Catalog
	dice    Dice
	prices  map[string]int // Product name -> current price
}

// NewCityPriceBoard creates a board and generates its first set of prices.
func NewCityPriceBoard(catalog *Catalog, dice Dice) *CityPriceBoard {
	b := &CityPriceBoard{catalog: catalog, dice: dice}
	b.Regenerate()
	return b
}

// Regenerate replaces the whole price mapping with fresh uniform draws.
// Called once per trade day; prices never carry over.
func (b *CityPriceBoard) Regenerate() {
	fresh := make(map[string]int, b.catalog.Len())
	for _, p := range b.catalog.Products() {
		fresh[p.Name] = b.dice.IntBetween(p.MinPrice, p.MaxPrice)
	}
	b.prices = fresh
}

// PriceOf returns the current price of a product on this board.
func (b *CityPriceBoard) PriceOf(product Product) (int, error) {
	price, ok := b.prices[product.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, product.Name)
	}
	return price, nil
}

// AllPrices lists every product and its price in catalog order.
func (b *CityPriceBoard) AllPrices() []ProductPrice {
	out := make([]ProductPrice, 0, b.catalog.Len())
	for _, p := range b.catalog.Products() {
		out = append(out, ProductPrice{Name: p.Name, Price: b.prices[p.Name]})
	}
	return out
}

// WorldPriceBoard maps every city in the game to its price board.
type WorldPriceBoard struct {
	cities  []string
	catalog *Catalog
	dice    Dice
	boards  map[string]*CityPriceBoard
}

// NewWorldPriceBoard creates a board for every city and generates day-one prices.
func NewWorldPriceBoard(cities []string, catalog *Catalog, dice Dice) *WorldPriceBoard {
	w := &WorldPriceBoard{
		cities:  cities,
		catalog: catalog,
		dice:    dice,
		boards:  make(map[string]*CityPriceBoard, len(cities)),
	}
	w.RegenerateAll()
	return w
}

// RegenerateAll rebuilds the price board of every city, each with its own
// independent draws. Called at every day rollover.
func (w *WorldPriceBoard) RegenerateAll() {
	for _, city := range w.cities {
		w.boards[city] = NewCityPriceBoard(w.catalog, w.dice)
	}
}

// BoardFor returns the price board of one city.
func (w *WorldPriceBoard) BoardFor(city string) (*CityPriceBoard, error) {
	board, ok := w.boards[city]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return board, nil
}

// Cities returns the fixed city list of the game.
func (w *WorldPriceBoard) Cities() []string {
	return w.cities
}
