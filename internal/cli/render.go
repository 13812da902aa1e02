/*
Package cli
File: render.go
Description:
    Tabular terminal output: price boards, the player inventory and the
    high-score table.
*/

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/seatrader/sea-trader/internal/game"
	"github.com/seatrader/sea-trader/internal/highscore"
)

// printPrices renders the price board of the player's current city.
func (m *Menu) printPrices(s *game.Session) {
	city := s.Ledger().Location()
	board, err := s.World().BoardFor(city)
	if err != nil {
		fmt.Fprintf(m.out, "No prices for %s: %v\n", city, err)
		return
	}

	fmt.Fprintf(m.out, "Prices in %s:\n", city)
	tw := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Product\tPrice")
	for _, pp := range board.AllPrices() {
		fmt.Fprintf(tw, "%s\t%d\n", pp.Name, pp.Price)
	}
	tw.Flush()
}

// printInventory renders the player's inventory in catalog order.
func (m *Menu) printInventory(s *game.Session) {
	fmt.Fprintln(m.out, "Current inventory:")
	tw := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Product\tAmount")
	for _, line := range s.Ledger().Inventory() {
		fmt.Fprintf(tw, "%s\t%d\n", line.Name, line.Quantity)
	}
	tw.Flush()
}

// highScoresMenu shows the persisted score table, ordered as the player asks.
func (m *Menu) highScoresMenu() {
	records, err := m.scores.Load()
	if err != nil {
		fmt.Fprintf(m.out, "Could not read the high scores: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No games have been recorded yet.")
		return
	}

	fmt.Fprintln(m.out, "High scores menu:")
	fmt.Fprintln(m.out, " 1) Top scores by coins earned")
	fmt.Fprintln(m.out, " 2) Scores by date")

	switch m.p.Number("> ", 1, 2) {
	case 1:
		m.printScoreTable(highscore.OrderedByScore(records))
	case 2:
		m.printScoreTable(highscore.OrderedByDate(records))
	}
}

func (m *Menu) printScoreTable(records []highscore.Record) {
	tw := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tCoins earned\tTrade days\tGame date")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n",
			r.Name, r.CoinsEarned, r.AmountOfTradeDays,
			r.GameDatetime.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}
