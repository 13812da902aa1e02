/*
Package cli
File: menu.go
Description:
    The terminal menu loop of Sea Trader. Routes every player command to the
    game core (transaction engine, ship, session) and turns core errors into
    friendly messages. The core never prints; all output happens here.
*/

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/seatrader/sea-trader/internal/config"
	"github.com/seatrader/sea-trader/internal/game"
	"github.com/seatrader/sea-trader/internal/highscore"
)

// Menu drives the whole terminal game.
type Menu struct {
	world  *config.World
	scores *highscore.Store
	p      *Prompter
	out    io.Writer
	log    *slog.Logger
}

// NewMenu wires the menu to the loaded world, the score store and the terminal.
func NewMenu(world *config.World, scores *highscore.Store, p *Prompter, out io.Writer, log *slog.Logger) *Menu {
	return &Menu{world: world, scores: scores, p: p, out: out, log: log}
}

// Run shows the intro menu until the player quits.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "Welcome to Sea Trader!")
	fmt.Fprintln(m.out, "Sea Trader is a homage to Socher HaYam.")

	for {
		fmt.Fprintln(m.out, "\nChoose an option:")
		fmt.Fprintln(m.out, " 1) Start a new game")
		fmt.Fprintln(m.out, " 2) High scores")
		fmt.Fprintln(m.out, " 3) Quit")

		switch m.p.Number("> ", 1, 3) {
		case 1:
			if err := m.runGame(); err != nil {
				return err
			}
		case 2:
			m.highScoresMenu()
		case 3:
			return nil
		}
	}
}

// runGame plays one full game and records its result.
func (m *Menu) runGame() error {
	name := m.p.Line("Please enter your name: ")

	// The catalog was validated at startup; a failure here can not happen.
	catalog, err := m.world.Catalog()
	if err != nil {
		return err
	}

	seed := m.world.Balance.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(m.world.SessionSpec(name), catalog, game.NewDice(seed))
	m.log.Info("game started", slog.String("player", name), slog.Int64("seed", seed))

	fmt.Fprintf(m.out, "\nWelcome aboard %s! You are the captain of a trader ship.\n", name)
	fmt.Fprintf(m.out, "Your task is to make as much profit as you can in the next %d days. Good luck!\n",
		session.LastDay())

	for !session.Finished() {
		if session.Day() == session.LastDay() {
			fmt.Fprintln(m.out, "\nThis is the last day of trade! Sell any products left in your ship!")
		}
		m.printStatus(session)
		m.tradeDayMenu(session)
		session.EndDay()
	}

	result := session.Result()
	fmt.Fprintf(m.out, "\nWell done captain %s! You have earned %d coins in %d trade days!\n",
		result.Name, result.CoinsEarned, result.AmountOfTradeDays)

	if _, err := m.scores.Append(result); err != nil {
		// The game already finished; a score that fails to persist is
		// reported but does not kill the process.
		m.log.Error("failed to record high score", slog.String("error", err.Error()))
		fmt.Fprintln(m.out, "Could not record your score!")
	}
	m.log.Info("game finished",
		slog.String("player", result.Name),
		slog.Int("coins_earned", result.CoinsEarned),
		slog.Int("trade_days", result.AmountOfTradeDays))
	return nil
}

// tradeDayMenu loops over one trade day's actions until the day is finished.
func (m *Menu) tradeDayMenu(s *game.Session) {
	fmt.Fprintln(m.out, "\nIt's the morning of a new trade day.")
	for {
		fmt.Fprintln(m.out, "\nChoose an action:")
		fmt.Fprintln(m.out, " 1) Trade products")
		fmt.Fprintln(m.out, " 2) Show product prices")
		fmt.Fprintln(m.out, " 3) Show inventory")
		fmt.Fprintln(m.out, " 4) Show budget")
		fmt.Fprintln(m.out, " 5) Sail to a new destination")
		fmt.Fprintln(m.out, " 6) Ship management")
		fmt.Fprintln(m.out, " 7) Finish trade day")
		fmt.Fprintln(m.out, " 8) End game")

		switch m.p.Number("> ", 1, 8) {
		case 1:
			m.tradeMenu(s)
		case 2:
			m.printPrices(s)
		case 3:
			m.printInventory(s)
		case 4:
			fmt.Fprintf(m.out, "You currently have %d coins.\n", s.Ledger().Budget())
		case 5:
			m.sailMenu(s)
		case 6:
			m.shipMenu(s)
		case 7:
			fmt.Fprintln(m.out, "The trade day has finished, you go to sleep.")
			return
		case 8:
			s.RequestFinish()
			return
		}
	}
}

// tradeMenu performs one buy or sell through the transaction engine.
func (m *Menu) tradeMenu(s *game.Session) {
	productName := m.p.Line("Choose a product name to trade: ")
	product, err := s.Catalog().ByName(productName)
	if err != nil {
		fmt.Fprintf(m.out, "There is no product called %q here.\n", productName)
		return
	}

	held, _ := s.Ledger().QuantityOf(product)
	fmt.Fprintf(m.out, "You currently have %d of %s.\n", held, product.Name)

	action := m.p.Choice("Do you want to buy or sell? (buy/sell): ", []string{"buy", "sell"})
	amount := m.p.Number(fmt.Sprintf("Choose the amount to %s: ", action), 1, 1_000_000)

	switch action {
	case "buy":
		cost, err := s.Engine().Buy(product, amount)
		if err != nil {
			m.printTradeError(err)
			return
		}
		fmt.Fprintf(m.out, "Bought %d %s for %d coins.\n", amount, product.Name, cost)
		m.log.Info("buy",
			slog.String("product", product.Name),
			slog.Int("amount", amount),
			slog.Int("cost", cost))
	case "sell":
		proceeds, err := s.Engine().Sell(product, amount)
		if err != nil {
			m.printTradeError(err)
			return
		}
		fmt.Fprintf(m.out, "Sold %d %s for %d coins.\n", amount, product.Name, proceeds)
		m.log.Info("sell",
			slog.String("product", product.Name),
			slog.Int("amount", amount),
			slog.Int("proceeds", proceeds))
	}
}

// sailMenu moves the ship to another city.
func (m *Menu) sailMenu(s *game.Session) {
	fmt.Fprintf(m.out, "You are currently porting at %s.\n", s.Ledger().Location())
	fmt.Fprintf(m.out, "Journey time: %d hours. Hours left in the workday: %d.\n",
		s.Ship().VoyageTime(), s.HoursLeft())

	destination := m.p.Choice(
		fmt.Sprintf("Choose a destination %v: ", s.World().Cities()),
		s.World().Cities())

	damaged, err := s.Sail(destination)
	switch {
	case errors.Is(err, game.ErrShipBroken):
		fmt.Fprintln(m.out, "Your ship is broken! Fix it before sailing.")
	case errors.Is(err, game.ErrAlreadyInCity):
		fmt.Fprintln(m.out, "You are already in here!")
	case errors.Is(err, game.ErrNotEnoughHours):
		fmt.Fprintln(m.out, "It is already too late! You can't sail today.")
	case err != nil:
		fmt.Fprintf(m.out, "Can't sail: %v\n", err)
	default:
		fmt.Fprintf(m.out, "You sailed to %s. %d hours of the workday remain.\n",
			destination, s.HoursLeft())
		m.log.Info("sailed", slog.String("destination", destination))
		if damaged {
			fmt.Fprintf(m.out, "Your ship broke during the voyage! Fixing it will cost %d coins.\n",
				s.Ship().FixCost())
			m.log.Warn("ship broke", slog.Int("fix_cost", s.Ship().FixCost()))
		}
	}
}

// shipMenu shows ship status and offers fix/upgrade.
func (m *Menu) shipMenu(s *game.Session) {
	ship := s.Ship()
	status := "healthy"
	if ship.Broken() {
		status = fmt.Sprintf("broken (fix cost %d coins)", ship.FixCost())
	}
	fmt.Fprintf(m.out, "Ship status: %s. Voyage time: %d hours.\n", status, ship.VoyageTime())
	fmt.Fprintln(m.out, " 1) Fix ship")
	fmt.Fprintln(m.out, " 2) Upgrade ship (faster voyages)")
	fmt.Fprintln(m.out, " 3) Back")

	switch m.p.Number("> ", 1, 3) {
	case 1:
		if !ship.Broken() {
			fmt.Fprintln(m.out, "The ship is not broken.")
			return
		}
		if err := s.FixShip(); err != nil {
			fmt.Fprintln(m.out, "You can't afford the repair!")
			return
		}
		fmt.Fprintln(m.out, "The ship is fixed and ready to sail.")
		m.log.Info("ship fixed")
	case 2:
		fmt.Fprintf(m.out, "An upgrade costs %d coins and %d hours of labor.\n",
			ship.UpgradePrice(), ship.UpgradeLaborHours())
		err := s.UpgradeShip()
		switch {
		case errors.Is(err, game.ErrShipNotUpgradeable):
			fmt.Fprintln(m.out, "The ship can not be upgraded any further.")
		case errors.Is(err, game.ErrNotEnoughHours):
			fmt.Fprintln(m.out, "Not enough hours left today for the upgrade work.")
		case errors.Is(err, game.ErrInsufficientBudget):
			fmt.Fprintln(m.out, "You can't afford the upgrade!")
		case err != nil:
			fmt.Fprintf(m.out, "Upgrade failed: %v\n", err)
		default:
			fmt.Fprintf(m.out, "Upgrade done! Voyage time is now %d hours.\n", ship.VoyageTime())
			m.log.Info("ship upgraded", slog.Int("voyage_time", ship.VoyageTime()))
		}
	}
}

// printTradeError maps a transaction failure to its message.
func (m *Menu) printTradeError(err error) {
	switch {
	case errors.Is(err, game.ErrInsufficientBudget):
		fmt.Fprintln(m.out, "You don't have enough coins for that!")
	case errors.Is(err, game.ErrInsufficientQuantity):
		fmt.Fprintln(m.out, "You don't have that much to sell!")
	default:
		fmt.Fprintf(m.out, "Trade failed: %v\n", err)
	}
}

// printStatus shows the morning banner of a trade day.
func (m *Menu) printStatus(s *game.Session) {
	fmt.Fprintf(m.out, "\nTrade day %d/%d\n", s.Day(), s.LastDay())
	fmt.Fprintf(m.out, "Budget: %d coins\n", s.Ledger().Budget())
	fmt.Fprintf(m.out, "Your ship is anchoring at %s\n", s.Ledger().Location())
	if s.Ship().Broken() {
		fmt.Fprintln(m.out, "Your ship is BROKEN - visit ship management!")
	}
}
