/*
Package game
File: result.go
Description:
    The immutable score record a finished game emits to the high-score
    collaborator. Field names on the wire are stable.
*/

package game

import "time"

// GameResult records one finished game. Never mutated after creation.
type GameResult struct {
	Name              string    `yaml:"name" json:"name"`                                 // Player's name
	CoinsEarned       int       `yaml:"coins_earned" json:"coins_earned"`                 // Final budget at end of game
	AmountOfTradeDays int       `yaml:"amount_of_trade_days" json:"amount_of_trade_days"` // Trade days elapsed
	GameDatetime      time.Time `yaml:"game_datetime" json:"game_datetime"`               // When the game finished
}
