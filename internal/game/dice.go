/*
Package game
File: dice.go
Description:
    Randomness source for the economy and the ship.
    Price generation, breakdown checks and fix costs all roll through a single
    Dice instance owned by the session, so a fixed seed reproduces a whole game.
*/

package game

import "math/rand"

// Dice is the single random source injected into the price boards and the ship.
type Dice interface {
	// IntBetween returns a uniform integer in [min, max], both ends inclusive.
	IntBetween(min, max int) int

	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// seededDice wraps math/rand with an explicit seed.
type seededDice struct {
	rng *rand.Rand
}

// NewDice creates the production dice. Seed it once per game session.
func NewDice(seed int64) Dice {
	return &seededDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *seededDice) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return d.rng.Intn(max-min+1) + min
}

func (d *seededDice) Float64() float64 {
	return d.rng.Float64()
}
