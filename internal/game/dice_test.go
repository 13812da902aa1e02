package game

import "testing"

// scriptedDice feeds predetermined rolls to the component under test.
// When a script runs out, IntBetween returns min and Float64 returns 0.99.
type scriptedDice struct {
	ints   []int
	floats []float64
}

func (d *scriptedDice) IntBetween(min, max int) int {
	if len(d.ints) == 0 {
		return min
	}
	v := d.ints[0]
	d.ints = d.ints[1:]
	return v
}

func (d *scriptedDice) Float64() float64 {
	if len(d.floats) == 0 {
		return 0.99
	}
	v := d.floats[0]
	d.floats = d.floats[1:]
	return v
}

func TestSeededDiceBounds(t *testing.T) {
	dice := NewDice(7)
	for i := 0; i < 1000; i++ {
		v := dice.IntBetween(3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("IntBetween(3, 9) = %d, outside bounds", v)
		}
		f := dice.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, outside [0,1)", f)
		}
	}
}

func TestSeededDiceReproducible(t *testing.T) {
	a, b := NewDice(42), NewDice(42)
	for i := 0; i < 100; i++ {
		if a.IntBetween(0, 1000) != b.IntBetween(0, 1000) {
			t.Fatal("same seed produced different rolls")
		}
	}
}

func TestSeededDiceDegenerateRange(t *testing.T) {
	dice := NewDice(1)
	if v := dice.IntBetween(5, 5); v != 5 {
		t.Fatalf("IntBetween(5, 5) = %d, want 5", v)
	}
}
