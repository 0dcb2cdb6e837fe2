// Package trig looks up fixed-point sine and cosine values in a
// pre-calculated table. Angles are expressed in table units: quarterTurn
// units per 90 degrees. Results are scaled by the table's multiplier.
package trig

import "math"

// Table holds pre-calculated sine values for the first quadrant; the
// other quadrants are derived by mirroring.
type Table struct {
	multiplier  int
	quarterTurn int
	sines       []int
}

// New generates a table of quarterTurn+1 sine values scaled by multiplier.
// Both arguments must be positive.
func New(multiplier, quarterTurn int) *Table {
	if multiplier <= 0 || quarterTurn <= 0 {
		panic("trig: multiplier and quarterTurn must be positive")
	}

	t := &Table{
		multiplier:  multiplier,
		quarterTurn: quarterTurn,
		sines:       make([]int, quarterTurn+1),
	}
	for i := 0; i <= quarterTurn; i++ {
		radians := (float64(i) * 2 * math.Pi) / float64(quarterTurn*4)
		t.sines[i] = int(math.Floor(math.Sin(radians)*float64(multiplier) + 0.5))
	}
	return t
}

// Multiplier returns the fixed-point scale factor of the table's results.
func (t *Table) Multiplier() int {
	return t.multiplier
}

// QuarterTurn returns the number of angle units per 90 degrees.
func (t *Table) QuarterTurn() int {
	return t.quarterTurn
}

// Sin returns the sine of angle, scaled by the table's multiplier.
func (t *Table) Sin(angle int) int {
	fullTurn := t.quarterTurn * 4

	if angle <= -fullTurn || angle >= fullTurn {
		angle %= fullTurn
	}
	if angle < 0 {
		angle += fullTurn
	}

	neg := false
	if angle >= t.quarterTurn*2 {
		// The second half of the sine curve mirrors the first half,
		// negated.
		angle -= t.quarterTurn * 2
		neg = true
	}
	if angle > t.quarterTurn {
		// The second quarter mirrors the first.
		angle = 2*t.quarterTurn - angle
	}

	if neg {
		return -t.sines[angle]
	}
	return t.sines[angle]
}

// Cos returns the cosine of angle, scaled by the table's multiplier.
func (t *Table) Cos(angle int) int {
	return t.Sin(angle + t.quarterTurn)
}
