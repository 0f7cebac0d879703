package progression

import "math"

// MaxIterationLevel caps level curve iteration so a corrupt XP value cannot
// spin the summation forever.
const MaxIterationLevel = 1000

// Curve holds the XP-curve constants. Values come from the settings catalog;
// nothing here is memoized so a config change can never drift from results.
type Curve struct {
	BaseXP float64
	Growth float64
}

// XPForLevel returns the total cumulative XP required to reach level.
// Level 1 costs nothing; each step k costs BaseXP * Growth^(k-1).
func (c Curve) XPForLevel(level int) float64 {
	if level <= 1 {
		return 0
	}
	cumulative := 0.0
	step := c.BaseXP
	for k := 1; k < level; k++ {
		cumulative += math.Floor(step)
		step *= c.Growth
	}
	return cumulative
}

// LevelFromXP returns the largest level whose cumulative requirement is
// <= xp. Boundary XP belongs to the higher level.
func (c Curve) LevelFromXP(xp float64) int {
	if xp < 0 {
		return 1
	}
	level := 1
	cumulative := 0.0
	step := c.BaseXP
	for level < MaxIterationLevel {
		next := cumulative + math.Floor(step)
		if next > xp {
			return level
		}
		cumulative = next
		step *= c.Growth
		level++
	}
	return level
}

// XPForNextLevel returns the XP gap between level and level+1.
func (c Curve) XPForNextLevel(level int) float64 {
	return c.XPForLevel(level+1) - c.XPForLevel(level)
}

// BusinessPrice returns the price of the NEXT unit of a business given how
// many are already owned. Owned units are never repriced.
func BusinessPrice(baseCost, multiplier float64, ownedQty int) float64 {
	return math.Floor(baseCost * math.Pow(multiplier, float64(ownedQty)))
}

// BusinessUpgradeCost returns the money cost of raising a business from
// level to level+1. The curve is steeper than unit pricing so level boosts
// stay a mid-game sink.
func BusinessUpgradeCost(baseCost float64, level int) float64 {
	return math.Floor(baseCost * 0.6 * math.Pow(1.8, float64(level)))
}
