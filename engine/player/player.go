// Package player holds the player's stat arithmetic: damage, healing,
// experience and leveling, and grid movement.
package player

import (
	"math"

	"github.com/nathoo/legend/types"
)

// Level-up gains.
const (
	levelHealthGain  = 20
	levelAttackGain  = 3
	levelDefenseGain = 2
)

// New returns a fresh level-1 player.
func New() types.PlayerStats {
	return types.PlayerStats{
		Health:     100,
		MaxHealth:  100,
		Attack:     10,
		Defense:    5,
		Experience: 0,
		Level:      1,
	}
}

// TakeDamage reduces raw damage by half the player's defense (minimum 1)
// and subtracts it from health, flooring at zero.
func TakeDamage(stats types.PlayerStats, raw int) types.PlayerStats {
	effective := raw - stats.Defense/2
	if effective < 1 {
		effective = 1
	}
	stats.Health -= effective
	if stats.Health < 0 {
		stats.Health = 0
	}
	return stats
}

// Heal restores health up to the maximum.
func Heal(stats types.PlayerStats, amount int) types.PlayerStats {
	stats.Health = HealedHealth(stats.Health, amount, stats.MaxHealth)
	return stats
}

// HealedHealth is min(current+amount, max).
func HealedHealth(current, amount, max int) int {
	if current+amount > max {
		return max
	}
	return current + amount
}

// IsDefeated reports whether the player has no health left.
func IsDefeated(stats types.PlayerStats) bool {
	return stats.Health <= 0
}

// ExpRequirement is the cumulative experience needed to leave a level:
// floor(100 * 1.5^(level-1)), saturating at math.MaxInt32.
func ExpRequirement(level int) int {
	req := math.Floor(100 * math.Pow(1.5, float64(level-1)))
	if req >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(req)
}

// ExpToNextLevel is how much total experience the given level requires.
func ExpToNextLevel(level int) int {
	return ExpRequirement(level)
}

// GainExperience adds experience and applies every level-up it unlocks.
// Experience is cumulative and never spent.
func GainExperience(stats types.PlayerStats, exp int) types.PlayerStats {
	stats.Experience += exp
	for {
		req := ExpRequirement(stats.Level)
		if stats.Experience < req || req == math.MaxInt32 {
			return stats
		}
		stats.MaxHealth += levelHealthGain
		stats.Health = stats.MaxHealth
		stats.Attack += levelAttackGain
		stats.Defense += levelDefenseGain
		stats.Level++
	}
}

// Combatant is the player's view for the damage engine.
func Combatant(stats types.PlayerStats, equipment int) types.CombatantStats {
	return types.CombatantStats{
		Attack:         stats.Attack,
		Defense:        stats.Defense,
		Health:         stats.Health,
		MaxHealth:      stats.MaxHealth,
		EquipmentBonus: equipment,
	}
}

// Move returns the neighbouring position in the given direction.
// North decreases Y. No bounds are applied.
func Move(pos types.Position, dir types.Direction) types.Position {
	switch dir {
	case types.North:
		pos.Y--
	case types.South:
		pos.Y++
	case types.East:
		pos.X++
	case types.West:
		pos.X--
	}
	return pos
}

// Distance is the Manhattan distance between two positions.
func Distance(a, b types.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
