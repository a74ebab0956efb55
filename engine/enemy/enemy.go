// Package enemy spawns enemies from the per-kind stat table and decides how
// they move, when they attack and how they take damage.
package enemy

import (
	"strings"

	"github.com/nathoo/legend/engine/chance"
	"github.com/nathoo/legend/types"
)

// lowHealthPercent is the health share below which non-boss enemies flee.
const lowHealthPercent = 20

type baseline struct {
	health, attack, defense, exp int
	behavior                     types.Behavior
	speed                        int
	symbol                       byte
}

var table = map[types.EnemyKind]baseline{
	types.Slime:      {health: 30, attack: 5, defense: 2, exp: 10, behavior: types.Wander, speed: 4, symbol: 's'},
	types.Skeleton:   {health: 50, attack: 12, defense: 5, exp: 25, behavior: types.Guard, speed: 8, symbol: 'k'},
	types.Bat:        {health: 20, attack: 8, defense: 1, exp: 15, behavior: types.Chase, speed: 14, symbol: 'b'},
	types.Goblin:     {health: 40, attack: 10, defense: 4, exp: 20, behavior: types.Chase, speed: 10, symbol: 'g'},
	types.DarkKnight: {health: 80, attack: 20, defense: 15, exp: 50, behavior: types.Guard, speed: 9, symbol: 'D'},
	types.Boss:       {health: 200, attack: 30, defense: 20, exp: 100, behavior: types.BossPattern, speed: 99, symbol: 'B'},
}

// Kinds lists every enemy kind in table order.
var Kinds = []types.EnemyKind{
	types.Slime, types.Skeleton, types.Bat, types.Goblin, types.DarkKnight, types.Boss,
}

// Spawn creates a full-health enemy of the given kind at pos.
func Spawn(kind types.EnemyKind, pos types.Position) types.EnemyState {
	b := table[kind]
	return types.EnemyState{
		Kind:      kind,
		Health:    b.health,
		MaxHealth: b.health,
		Attack:    b.attack,
		Defense:   b.defense,
		ExpReward: b.exp,
		Pos:       pos,
		Behavior:  b.behavior,
		Alive:     b.health > 0,
	}
}

// SpawnBoss places the boss at pos.
func SpawnBoss(pos types.Position) types.EnemyState {
	return Spawn(types.Boss, pos)
}

// BaseStats is a freshly spawned enemy at the origin.
func BaseStats(kind types.EnemyKind) types.EnemyState {
	return Spawn(kind, types.Position{})
}

// DefaultBehavior is the behavior a kind spawns with.
func DefaultBehavior(kind types.EnemyKind) types.Behavior {
	return table[kind].behavior
}

// Speed is used when the player tries to flee. The boss cannot be outrun.
func Speed(kind types.EnemyKind) int {
	return table[kind].speed
}

// Symbol is the map glyph for a kind.
func Symbol(kind types.EnemyKind) byte {
	if b, ok := table[kind]; ok {
		return b.symbol
	}
	return '?'
}

// ParseKind maps a scenario name such as "dark_knight" to a kind.
func ParseKind(name string) (types.EnemyKind, bool) {
	switch strings.ToLower(strings.ReplaceAll(name, " ", "_")) {
	case "slime":
		return types.Slime, true
	case "skeleton":
		return types.Skeleton, true
	case "bat":
		return types.Bat, true
	case "goblin":
		return types.Goblin, true
	case "dark_knight", "darkknight":
		return types.DarkKnight, true
	case "boss", "ganon":
		return types.Boss, true
	default:
		return 0, false
	}
}

// CalculateMove returns where the enemy wants to go next, using the
// position hash for wandering.
func CalculateMove(e types.EnemyState, playerPos types.Position) types.Position {
	return CalculateMoveWith(e, playerPos, chance.PositionHash{})
}

// CalculateMoveWith is CalculateMove with a pluggable wander source.
// The result is unchecked: callers verify walkability and occupancy.
func CalculateMoveWith(e types.EnemyState, playerPos types.Position, src chance.Source) types.Position {
	pos := e.Pos
	switch e.Behavior {
	case types.Chase:
		pos.X += sign(playerPos.X - e.Pos.X)
		pos.Y += sign(playerPos.Y - e.Pos.Y)
	case types.Flee:
		pos.X -= sign(playerPos.X - e.Pos.X)
		pos.Y -= sign(playerPos.Y - e.Pos.Y)
	case types.Wander:
		switch src.Wander(e.Pos) {
		case 0:
			pos.X++
		case 1:
			pos.X--
		case 2:
			pos.Y++
		default:
			pos.Y--
		}
	case types.Guard, types.BossPattern:
	}
	return pos
}

// ShouldAttack reports whether the player is within striking range.
func ShouldAttack(e types.EnemyState, playerPos types.Position) bool {
	return abs(e.Pos.X-playerPos.X)+abs(e.Pos.Y-playerPos.Y) <= 1
}

// UpdateBehavior picks the behavior for the enemy's current health.
// Everything but the boss flees when badly hurt.
func UpdateBehavior(e types.EnemyState) types.Behavior {
	if e.MaxHealth > 0 && e.Health*100/e.MaxHealth < lowHealthPercent && e.Kind != types.Boss {
		return types.Flee
	}
	return DefaultBehavior(e.Kind)
}

// TakeDamage reduces raw damage by half the enemy's defense (minimum 1).
func TakeDamage(e types.EnemyState, raw int) types.EnemyState {
	effective := raw - e.Defense/2
	if effective < 1 {
		effective = 1
	}
	return ApplyDamage(e, effective)
}

// ApplyDamage subtracts damage that has already been through the damage
// engine. Health floors at zero.
func ApplyDamage(e types.EnemyState, dmg int) types.EnemyState {
	e.Health -= dmg
	if e.Health < 0 {
		e.Health = 0
	}
	e.Alive = e.Health > 0
	return e
}

// IsDefeated reports whether the enemy is down.
func IsDefeated(e types.EnemyState) bool {
	return !e.Alive
}

// ExpReward is the experience granted for defeating the enemy.
func ExpReward(e types.EnemyState) int {
	return e.ExpReward
}

// AttackDamage is the enemy's raw attack value.
func AttackDamage(e types.EnemyState) int {
	return e.Attack
}

// Combatant is the enemy's view for the damage engine.
func Combatant(e types.EnemyState) types.CombatantStats {
	return types.CombatantStats{
		Attack:    e.Attack,
		Defense:   e.Defense,
		Health:    e.Health,
		MaxHealth: e.MaxHealth,
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
