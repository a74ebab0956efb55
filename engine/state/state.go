// Package state builds a game session from scenario definitions and answers
// lookups over it: enemies and pickups on tiles, carried items, and the
// player's effective combat stats.
package state

import (
	"github.com/nathoo/legend/engine/enemy"
	"github.com/nathoo/legend/engine/game"
	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/player"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// Defs holds the immutable scenario definitions loaded from Lua.
type Defs struct {
	Game    types.GameDef
	Enemies []types.EnemySpawn
	Pickups []types.Pickup
	Regions []types.Region
	Lore    []types.Lore
}

// adjacentOffsets is the order in which neighbouring enemies are found.
var adjacentOffsets = []types.Position{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// NewSession creates a fresh session from definitions. A zero start
// position falls back to the center of the map.
func NewSession(defs *Defs, id string) *types.Session {
	g := game.NewGame()
	if defs.Game.Start != (types.Position{}) {
		g.Pos = defs.Game.Start
	}
	g.CurrentArea = world.AreaName(g.Pos.X, g.Pos.Y)

	s := &types.Session{
		ID:         id,
		Game:       g,
		Inventory:  inventory.New(),
		Battle:     types.Battle{Enemy: -1},
		Visited:    map[types.Position]bool{g.Pos: true},
		Running:    true,
		CommandLog: []string{},
	}

	sword := inventory.CreateWeapon(inventory.WoodenSword)
	sword.Equipped = true
	s.Carried = append(s.Carried, sword)
	s.Inventory = inventory.AddItem(s.Inventory, sword.ID)
	s.Inventory = inventory.EquipWeapon(s.Inventory, sword.ID)

	// Potions beyond the free slots are not granted.
	for i := 0; i < defs.Game.Potions; i++ {
		if !Give(s, inventory.HealthPotion) {
			break
		}
	}
	s.Inventory = inventory.AddGold(s.Inventory, defs.Game.Gold)

	for _, sp := range defs.Enemies {
		s.Enemies = append(s.Enemies, enemy.Spawn(sp.Kind, sp.Pos))
	}
	s.Pickups = append(s.Pickups, defs.Pickups...)
	s.Lore = append(s.Lore, defs.Lore...)
	return s
}

// BuildMap returns the default overworld with the scenario's regions added.
func BuildMap(defs *Defs) *world.Map {
	m := world.DefaultMap()
	for _, r := range defs.Regions {
		m.AddRegion(r)
	}
	return m
}

// EnemyAt returns the index of the live enemy at pos, or -1.
func EnemyAt(s *types.Session, pos types.Position) int {
	for i, e := range s.Enemies {
		if e.Alive && e.Pos == pos {
			return i
		}
	}
	return -1
}

// AdjacentEnemy returns the index of a live enemy next to the player,
// looking north, south, west, then east. Returns -1 if there is none.
func AdjacentEnemy(s *types.Session) int {
	for _, off := range adjacentOffsets {
		pos := types.Position{X: s.Game.Pos.X + off.X, Y: s.Game.Pos.Y + off.Y}
		if i := EnemyAt(s, pos); i >= 0 {
			return i
		}
	}
	return -1
}

// LiveEnemies counts enemies still standing.
func LiveEnemies(s *types.Session) int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// PickupAt returns the index of the pickup at pos, or -1.
func PickupAt(s *types.Session, pos types.Position) int {
	for i, p := range s.Pickups {
		if p.Pos == pos {
			return i
		}
	}
	return -1
}

// LoreAt returns the lore text attached to pos.
func LoreAt(s *types.Session, pos types.Position) (string, bool) {
	for _, l := range s.Lore {
		if l.Pos == pos {
			return l.Text, true
		}
	}
	return "", false
}

// Occupied reports whether pos holds the player or a live enemy other
// than skip.
func Occupied(s *types.Session, pos types.Position, skip int) bool {
	if pos == s.Game.Pos {
		return true
	}
	for i, e := range s.Enemies {
		if i != skip && e.Alive && e.Pos == pos {
			return true
		}
	}
	return false
}

// CarriedIndex returns the index of the carried stack with the given item
// ID, or -1.
func CarriedIndex(s *types.Session, id int) int {
	for i, it := range s.Carried {
		if it.ID == id && it.Quantity > 0 {
			return i
		}
	}
	return -1
}

// Give adds one unit of an item to the carried list. Returns false when the
// inventory is full.
func Give(s *types.Session, id int) bool {
	if inventory.IsFull(s.Inventory) {
		return false
	}
	s.Inventory = inventory.AddItem(s.Inventory, id)
	if i := CarriedIndex(s, id); i >= 0 {
		s.Carried[i].Quantity++
		return true
	}
	s.Carried = append(s.Carried, inventory.Lookup(id))
	return true
}

// Take removes one unit of an item from the carried list. Empty stacks are
// dropped.
func Take(s *types.Session, id int) bool {
	i := CarriedIndex(s, id)
	if i < 0 {
		return false
	}
	s.Inventory = inventory.RemoveItem(s.Inventory, id)
	s.Carried[i].Quantity--
	if s.Carried[i].Quantity <= 0 {
		s.Carried = append(s.Carried[:i], s.Carried[i+1:]...)
	}
	return true
}

// PlayerCombatant is the player's combat view: the equipped weapon's bonus
// drives the multiplier and attack boosts add to attack.
func PlayerCombatant(s *types.Session) types.CombatantStats {
	c := player.Combatant(s.Game.Player, inventory.AttackBonus(s.Inventory.EquippedWeapon))
	c.Attack += s.AttackBoost
	c.Defense = EffectiveDefense(s)
	return c
}

// EffectiveDefense is base defense plus armor and defense boosts.
func EffectiveDefense(s *types.Session) int {
	return s.Game.Player.Defense + inventory.DefenseBonus(s.Inventory.EquippedArmor) + s.DefenseBoost
}
