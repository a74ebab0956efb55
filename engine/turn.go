package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/legend/engine/dialogue"
	"github.com/nathoo/legend/engine/enemy"
	"github.com/nathoo/legend/engine/game"
	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/player"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// Score bonuses.
const (
	victoryBonus   = 500
	goldScoreRatio = 2
)

// encounterKinds are the enemies a random encounter can bring, indexed by
// the wander roll.
var encounterKinds = []types.EnemyKind{types.Slime, types.Bat, types.Goblin, types.Skeleton}

// encounterClearance is how close an existing enemy suppresses encounters.
const encounterClearance = 2

// defaultConsumables is the order "use" without an object tries.
var defaultConsumables = []int{inventory.HealthPotion, inventory.FullHealthPotion}

// useItem consumes a carried item. With no name it drinks a potion.
func (e *Engine) useItem(st *step, name string) {
	s := e.Session

	id := 0
	if name == "" {
		id = defaultConsumable(s)
		if id == 0 {
			st.say("You don't have any potions!")
			return
		}
	} else {
		item, ok := inventory.FindByName(name)
		if !ok || state.CarriedIndex(s, item.ID) < 0 {
			st.say(fmt.Sprintf("You don't have a %s.", name))
			return
		}
		if item.Category != types.Consumable {
			st.say(fmt.Sprintf("You can't use the %s. Try 'equip %s'.", item.Name, name))
			return
		}
		id = item.ID
	}

	item := inventory.Lookup(id)
	res := inventory.UseItem(id, s.Game.Player.Health, s.Game.Player.MaxHealth)
	if !res.Success {
		st.say(res.Message)
		return
	}
	state.Take(s, id)
	s.Game.Player = player.Heal(s.Game.Player, res.HealthRestored)
	s.AttackBoost += res.AttackBoost
	s.DefenseBoost += res.DefenseBoost

	if item.HealAmount > 0 {
		st.say(fmt.Sprintf("You drink the %s and heal %d HP! (%d potions left)", item.Name, res.HealthRestored, potionCount(s)))
	} else {
		st.say(fmt.Sprintf("You use the %s. %s", item.Name, res.Message))
	}
	st.emit("item_used", map[string]any{"item": item.Name, "healed": res.HealthRestored})
}

func defaultConsumable(s *types.Session) int {
	for _, id := range defaultConsumables {
		if state.CarriedIndex(s, id) >= 0 {
			return id
		}
	}
	for _, it := range s.Carried {
		if it.Category == types.Consumable && it.Quantity > 0 {
			return it.ID
		}
	}
	return 0
}

func potionCount(s *types.Session) int {
	n := 0
	for _, it := range s.Carried {
		if it.HealAmount > 0 {
			n += it.Quantity
		}
	}
	return n
}

// interact reads the tile the player stands on.
func (e *Engine) interact(st *step) {
	s := e.Session
	text, ok := dialogue.At(s, e.Map, s.Game.Pos)
	if !ok {
		st.say(dialogue.Nothing)
		return
	}
	st.say(text)
	st.emit("interacted", map[string]any{"x": s.Game.Pos.X, "y": s.Game.Pos.Y})
}

// endTurn advances the clock and lets the world react to the player.
func (e *Engine) endTurn(st *step, moved bool) {
	s := e.Session
	s.Game.TurnNumber++

	firstVisit := false
	if moved {
		firstVisit = !s.Visited[s.Game.Pos]
		s.Visited[s.Game.Pos] = true
		s.Game.CurrentArea = world.AreaName(s.Game.Pos.X, s.Game.Pos.Y)
	}

	e.collectPickup(st)
	e.moveEnemies()
	e.ambush(st)
	if firstVisit {
		e.encounter(st)
	}
	e.checkEnd(st)
}

// collectPickup picks up whatever lies on the player's tile.
func (e *Engine) collectPickup(st *step) {
	s := e.Session
	i := state.PickupAt(s, s.Game.Pos)
	if i < 0 {
		return
	}
	p := s.Pickups[i]

	if p.ItemID != 0 {
		if !state.Give(s, p.ItemID) {
			st.say("Your inventory is full.")
			return
		}
		item := inventory.Lookup(p.ItemID)
		switch {
		case p.ItemID == inventory.HealthPotion:
			st.say("You found a health potion!")
		case item.Category == types.Weapon || item.Category == types.Armor:
			st.say(fmt.Sprintf("You found a %s! Type 'equip %s' to use it.", item.Name, item.Name))
		default:
			st.say(fmt.Sprintf("You found a %s!", item.Name))
		}
		st.emit("item_collected", map[string]any{"item": item.Name})
	} else {
		score := p.Gold * goldScoreRatio
		s.Inventory = inventory.AddGold(s.Inventory, p.Gold)
		s.Score += score
		if p.Label == "Chest" {
			st.say(fmt.Sprintf("You opened a treasure chest! +%d gold, +%d score", p.Gold, score))
		} else {
			st.say(fmt.Sprintf("You found %d gold coins! +%d score", p.Gold, score))
		}
		st.emit("gold_collected", map[string]any{"gold": p.Gold})
	}
	s.Pickups = append(s.Pickups[:i], s.Pickups[i+1:]...)
}

// moveEnemies updates behaviors and steps every live enemy. The engaged
// enemy holds its ground.
func (e *Engine) moveEnemies() {
	s := e.Session
	for i := range s.Enemies {
		foe := &s.Enemies[i]
		if !foe.Alive {
			continue
		}
		foe.Behavior = enemy.UpdateBehavior(*foe)
		if s.Battle.State.Active && s.Battle.Enemy == i {
			continue
		}
		next := enemy.CalculateMoveWith(*foe, s.Game.Pos, e.Source)
		if next == foe.Pos || !game.IsInBounds(next) || !e.Map.Walkable(next.X, next.Y) || state.Occupied(s, next, i) {
			continue
		}
		foe.Pos = next
	}
}

// ambush lets every other enemy in reach strike the player.
func (e *Engine) ambush(st *step) {
	s := e.Session
	for i, foe := range s.Enemies {
		if !foe.Alive || (s.Battle.State.Active && s.Battle.Enemy == i) {
			continue
		}
		if !enemy.ShouldAttack(foe, s.Game.Pos) {
			continue
		}
		guarded := s.Game.Player
		guarded.Defense = state.EffectiveDefense(s)
		before := s.Game.Player.Health
		s.Game.Player.Health = player.TakeDamage(guarded, enemy.AttackDamage(foe)).Health
		dmg := before - s.Game.Player.Health
		st.say(fmt.Sprintf("The %s hits you for %d damage!", foe.Kind, dmg))
		st.emit("player_hit", map[string]any{"enemy": foe.Kind.String(), "damage": dmg})
	}
}

// encounter may spawn a wandering enemy next to a freshly visited grass tile.
func (e *Engine) encounter(st *step) {
	s := e.Session
	pos := s.Game.Pos
	if e.Map.Tile(pos.X, pos.Y) != types.Grass {
		return
	}
	for _, foe := range s.Enemies {
		if foe.Alive && player.Distance(foe.Pos, pos) <= encounterClearance {
			return
		}
	}
	if !e.Source.Encounter(pos) {
		return
	}

	roll := e.Source.Wander(pos) % len(encounterKinds)
	if roll < 0 {
		roll += len(encounterKinds)
	}
	kind := encounterKinds[roll]

	for _, dir := range []types.Direction{types.North, types.South, types.West, types.East} {
		at := player.Move(pos, dir)
		if !game.IsInBounds(at) || !e.Map.Walkable(at.X, at.Y) || state.Occupied(s, at, -1) {
			continue
		}
		s.Enemies = append(s.Enemies, enemy.Spawn(kind, at))
		st.say(fmt.Sprintf("A wild %s appears!", kind))
		st.emit("encounter", map[string]any{"enemy": kind.String(), "x": at.X, "y": at.Y})
		e.Log.Debug("encounter", zap.String("enemy", kind.String()), zap.Int("x", at.X), zap.Int("y", at.Y))
		return
	}
}

// checkEnd decides defeat and victory.
func (e *Engine) checkEnd(st *step) {
	s := e.Session

	if player.IsDefeated(s.Game.Player) {
		e.endBattle()
		s.Game.Phase = types.GameOver
		s.Running = false
		st.say("You have been defeated...")
		st.emit("player_defeated", map[string]any{"turn": s.Game.TurnNumber})
		e.Log.Info("player defeated", zap.Int("turn", s.Game.TurnNumber), zap.Int("score", s.Score))
		return
	}

	allClear := s.Game.EnemiesDefeated > 0 && state.LiveEnemies(s) == 0
	if !s.Game.BossDefeated && !allClear {
		return
	}
	s.Score += victoryBonus
	s.Victory = true
	s.Running = false
	s.Game.Phase = types.GameOver
	if s.Game.BossDefeated {
		st.say("Ganon has fallen! Hyrule is saved!")
	} else {
		st.say("Victory! All enemies defeated!")
	}
	st.emit("victory", map[string]any{"score": s.Score})
	e.Log.Info("victory", zap.Int("turn", s.Game.TurnNumber), zap.Int("score", s.Score))
}
