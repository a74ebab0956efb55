package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/legend/engine/game"
	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/player"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/types"
)

// lookRadius is how far "look" reports enemies.
const lookRadius = 5

func helpLines() []string {
	lines := strings.Split(game.Help(), "\n")
	return append(lines,
		"Attacks: a [sword|spin|bow|magic|bash] - Spin needs half health, magic a quarter",
		"Gear: equip <item> - Wield a weapon or wear armor, u <item> - Use a specific item",
		"Info: stat - Status, look - Look around, h - Help",
	)
}

func (e *Engine) statusLines() []string {
	s := e.Session
	p := s.Game.Player
	c := state.PlayerCombatant(s)
	return []string{
		"=== STATUS ===",
		game.Status(s.Game),
		fmt.Sprintf("EXP: %d/%d", p.Experience, player.ExpToNextLevel(p.Level)),
		fmt.Sprintf("Attack: %d  Defense: %d", c.Attack, c.Defense),
		fmt.Sprintf("Gold: %d  Potions: %d", s.Inventory.Gold, potionCount(s)),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Enemies defeated: %d  Remaining: %d", s.Game.EnemiesDefeated, state.LiveEnemies(s)),
	}
}

func (e *Engine) lookLines() []string {
	s := e.Session
	pos := s.Game.Pos
	lines := []string{
		fmt.Sprintf("You are in %s, standing on %s at (%d, %d).",
			s.Game.CurrentArea, e.Map.Tile(pos.X, pos.Y), pos.X, pos.Y),
	}

	type sighting struct {
		name string
		dist int
	}
	var seen []sighting
	for _, foe := range s.Enemies {
		if !foe.Alive {
			continue
		}
		if d := player.Distance(foe.Pos, pos); d <= lookRadius {
			seen = append(seen, sighting{
				name: fmt.Sprintf("%s %s (%d HP)", foe.Kind, bearing(pos, foe.Pos), foe.Health),
				dist: d,
			})
		}
	}
	sort.SliceStable(seen, func(i, j int) bool { return seen[i].dist < seen[j].dist })
	if len(seen) == 0 {
		lines = append(lines, "No enemies in sight.")
	} else {
		names := make([]string, len(seen))
		for i, sg := range seen {
			names[i] = sg.name
		}
		lines = append(lines, "Enemies nearby: "+strings.Join(names, ", ")+".")
	}

	for _, d := range e.Map.Dungeons() {
		if d != pos && player.Distance(d, pos) <= lookRadius && e.Map.Tile(d.X, d.Y) == types.DungeonEntrance {
			lines = append(lines, fmt.Sprintf("A dungeon entrance lies %s.", bearing(pos, d)))
		}
	}

	if _, ok := state.LoreAt(s, pos); ok || e.Map.HasEvent(pos.X, pos.Y) {
		lines = append(lines, "Something here catches your eye. (x to interact)")
	}
	return lines
}

// bearing names the compass direction from a to b.
func bearing(a, b types.Position) string {
	var dir string
	switch {
	case b.Y < a.Y:
		dir = "north"
	case b.Y > a.Y:
		dir = "south"
	}
	switch {
	case b.X > a.X:
		dir += "east"
	case b.X < a.X:
		dir += "west"
	}
	if dir == "" {
		return "here"
	}
	return "to the " + dir
}

func (e *Engine) inventoryLines() []string {
	s := e.Session
	lines := []string{"=== INVENTORY ==="}
	if len(s.Carried) == 0 {
		lines = append(lines, "You are carrying nothing.")
	}
	for _, it := range s.Carried {
		line := "  " + it.Name
		if it.Quantity > 1 {
			line += fmt.Sprintf(" x%d", it.Quantity)
		}
		if it.Equipped {
			line += " (equipped)"
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		fmt.Sprintf("Gold: %d", s.Inventory.Gold),
		fmt.Sprintf("Slots: %d/%d", s.Inventory.ItemCount, s.Inventory.MaxCapacity),
	)
	if potionCount(s) > 0 {
		lines = append(lines, "", "Use 'u' to drink a potion.")
	}
	return lines
}

// equip wields a carried weapon or wears carried armor.
func (e *Engine) equip(st *step, name string) {
	s := e.Session
	if name == "" {
		st.say("Equip what?")
		return
	}
	item, ok := inventory.FindByName(name)
	if !ok || state.CarriedIndex(s, item.ID) < 0 {
		st.say(fmt.Sprintf("You don't have a %s.", name))
		return
	}

	switch item.Category {
	case types.Weapon:
		s.Inventory = inventory.EquipWeapon(s.Inventory, item.ID)
	case types.Armor:
		s.Inventory = inventory.EquipArmor(s.Inventory, item.ID)
	default:
		st.say(fmt.Sprintf("You can't equip the %s.", item.Name))
		return
	}
	for i := range s.Carried {
		if s.Carried[i].Category == item.Category {
			s.Carried[i].Equipped = s.Carried[i].ID == item.ID
		}
	}
	st.say(fmt.Sprintf("You equip the %s.", item.Name))
	st.emit("item_equipped", map[string]any{"item": item.Name})
}
