// Package render draws the overworld viewport, the heads-up line and the
// fixed banners as plain text. Colour is applied separately by Colorize so
// plain drivers and tests see bare ASCII.
package render

import (
	"fmt"

	"github.com/nathoo/legend/engine/enemy"
	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// Default viewport size, in tiles.
const (
	DefaultWidth  = 21
	DefaultHeight = 11
)

const (
	playerSymbol = '@'
	offMap       = ' '
)

var tileSymbols = map[types.TileType]byte{
	types.Grass:           '.',
	types.Forest:          'T',
	types.Water:           '~',
	types.DungeonEntrance: 'O',
	types.Wall:            '#',
}

// Map returns a width x height viewport centred on the player. Even sizes
// put the extra column or row after the player.
func Map(s *types.Session, m *world.Map, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	pos := s.Game.Pos
	left, top := pos.X-width/2, pos.Y-height/2

	lines := make([]string, 0, height)
	row := make([]byte, width)
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			row[dx] = cell(s, m, types.Position{X: left + dx, Y: top + dy})
		}
		lines = append(lines, string(row))
	}
	return lines
}

// cell picks the symbol for one tile: player, then enemy, then pickup,
// then terrain.
func cell(s *types.Session, m *world.Map, p types.Position) byte {
	if p.X < 0 || p.Y < 0 || p.X >= world.Size || p.Y >= world.Size {
		return offMap
	}
	if p == s.Game.Pos {
		return playerSymbol
	}
	if i := state.EnemyAt(s, p); i >= 0 {
		return enemy.Symbol(s.Enemies[i].Kind)
	}
	if i := state.PickupAt(s, p); i >= 0 {
		return PickupSymbol(s.Pickups[i])
	}
	return tileSymbols[m.Tile(p.X, p.Y)]
}

// PickupSymbol is '*' for consumables, '$' for gold, 'C' for chests, '+'
// for weapons and '[' for armor.
func PickupSymbol(p types.Pickup) byte {
	if p.Label == "Chest" {
		return 'C'
	}
	if p.ItemID == 0 {
		return '$'
	}
	switch inventory.Lookup(p.ItemID).Category {
	case types.Weapon:
		return '+'
	case types.Armor:
		return '['
	default:
		return '*'
	}
}

// HUD is the one-line player summary shown under the map.
func HUD(s *types.Session) string {
	p := s.Game.Player
	return fmt.Sprintf("HP: %d/%d  Lvl: %d  Score: %d  Turn: %d",
		p.Health, p.MaxHealth, p.Level, s.Score, s.Game.TurnNumber)
}

// Legend explains the map symbols.
func Legend() []string {
	return []string{
		"@ You | s/k/b/g/D/B Enemies | * Potion | $ Gold | C Chest | + Sword | [ Armor",
		". Grass | T Forest | ~ Water | O Dungeon | # Wall",
	}
}

// Title is the start-of-game banner.
func Title() []string {
	return []string{
		"==========================================",
		"      LEGEND OF WASM: HYRULE HEROES",
		"==========================================",
	}
}

// GameOver is the end-of-game banner.
func GameOver(victory bool) []string {
	msg := "               GAME OVER"
	if victory {
		msg = "       VICTORY! HYRULE IS SAVED!"
	}
	return []string{
		"==========================================",
		msg,
		"==========================================",
	}
}
