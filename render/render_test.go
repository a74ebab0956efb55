package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

func session(start types.Position) *types.Session {
	defs := &state.Defs{
		Game:    types.GameDef{Title: "Render", Start: start},
		Enemies: []types.EnemySpawn{{Kind: types.Slime, Pos: types.Position{X: 51, Y: 50}}},
		Pickups: []types.Pickup{{Pos: types.Position{X: 50, Y: 49}, Gold: 10}},
	}
	return state.NewSession(defs, "render-test")
}

func TestMap_CentredOnPlayer(t *testing.T) {
	s := session(types.Position{X: 50, Y: 50})
	lines := Map(s, world.DefaultMap(), 5, 3)
	assert.Equal(t, []string{
		"..$..",
		"..@s.",
		".....",
	}, lines)
}

func TestMap_OffMapAndWalls(t *testing.T) {
	s := session(types.Position{X: 1, Y: 1})
	lines := Map(s, world.DefaultMap(), 5, 5)
	require.Len(t, lines, 5)
	assert.Equal(t, "     ", lines[0])
	assert.Equal(t, " ####", lines[1])
	assert.Equal(t, " #@..", lines[2])
}

func TestMap_Terrain(t *testing.T) {
	s := session(types.Position{X: 30, Y: 50})
	lines := Map(s, world.DefaultMap(), 3, 1)
	assert.Equal(t, "~@.", lines[0])

	s = session(types.Position{X: 75, Y: 76})
	lines = Map(s, world.DefaultMap(), 1, 3)
	assert.Equal(t, []string{"O", "@", "."}, lines)
}

func TestMap_DeadEnemiesHidden(t *testing.T) {
	s := session(types.Position{X: 50, Y: 50})
	s.Enemies[0].Alive = false
	lines := Map(s, world.DefaultMap(), 3, 1)
	assert.Equal(t, ".@.", lines[0])
}

func TestMap_EmptySize(t *testing.T) {
	s := session(types.Position{X: 50, Y: 50})
	assert.Nil(t, Map(s, world.DefaultMap(), 0, 3))
}

func TestPickupSymbol(t *testing.T) {
	tests := []struct {
		name string
		p    types.Pickup
		want byte
	}{
		{"gold", types.Pickup{Gold: 5}, '$'},
		{"chest", types.Pickup{Gold: 50, Label: "Chest"}, 'C'},
		{"potion", types.Pickup{ItemID: inventory.HealthPotion}, '*'},
		{"boost", types.Pickup{ItemID: inventory.AttackBoost}, '*'},
		{"sword", types.Pickup{ItemID: inventory.SteelSword}, '+'},
		{"armor", types.Pickup{ItemID: inventory.ChainMail}, '['},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(PickupSymbol(tt.p)))
		})
	}
}

func TestHUD(t *testing.T) {
	s := session(types.Position{X: 50, Y: 50})
	s.Score = 40
	assert.Equal(t, "HP: 100/100  Lvl: 1  Score: 40  Turn: 1", HUD(s))
}

func TestBanners(t *testing.T) {
	assert.Contains(t, strings.Join(Title(), "\n"), "LEGEND OF WASM: HYRULE HEROES")
	assert.Contains(t, strings.Join(GameOver(false), "\n"), "GAME OVER")
	assert.Contains(t, strings.Join(GameOver(true), "\n"), "VICTORY! HYRULE IS SAVED!")
	assert.Contains(t, Legend()[0], "@ You")
}

func TestColorize_KeepsVisibleWidth(t *testing.T) {
	s := session(types.Position{X: 50, Y: 50})
	plain := Map(s, world.DefaultMap(), 9, 5)
	styled := Colorize(plain)
	require.Len(t, styled, len(plain))
	for i := range plain {
		assert.Equal(t, len(plain[i]), lipgloss.Width(styled[i]))
	}
}
