package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

func TestTile_DefaultMap(t *testing.T) {
	tests := []struct {
		x, y int
		want types.TileType
	}{
		{0, 50, types.Wall},
		{99, 50, types.Wall},
		{50, 0, types.Wall},
		{50, 99, types.Wall},
		{20, 40, types.Water},
		{29, 59, types.Water},
		{30, 59, types.Grass},
		{60, 10, types.Forest},
		{79, 29, types.Forest},
		{80, 29, types.Grass},
		{75, 75, types.DungeonEntrance},
		{25, 25, types.DungeonEntrance},
		{50, 50, types.Grass},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, world.Tile(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
	}
}

func TestWalkable(t *testing.T) {
	assert.False(t, world.Walkable(0, 0))
	assert.False(t, world.Walkable(25, 50))
	assert.True(t, world.Walkable(70, 20))
	assert.True(t, world.Walkable(75, 75))
	assert.True(t, world.Walkable(50, 50))
}

func TestWalkable_Property_MatchesTile(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.IntRange(0, 99).Draw(rt, "x")
		y := rapid.IntRange(0, 99).Draw(rt, "y")
		tile := world.Tile(x, y)
		assert.Equal(rt, tile != types.Wall && tile != types.Water, world.Walkable(x, y))
	})
}

func TestAreaName(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "Hyrule Field NW"},
		{30, 0, "Hyrule Castle"},
		{50, 10, "Kakariko Village"},
		{80, 10, "Death Mountain"},
		{50, 50, "Sacred Grove"},
		{25, 40, "Lake Hylia"},
		{99, 99, "Ganon's Tower"},
		{75, 75, "Ganon's Tower"},
		{10, 80, "Gerudo Desert"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, world.AreaName(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
	}
}

func TestHasEvent(t *testing.T) {
	assert.True(t, world.HasEvent(75, 75))
	assert.True(t, world.HasEvent(25, 25))
	assert.True(t, world.HasEvent(50, 50))
	assert.False(t, world.HasEvent(51, 50))
}

func TestMap_AddRegion(t *testing.T) {
	m := world.DefaultMap()
	m.AddRegion(types.Region{Tile: types.Water, X1: 40, Y1: 40, X2: 42, Y2: 42})
	m.AddRegion(types.Region{Tile: types.DungeonEntrance, X1: 10, Y1: 10, X2: 11, Y2: 11})

	assert.Equal(t, types.Water, m.Tile(41, 41))
	assert.False(t, m.Walkable(41, 41))
	assert.Equal(t, types.DungeonEntrance, m.Tile(10, 10))
	assert.True(t, m.HasEvent(10, 10))
	assert.Len(t, m.Dungeons(), 3)

	// The package-level default map is untouched.
	assert.Equal(t, types.Grass, world.Tile(41, 41))
}

func TestMap_PriorityWallOverDungeon(t *testing.T) {
	m := world.DefaultMap()
	m.AddRegion(types.Region{Tile: types.DungeonEntrance, X1: 0, Y1: 5, X2: 1, Y2: 6})
	assert.Equal(t, types.Wall, m.Tile(0, 5))
}
