// Package world answers queries about the fixed 100x100 overworld: tile
// types, walkability, area names and event tiles.
package world

import "github.com/nathoo/legend/types"

// Size is the width and height of the map in tiles.
const Size = 100

const areaSize = 25

var areaNames = [16]string{
	"Hyrule Field NW", "Hyrule Castle", "Kakariko Village", "Death Mountain",
	"Lake Hylia West", "Lake Hylia", "Zora's Domain", "Goron City",
	"Lost Woods West", "Lost Woods", "Sacred Grove", "Temple of Time",
	"Gerudo Desert", "Gerudo Fortress", "Spirit Temple", "Ganon's Tower",
}

// Map is a tile layout built from rectangular regions. Tiles are resolved
// by priority: wall, water, forest, dungeon entrance, then grass.
type Map struct {
	regions  map[types.TileType][]types.Region
	dungeons []types.Position
	events   []types.Position
}

// tilePriority is the order in which overlapping regions win.
var tilePriority = []types.TileType{types.Wall, types.Water, types.Forest}

// DefaultMap is the stock overworld: a wall border, Lake Hylia, the Lost
// Woods and two dungeon entrances.
func DefaultMap() *Map {
	m := &Map{regions: map[types.TileType][]types.Region{}}
	m.AddRegion(types.Region{Tile: types.Wall, X1: 0, Y1: 0, X2: 1, Y2: Size})
	m.AddRegion(types.Region{Tile: types.Wall, X1: Size - 1, Y1: 0, X2: Size, Y2: Size})
	m.AddRegion(types.Region{Tile: types.Wall, X1: 0, Y1: 0, X2: Size, Y2: 1})
	m.AddRegion(types.Region{Tile: types.Wall, X1: 0, Y1: Size - 1, X2: Size, Y2: Size})
	m.AddRegion(types.Region{Tile: types.Water, X1: 20, Y1: 40, X2: 30, Y2: 60})
	m.AddRegion(types.Region{Tile: types.Forest, X1: 60, Y1: 10, X2: 80, Y2: 30})
	m.AddRegion(types.Region{Tile: types.DungeonEntrance, X1: 75, Y1: 75, X2: 76, Y2: 76})
	m.AddRegion(types.Region{Tile: types.DungeonEntrance, X1: 25, Y1: 25, X2: 26, Y2: 26})
	m.events = []types.Position{{X: 50, Y: 50}}
	return m
}

// AddRegion paints a region onto the map. Dungeon regions become single
// entrance tiles for every covered position.
func (m *Map) AddRegion(r types.Region) {
	if r.Tile == types.DungeonEntrance {
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				m.dungeons = append(m.dungeons, types.Position{X: x, Y: y})
			}
		}
		return
	}
	m.regions[r.Tile] = append(m.regions[r.Tile], r)
}

// Tile returns the terrain at (x, y).
func (m *Map) Tile(x, y int) types.TileType {
	for _, tile := range tilePriority {
		for _, r := range m.regions[tile] {
			if x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2 {
				return tile
			}
		}
	}
	if m.isDungeon(x, y) {
		return types.DungeonEntrance
	}
	return types.Grass
}

// Walkable reports whether the player or an enemy may stand on (x, y).
func (m *Map) Walkable(x, y int) bool {
	switch m.Tile(x, y) {
	case types.Wall, types.Water:
		return false
	default:
		return true
	}
}

// HasEvent reports whether interacting at (x, y) does something special:
// every dungeon entrance and the field's center.
func (m *Map) HasEvent(x, y int) bool {
	if m.isDungeon(x, y) {
		return true
	}
	for _, p := range m.events {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// Dungeons returns the dungeon entrance tiles.
func (m *Map) Dungeons() []types.Position {
	return append([]types.Position(nil), m.dungeons...)
}

func (m *Map) isDungeon(x, y int) bool {
	for _, p := range m.dungeons {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// AreaName names the 25x25 area containing (x, y).
func AreaName(x, y int) string {
	idx := (y/areaSize)*4 + x/areaSize
	if idx > 15 {
		idx = 15
	}
	if idx < 0 {
		idx = 0
	}
	return areaNames[idx]
}

var defaultMap = DefaultMap()

// Tile is Map.Tile on the default map.
func Tile(x, y int) types.TileType { return defaultMap.Tile(x, y) }

// Walkable is Map.Walkable on the default map.
func Walkable(x, y int) bool { return defaultMap.Walkable(x, y) }

// HasEvent is Map.HasEvent on the default map.
func HasEvent(x, y int) bool { return defaultMap.HasEvent(x, y) }
