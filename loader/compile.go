// Package loader loads Lua scenario content into Go structs at load time.
// The Lua VM is discarded after loading; nothing runs Lua during play.
package loader

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/legend/engine/enemy"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/types"
)

// rawEnemy holds an enemy table before compilation.
type rawEnemy struct {
	kind  string
	table *lua.LTable
}

// rawRegion holds a region table before compilation.
type rawRegion struct {
	tile  string
	table *lua.LTable
}

// regionTiles are the tile names a Region may paint. Grass is the
// background and cannot be painted.
var regionTiles = map[string]types.TileType{
	"forest":  types.Forest,
	"water":   types.Water,
	"dungeon": types.DungeonEntrance,
	"wall":    types.Wall,
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getPos reads { x = 1, y = 2 } or the positional form { 1, 2 }.
func getPos(tbl *lua.LTable) types.Position {
	if tbl == nil {
		return types.Position{}
	}
	if _, ok := tbl.RawGetString("x").(lua.LNumber); ok {
		return types.Position{X: getInt(tbl, "x"), Y: getInt(tbl, "y")}
	}
	x, _ := tbl.RawGetInt(1).(lua.LNumber)
	y, _ := tbl.RawGetInt(2).(lua.LNumber)
	return types.Position{X: int(x), Y: int(y)}
}

// compile converts all collected Lua data into a Defs struct. Unknown
// names are returned as problems for validate to report together.
func compile(coll *collector) (*state.Defs, []string, error) {
	if coll.game == nil {
		return nil, nil, fmt.Errorf("no Game{} definition found")
	}
	defs := &state.Defs{Game: compileGame(coll.game)}
	var problems []string

	for i, raw := range coll.enemies {
		sp, err := compileEnemy(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("enemy %d: %v", i+1, err))
			continue
		}
		defs.Enemies = append(defs.Enemies, sp)
	}

	for _, tbl := range coll.pickups {
		defs.Pickups = append(defs.Pickups, compilePickup(tbl))
	}

	for i, raw := range coll.regions {
		r, err := compileRegion(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("region %d: %v", i+1, err))
			continue
		}
		defs.Regions = append(defs.Regions, r)
	}

	for _, tbl := range coll.lore {
		defs.Lore = append(defs.Lore, types.Lore{Pos: getPos(tbl), Text: getString(tbl, "text")})
	}

	return defs, problems, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:   getString(tbl, "title"),
		Author:  getString(tbl, "author"),
		Version: getString(tbl, "version"),
		Intro:   getString(tbl, "intro"),
		Start:   getPos(getTable(tbl, "start")),
		Potions: getInt(tbl, "potions"),
		Gold:    getInt(tbl, "gold"),
	}
}

func compileEnemy(raw rawEnemy) (types.EnemySpawn, error) {
	kind, ok := enemy.ParseKind(raw.kind)
	if !ok {
		return types.EnemySpawn{}, fmt.Errorf("unknown enemy kind %q", raw.kind)
	}
	return types.EnemySpawn{Kind: kind, Pos: getPos(raw.table)}, nil
}

func compilePickup(tbl *lua.LTable) types.Pickup {
	return types.Pickup{
		Pos:    getPos(tbl),
		ItemID: getInt(tbl, "item"),
		Gold:   getInt(tbl, "gold"),
		Label:  getString(tbl, "label"),
	}
}

func compileRegion(raw rawRegion) (types.Region, error) {
	tile, ok := regionTiles[raw.tile]
	if !ok {
		return types.Region{}, fmt.Errorf("unknown tile %q", raw.tile)
	}
	return types.Region{
		Tile: tile,
		X1:   getInt(raw.table, "x1"),
		Y1:   getInt(raw.table, "y1"),
		X2:   getInt(raw.table, "x2"),
		Y2:   getInt(raw.table, "y2"),
	}, nil
}

// sortedLuaFiles returns .lua files in a directory, with game.lua first
// and the rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
