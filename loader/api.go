package loader

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/legend/engine/inventory"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerItemTable(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", start = { x = 50, y = 50 }, ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Enemy "kind" { x = 10, y = 12 }, curried.
	L.SetGlobal("Enemy", L.NewFunction(func(L *lua.LState) int {
		kind := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.enemies = append(coll.enemies, rawEnemy{kind: kind, table: tbl})
			return 0
		}))
		return 1
	}))

	// Pickup { x = 3, y = 4, item = Item.health_potion } or
	// Pickup { x = 3, y = 4, gold = 25, label = "Chest" }
	L.SetGlobal("Pickup", L.NewFunction(func(L *lua.LState) int {
		coll.pickups = append(coll.pickups, L.CheckTable(1))
		return 0
	}))

	// Region "water" { x1 = 0, y1 = 0, x2 = 5, y2 = 5 }, curried and half-open.
	L.SetGlobal("Region", L.NewFunction(func(L *lua.LState) int {
		tile := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.regions = append(coll.regions, rawRegion{tile: tile, table: tbl})
			return 0
		}))
		return 1
	}))

	// Lore { x = 1, y = 2, text = "..." }
	L.SetGlobal("Lore", L.NewFunction(func(L *lua.LState) int {
		coll.lore = append(coll.lore, L.CheckTable(1))
		return 0
	}))
}

// registerItemTable exposes the catalog as Item.<snake_case_name> = id.
func registerItemTable(L *lua.LState) {
	tbl := L.NewTable()
	for _, id := range inventory.IDs() {
		name := strings.ReplaceAll(strings.ToLower(inventory.Lookup(id).Name), " ", "_")
		tbl.RawSetString(name, lua.LNumber(id))
	}
	L.SetGlobal("Item", tbl)
}
