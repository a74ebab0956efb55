package loader

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/types"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

func TestCompileGame(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		return {
			title = "Test Game",
			author = "Author",
			version = "1.0",
			start = { x = 12, y = 34 },
			intro = "Welcome!",
			potions = 3,
			gold = 40
		}
	`); err != nil {
		t.Fatal(err)
	}

	game := compileGame(L.CheckTable(-1))

	if game.Title != "Test Game" {
		t.Errorf("Title = %q, want %q", game.Title, "Test Game")
	}
	if game.Author != "Author" || game.Version != "1.0" || game.Intro != "Welcome!" {
		t.Errorf("metadata = %+v", game)
	}
	if game.Start != (types.Position{X: 12, Y: 34}) {
		t.Errorf("Start = %v, want (12, 34)", game.Start)
	}
	if game.Potions != 3 || game.Gold != 40 {
		t.Errorf("Potions, Gold = %d, %d", game.Potions, game.Gold)
	}
}

func TestGetPos_Forms(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	tests := []struct {
		src  string
		want types.Position
	}{
		{`return { x = 3, y = 4 }`, types.Position{X: 3, Y: 4}},
		{`return { 5, 6 }`, types.Position{X: 5, Y: 6}},
		{`return {}`, types.Position{}},
	}
	for _, tt := range tests {
		if err := L.DoString(tt.src); err != nil {
			t.Fatal(err)
		}
		got := getPos(L.CheckTable(-1))
		L.Pop(1)
		if got != tt.want {
			t.Errorf("getPos(%s) = %v, want %v", tt.src, got, tt.want)
		}
	}
	if got := getPos(nil); got != (types.Position{}) {
		t.Errorf("getPos(nil) = %v", got)
	}
}

func TestConstructors_Collect(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { title = "T" }
		Enemy "bat" { x = 1, y = 2 }
		Enemy "Dark Knight" { 3, 4 }
		Pickup { x = 5, y = 6, item = Item.master_sword }
		Region "forest" { x1 = 1, y1 = 1, x2 = 4, y2 = 4 }
		Lore { x = 7, y = 8, text = "Hello." }
	`); err != nil {
		t.Fatal(err)
	}

	if coll.game == nil {
		t.Fatal("Game{} not collected")
	}
	if len(coll.enemies) != 2 || coll.enemies[1].kind != "Dark Knight" {
		t.Errorf("enemies = %+v", coll.enemies)
	}
	if len(coll.pickups) != 1 || len(coll.regions) != 1 || len(coll.lore) != 1 {
		t.Errorf("pickups, regions, lore = %d, %d, %d", len(coll.pickups), len(coll.regions), len(coll.lore))
	}

	defs, problems, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
	if defs.Enemies[0].Kind != types.Bat || defs.Enemies[1].Kind != types.DarkKnight {
		t.Errorf("kinds = %s, %s", defs.Enemies[0].Kind, defs.Enemies[1].Kind)
	}
	if defs.Pickups[0].ItemID != inventory.MasterSword {
		t.Errorf("pickup item = %d, want %d", defs.Pickups[0].ItemID, inventory.MasterSword)
	}
	r := defs.Regions[0]
	if r.Tile != types.Forest || r.X1 != 1 || r.Y2 != 4 {
		t.Errorf("region = %+v", r)
	}
	if defs.Lore[0].Pos != (types.Position{X: 7, Y: 8}) || defs.Lore[0].Text != "Hello." {
		t.Errorf("lore = %+v", defs.Lore[0])
	}
}

func TestItemTable(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	tests := map[string]int{
		"wooden_sword":       inventory.WoodenSword,
		"chain_mail":         inventory.ChainMail,
		"full_health_potion": inventory.FullHealthPotion,
		"attack_boost":       inventory.AttackBoost,
	}
	for name, want := range tests {
		if err := L.DoString("return Item." + name); err != nil {
			t.Fatal(err)
		}
		got := int(L.CheckNumber(-1))
		L.Pop(1)
		if got != want {
			t.Errorf("Item.%s = %d, want %d", name, got, want)
		}
	}
}

func TestCompile_UnknownNamesAreProblems(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { title = "T" }
		Enemy "wyvern" { x = 1, y = 2 }
		Region "grass" { x1 = 1, y1 = 1, x2 = 2, y2 = 2 }
	`); err != nil {
		t.Fatal(err)
	}

	defs, problems, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if len(defs.Enemies) != 0 || len(defs.Regions) != 0 {
		t.Errorf("unknown names should be dropped, got %d enemies and %d regions", len(defs.Enemies), len(defs.Regions))
	}
	assertContains(t, problems, `unknown enemy kind "wyvern"`)
	assertContains(t, problems, `unknown tile "grass"`)
}

func TestCompile_NoGame(t *testing.T) {
	if _, _, err := compile(&collector{}); err == nil {
		t.Fatal("expected error without Game{}")
	}
}
