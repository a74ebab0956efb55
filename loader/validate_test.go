package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/types"
)

// validDefs returns a minimal valid Defs for testing.
func validDefs() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{
			Title: "Test",
			Start: types.Position{X: 10, Y: 10},
		},
		Enemies: []types.EnemySpawn{
			{Kind: types.Boss, Pos: types.Position{X: 15, Y: 15}},
		},
		Pickups: []types.Pickup{
			{Pos: types.Position{X: 11, Y: 10}, ItemID: inventory.HealthPotion},
		},
	}
}

func TestValidate_ValidDefs(t *testing.T) {
	warnings, err := validate(validDefs(), nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestValidate_EmptyTitle(t *testing.T) {
	defs := validDefs()
	defs.Game.Title = ""

	_, err := validate(defs, nil)
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "title")
}

func TestValidate_Start(t *testing.T) {
	tests := []struct {
		name  string
		start types.Position
		want  string
	}{
		{"outside", types.Position{X: 150, Y: 10}, "outside the map"},
		{"wall", types.Position{X: 0, Y: 10}, "is on wall"},
		{"water", types.Position{X: 25, Y: 50}, "is on water"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := validDefs()
			defs.Game.Start = tt.start
			_, err := validate(defs, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			assertContains(t, err.(*ValidationError).Errors, tt.want)
		})
	}
}

func TestValidate_ZeroStartUsesCenter(t *testing.T) {
	defs := validDefs()
	defs.Game.Start = types.Position{}
	if _, err := validate(defs, nil); err != nil {
		t.Fatalf("zero start should fall back to the center: %v", err)
	}
}

func TestValidate_CompileProblemsReported(t *testing.T) {
	_, err := validate(validDefs(), []string{`enemy 2: unknown enemy kind "wyvern"`})
	if err == nil {
		t.Fatal("expected compile problems to fail validation")
	}
	assertContains(t, err.(*ValidationError).Errors, "wyvern")
}

func TestValidate_Pickups(t *testing.T) {
	tests := []struct {
		name   string
		pickup types.Pickup
		want   string
	}{
		{"empty", types.Pickup{Pos: types.Position{X: 12, Y: 12}}, "neither an item nor gold"},
		{"both", types.Pickup{Pos: types.Position{X: 12, Y: 12}, ItemID: inventory.Bow, Gold: 5}, "both an item and gold"},
		{"unknown item", types.Pickup{Pos: types.Position{X: 12, Y: 12}, ItemID: 77}, "unknown item 77"},
		{"negative gold", types.Pickup{Pos: types.Position{X: 12, Y: 12}, Gold: -5}, "negative gold"},
		{"outside", types.Pickup{Pos: types.Position{X: -1, Y: 12}, Gold: 5}, "outside the map"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := validDefs()
			defs.Pickups = append(defs.Pickups, tt.pickup)
			_, err := validate(defs, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			assertContains(t, err.(*ValidationError).Errors, tt.want)
		})
	}
}

func TestValidate_EnemyOnStart(t *testing.T) {
	defs := validDefs()
	defs.Enemies = append(defs.Enemies, types.EnemySpawn{Kind: types.Slime, Pos: defs.Game.Start})
	_, err := validate(defs, nil)
	if err == nil {
		t.Fatal("expected error for enemy on the start tile")
	}
	assertContains(t, err.(*ValidationError).Errors, "occupies the start tile")
}

func TestValidate_EmptyRegion(t *testing.T) {
	defs := validDefs()
	defs.Regions = []types.Region{{Tile: types.Forest, X1: 5, Y1: 5, X2: 5, Y2: 9}}
	_, err := validate(defs, nil)
	if err == nil {
		t.Fatal("expected error for empty region")
	}
	assertContains(t, err.(*ValidationError).Errors, "is empty")
}

func TestValidate_NegativeStartingSupplies(t *testing.T) {
	defs := validDefs()
	defs.Game.Potions = -1
	defs.Game.Gold = -3
	_, err := validate(defs, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "potions")
	assertContains(t, ve.Errors, "gold")
}

func TestValidate_PotionsMustFitInventory(t *testing.T) {
	defs := validDefs()
	defs.Game.Potions = inventory.DefaultCapacity - 1
	if _, err := validate(defs, nil); err != nil {
		t.Fatalf("potions filling the free slots should be valid: %v", err)
	}

	defs.Game.Potions = 30
	_, err := validate(defs, nil)
	if err == nil {
		t.Fatal("expected error for more potions than slots")
	}
	assertContains(t, err.(*ValidationError).Errors, "Game.potions must be at most 19, got 30")
}

func TestValidate_Warnings(t *testing.T) {
	defs := validDefs()
	defs.Enemies = []types.EnemySpawn{
		{Kind: types.Slime, Pos: types.Position{X: 25, Y: 45}},
		{Kind: types.Bat, Pos: types.Position{X: 30, Y: 30}},
	}
	defs.Regions = []types.Region{{Tile: types.Water, X1: 95, Y1: 95, X2: 120, Y2: 120}}
	defs.Lore = []types.Lore{{Pos: types.Position{X: 200, Y: 1}, Text: "Far away."}}

	warnings, err := validate(defs, nil)
	if err != nil {
		t.Fatalf("warnings must not fail validation: %v", err)
	}
	assertContains(t, warnings, "stands on water")
	assertContains(t, warnings, "no boss defined")
	assertContains(t, warnings, "past the map edge")
	assertContains(t, warnings, "lore 1")
}

func TestValidate_BlankLore(t *testing.T) {
	defs := validDefs()
	defs.Lore = []types.Lore{{Pos: types.Position{X: 12, Y: 12}, Text: "  "}}
	_, err := validate(defs, nil)
	if err == nil {
		t.Fatal("expected error for blank lore")
	}
	assertContains(t, err.(*ValidationError).Errors, "no text")
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []string{"a", "b"}}
	if !strings.HasPrefix(ve.Error(), "validation failed with 2 error(s)") {
		t.Errorf("Error() = %q", ve.Error())
	}
}

// assertContains checks that at least one string in the slice contains substr.
func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected one of %v to contain %q", strs, substr)
}
