package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/legend/engine/game"
	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled scenario against the overworld it paints.
// Problems found during compilation are reported as errors alongside its
// own findings.
func validate(defs *state.Defs, problems []string) ([]string, error) {
	ve := &ValidationError{Errors: append([]string(nil), problems...)}
	m := state.BuildMap(defs)

	// Game title required.
	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	switch maxPotions := inventory.DefaultCapacity - 1; {
	case defs.Game.Potions < 0:
		ve.Errors = append(ve.Errors, fmt.Sprintf("Game.potions must not be negative, got %d", defs.Game.Potions))
	case defs.Game.Potions > maxPotions:
		ve.Errors = append(ve.Errors, fmt.Sprintf("Game.potions must be at most %d, got %d", maxPotions, defs.Game.Potions))
	}
	if defs.Game.Gold < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("Game.gold must not be negative, got %d", defs.Game.Gold))
	}

	// Start must be standable. A missing start means the map center.
	start := defs.Game.Start
	if start == (types.Position{}) {
		start = game.NewGame().Pos
	}
	switch {
	case !game.IsInBounds(start):
		ve.Errors = append(ve.Errors, fmt.Sprintf("start %s is outside the map", start))
	case !m.Walkable(start.X, start.Y):
		ve.Errors = append(ve.Errors, fmt.Sprintf("start %s is on %s", start, m.Tile(start.X, start.Y)))
	}

	for i, r := range defs.Regions {
		if r.X2 <= r.X1 || r.Y2 <= r.Y1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"region %d (%s) is empty: [%d,%d)x[%d,%d)", i+1, r.Tile, r.X1, r.X2, r.Y1, r.Y2))
		}
		if r.X1 < 0 || r.Y1 < 0 || r.X2 > world.Size || r.Y2 > world.Size {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"region %d (%s) extends past the map edge", i+1, r.Tile))
		}
	}

	bosses := 0
	for i, sp := range defs.Enemies {
		if sp.Kind == types.Boss {
			bosses++
		}
		switch {
		case !game.IsInBounds(sp.Pos):
			ve.Errors = append(ve.Errors, fmt.Sprintf("enemy %d (%s) at %s is outside the map", i+1, sp.Kind, sp.Pos))
		case !m.Walkable(sp.Pos.X, sp.Pos.Y):
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("enemy %d (%s) at %s stands on %s", i+1, sp.Kind, sp.Pos, m.Tile(sp.Pos.X, sp.Pos.Y)))
		case sp.Pos == start:
			ve.Errors = append(ve.Errors, fmt.Sprintf("enemy %d (%s) occupies the start tile", i+1, sp.Kind))
		}
	}
	if bosses == 0 && len(defs.Enemies) > 0 {
		ve.Warnings = append(ve.Warnings, "no boss defined; victory requires defeating every enemy")
	}
	if bosses > 1 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("%d bosses defined; the first one defeated ends the game", bosses))
	}

	for i, p := range defs.Pickups {
		switch {
		case p.ItemID == 0 && p.Gold == 0:
			ve.Errors = append(ve.Errors, fmt.Sprintf("pickup %d at %s has neither an item nor gold", i+1, p.Pos))
		case p.ItemID != 0 && p.Gold != 0:
			ve.Errors = append(ve.Errors, fmt.Sprintf("pickup %d at %s has both an item and gold", i+1, p.Pos))
		case p.ItemID != 0 && !inventory.Known(p.ItemID):
			ve.Errors = append(ve.Errors, fmt.Sprintf("pickup %d at %s references unknown item %d", i+1, p.Pos, p.ItemID))
		case p.Gold < 0:
			ve.Errors = append(ve.Errors, fmt.Sprintf("pickup %d at %s has negative gold %d", i+1, p.Pos, p.Gold))
		}
		if !game.IsInBounds(p.Pos) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("pickup %d at %s is outside the map", i+1, p.Pos))
		} else if !m.Walkable(p.Pos.X, p.Pos.Y) {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("pickup %d at %s is unreachable on %s", i+1, p.Pos, m.Tile(p.Pos.X, p.Pos.Y)))
		}
	}

	for i, l := range defs.Lore {
		if strings.TrimSpace(l.Text) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("lore %d at %s has no text", i+1, l.Pos))
		}
		if !game.IsInBounds(l.Pos) {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("lore %d at %s is outside the map", i+1, l.Pos))
		}
	}

	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}
