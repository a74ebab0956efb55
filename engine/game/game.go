// Package game is the top-level orchestrator over GameState: starting a
// game, validating it, mapping actions to messages and phases, and the
// status and help text.
package game

import (
	"fmt"
	"strings"

	"github.com/nathoo/legend/engine/chance"
	"github.com/nathoo/legend/engine/player"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// StartArea is the area name a new game begins in.
const StartArea = "Hyrule Field"

// NewGame returns the state of a fresh game at the center of the map.
func NewGame() types.GameState {
	return types.GameState{
		Phase:       types.Exploration,
		Pos:         types.Position{X: world.Size / 2, Y: world.Size / 2},
		Player:      player.New(),
		CurrentArea: StartArea,
		TurnNumber:  1,
	}
}

// ValidateState checks health against max health and the position against
// the map bounds.
func ValidateState(s types.GameState) bool {
	return s.Player.Health <= s.Player.MaxHealth && IsInBounds(s.Pos)
}

// IsInBounds reports whether pos lies on the 100x100 map.
func IsInBounds(pos types.Position) bool {
	return pos.X >= 0 && pos.X < world.Size && pos.Y >= 0 && pos.Y < world.Size
}

// ClampCoord clamps a coordinate to [0, 99].
func ClampCoord(v int) int {
	switch {
	case v < 0:
		return 0
	case v > world.Size-1:
		return world.Size - 1
	default:
		return v
	}
}

// ClampedTarget is the in-bounds neighbour of pos in the given direction.
func ClampedTarget(pos types.Position, dir types.Direction) types.Position {
	next := player.Move(pos, dir)
	return types.Position{X: ClampCoord(next.X), Y: ClampCoord(next.Y)}
}

// ProcessAction maps an action to its message and the phase it leads to.
// It never changes the state: moving the player is left to the caller,
// which checks walkability first.
func ProcessAction(s types.GameState, action types.GameAction) types.ActionResult {
	switch action {
	case types.MoveNorth:
		return moved(s.Pos, types.North)
	case types.MoveSouth:
		return moved(s.Pos, types.South)
	case types.MoveEast:
		return moved(s.Pos, types.East)
	case types.MoveWest:
		return moved(s.Pos, types.West)
	case types.Attack:
		return success("You swing your sword!", types.Combat)
	case types.UseItem:
		return success("You use an item.", types.Exploration)
	case types.Interact:
		return success("You interact with the environment.", types.Dialogue)
	case types.OpenInventory:
		return success("Opening inventory...", types.Inventory)
	case types.Wait:
		return success("You wait...", types.Exploration)
	case types.Quit:
		return types.ActionResult{
			Success:       true,
			Message:       "Thanks for playing!",
			NewPhase:      types.GameOver,
			GameContinues: false,
		}
	default:
		return types.ActionResult{Message: "Nothing happens.", NewPhase: types.Exploration, GameContinues: true}
	}
}

// ActionDirection returns the direction of a move action.
func ActionDirection(action types.GameAction) (types.Direction, bool) {
	switch action {
	case types.MoveNorth:
		return types.North, true
	case types.MoveSouth:
		return types.South, true
	case types.MoveEast:
		return types.East, true
	case types.MoveWest:
		return types.West, true
	default:
		return 0, false
	}
}

// moved reports a move. The clamped target is worked out but not
// committed to the state.
func moved(pos types.Position, dir types.Direction) types.ActionResult {
	_ = ClampedTarget(pos, dir)
	return success(fmt.Sprintf("You move %s.", dir), types.Exploration)
}

func success(msg string, phase types.GamePhase) types.ActionResult {
	return types.ActionResult{Success: true, Message: msg, NewPhase: phase, GameContinues: true}
}

// Status is the one-line status summary.
func Status(s types.GameState) string {
	return fmt.Sprintf("HP: %d/%d | Lvl: %d | Area: %s | Turn: %d",
		s.Player.Health, s.Player.MaxHealth, s.Player.Level, s.CurrentArea, s.TurnNumber)
}

// CheckEncounter reports whether the player's tile triggers an encounter.
func CheckEncounter(s types.GameState) bool {
	return chance.PositionHash{}.Encounter(s.Pos)
}

// Help returns the command overview.
func Help() string {
	return strings.Join([]string{
		"=== LEGEND OF WASM: HELP ===",
		"Movement: n/s/e/w - Move in direction",
		"Combat: a - Attack with equipped weapon",
		"Items: u - Use item, i - Open inventory",
		"Other: x - Interact, . - Wait, q - Quit",
	}, "\n")
}
