// Package dialogue picks the text shown when the player interacts with the
// tile they stand on.
package dialogue

import (
	"fmt"

	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// Nothing is the reply when the tile has nothing to say.
const Nothing = "Nothing to interact with here."

const (
	dungeonText = "A dark stairway leads down into %s. Evil stirs below."
	eventText   = "An ancient Triforce emblem is carved into the ground. You feel the courage of heroes past."
)

// At returns the interaction text for pos. Scenario lore wins over the
// map's own event tiles. Returns false when there is nothing to read.
func At(s *types.Session, m *world.Map, pos types.Position) (string, bool) {
	if text, ok := state.LoreAt(s, pos); ok {
		return text, true
	}
	if !m.HasEvent(pos.X, pos.Y) {
		return "", false
	}
	if m.Tile(pos.X, pos.Y) == types.DungeonEntrance {
		return fmt.Sprintf(dungeonText, world.AreaName(pos.X, pos.Y)), true
	}
	return eventText, true
}
