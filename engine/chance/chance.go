// Package chance supplies the game's "randomness": by default a pure hash of
// the tile position, optionally a seeded and replayable RNG.
package chance

import "github.com/nathoo/legend/types"

//go:generate mockgen -destination=mock/mock_source.go -package=chancemock github.com/nathoo/legend/engine/chance Source

// Source decides the outcomes that look random to the player.
type Source interface {
	// Wander picks a wander step for an enemy standing at pos.
	// 0 east, 1 west, 2 south; any other value steps north.
	Wander(pos types.Position) int
	// Encounter reports whether stepping onto pos triggers a random encounter.
	Encounter(pos types.Position) bool
	// Pick selects an index from positive weights.
	Pick(pos types.Position, weights []int) int
}

// Names accepted by New.
const (
	ModeHash   = "hash"
	ModeSeeded = "seeded"
)

// New returns the source for a configured mode. Unknown modes fall back to
// the position hash.
func New(mode string, seed int64) Source {
	if mode == ModeSeeded {
		return NewSeeded(seed)
	}
	return PositionHash{}
}

// PositionHash derives every outcome from the coordinates alone, so the same
// tile always behaves the same way.
type PositionHash struct{}

// Wander is (x+y) mod 4 with Go's truncated remainder.
func (PositionHash) Wander(pos types.Position) int {
	return (pos.X + pos.Y) % 4
}

// Encounter fires on two residues out of ten of x*31 + y*17.
func (PositionHash) Encounter(pos types.Position) bool {
	return encounterHash(pos)%10 < 2
}

// Pick walks the cumulative weights with the encounter hash.
func (PositionHash) Pick(pos types.Position, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	roll := encounterHash(pos) % total
	if roll < 0 {
		roll += total
	}
	return selectWeighted(weights, roll)
}

func encounterHash(pos types.Position) int {
	return pos.X*31 + pos.Y*17
}

// Seeded draws from a deterministic RNG. Two sources with the same seed
// produce the same game when fed the same commands.
type Seeded struct {
	RNG *RNG
}

// NewSeeded creates a seeded source.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{RNG: NewRNG(seed)}
}

func (s *Seeded) Wander(types.Position) int {
	return s.RNG.Roll(4) - 1
}

// Encounter succeeds on a 1 or 2 on a d10, matching the hash's rate.
func (s *Seeded) Encounter(types.Position) bool {
	return s.RNG.Roll(10) <= 2
}

func (s *Seeded) Pick(_ types.Position, weights []int) int {
	return s.RNG.WeightedSelect(weights)
}

func selectWeighted(weights []int, roll int) int {
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
