// Package snapshot dumps a session as YAML for debugging. Snapshots are
// write-only: nothing reads them back into a game.
package snapshot

import (
	"gopkg.in/yaml.v3"

	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/types"
)

// Data is the YAML-serializable view of a session.
type Data struct {
	Session   string               `yaml:"session"`
	Game      string               `yaml:"game"`
	Turn      int                  `yaml:"turn"`
	Score     int                  `yaml:"score"`
	State     types.GameState      `yaml:"state"`
	Inventory types.InventoryState `yaml:"inventory"`
	Carried   []types.Item         `yaml:"carried"`
	Enemies   []types.EnemyState   `yaml:"enemies"`
	Pickups   []types.Pickup       `yaml:"pickups,omitempty"`
	Battle    *types.Battle        `yaml:"battle,omitempty"`
	Boosts    Boosts               `yaml:"boosts"`
	Commands  []string             `yaml:"commands,omitempty"`
}

// Boosts are the attack and defense bonuses from consumables.
type Boosts struct {
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
}

// Take captures the session. Only live enemies are included, and the
// battle only while one is active.
func Take(s *types.Session, defs *state.Defs) Data {
	d := Data{
		Session:   s.ID,
		Game:      defs.Game.Title,
		Turn:      s.Game.TurnNumber,
		Score:     s.Score,
		State:     s.Game,
		Inventory: s.Inventory,
		Carried:   append([]types.Item{}, s.Carried...),
		Enemies:   []types.EnemyState{},
		Pickups:   append([]types.Pickup(nil), s.Pickups...),
		Boosts:    Boosts{Attack: s.AttackBoost, Defense: s.DefenseBoost},
		Commands:  append([]string(nil), s.CommandLog...),
	}
	for _, e := range s.Enemies {
		if e.Alive {
			d.Enemies = append(d.Enemies, e)
		}
	}
	if s.Battle.State.Active {
		b := s.Battle
		d.Battle = &b
	}
	return d
}

// YAML serializes a snapshot.
func YAML(d Data) ([]byte, error) {
	return yaml.Marshal(d)
}
