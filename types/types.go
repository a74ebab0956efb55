// Package types defines the shared data structures for the Legend engine.
// This package contains only type definitions and display names, no game logic.
package types

import "strconv"

// Position is a tile coordinate on the world map.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Position) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}

// CombatantStats is the generic combat view of any participant.
// Invariant: Health <= MaxHealth.
type CombatantStats struct {
	Attack         int
	Defense        int
	Health         int
	MaxHealth      int
	EquipmentBonus int
}

// PlayerStats holds the player's vital statistics and progression.
type PlayerStats struct {
	Health     int `yaml:"health"`
	MaxHealth  int `yaml:"max_health"`
	Attack     int `yaml:"attack"`
	Defense    int `yaml:"defense"`
	Experience int `yaml:"experience"`
	Level      int `yaml:"level"`
}

// EnemyState is a single enemy instance on the map.
// Invariant: Alive == (Health > 0).
type EnemyState struct {
	Kind      EnemyKind `yaml:"kind"`
	Health    int       `yaml:"health"`
	MaxHealth int       `yaml:"max_health"`
	Attack    int       `yaml:"attack"`
	Defense   int       `yaml:"defense"`
	ExpReward int       `yaml:"exp_reward"`
	Pos       Position  `yaml:"pos"`
	Behavior  Behavior  `yaml:"behavior"`
	Alive     bool      `yaml:"alive"`
}

// BattleState tracks one engagement between the player and an enemy.
type BattleState struct {
	Active       bool `yaml:"active"`
	TurnCount    int  `yaml:"turn_count"`
	PlayerHealth int  `yaml:"player_health"`
	EnemyHealth  int  `yaml:"enemy_health"`
	PlayerTurn   bool `yaml:"player_turn"`
}

// Item is a catalog entry or a carried stack.
type Item struct {
	ID           int          `yaml:"id"`
	Name         string       `yaml:"name"`
	Category     ItemCategory `yaml:"category"`
	AttackBonus  int          `yaml:"attack_bonus,omitempty"`
	DefenseBonus int          `yaml:"defense_bonus,omitempty"`
	HealAmount   int          `yaml:"heal_amount,omitempty"`
	Quantity     int          `yaml:"quantity"`
	Equipped     bool         `yaml:"equipped,omitempty"`
}

// InventoryState is the bounded inventory summary.
// Invariant: ItemCount <= MaxCapacity. Zero means nothing equipped.
type InventoryState struct {
	EquippedWeapon int `yaml:"equipped_weapon"`
	EquippedArmor  int `yaml:"equipped_armor"`
	ItemCount      int `yaml:"item_count"`
	MaxCapacity    int `yaml:"max_capacity"`
	Gold           int `yaml:"gold"`
}

// GameState is the top-level aggregate the orchestrator works on.
type GameState struct {
	Phase           GamePhase   `yaml:"phase"`
	Pos             Position    `yaml:"pos"`
	Player          PlayerStats `yaml:"player"`
	EnemiesDefeated int         `yaml:"enemies_defeated"`
	BossDefeated    bool        `yaml:"boss_defeated"`
	CurrentArea     string      `yaml:"current_area"`
	TurnNumber      int         `yaml:"turn_number"`
}

// CombatResult describes the outcome of a single attack.
type CombatResult struct {
	DamageDealt    int
	Critical       bool
	TargetDefeated bool
	ExpGained      int
	Message        string
}

// ActionResult is the orchestrator's answer to a GameAction.
type ActionResult struct {
	Success       bool
	Message       string
	NewPhase      GamePhase
	GameContinues bool
}

// UseResult is the outcome of consuming an item.
type UseResult struct {
	Success        bool
	HealthRestored int
	AttackBoost    int
	DefenseBoost   int
	Message        string
}

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Event is emitted as a step changes the session.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Events    []Event
	Output    []string
	Phase     GamePhase
	Continues bool
}

// Pickup is an item or gold lying on a map tile.
type Pickup struct {
	Pos    Position `yaml:"pos"`
	ItemID int      `yaml:"item_id,omitempty"`
	Gold   int      `yaml:"gold,omitempty"`
	Label  string   `yaml:"label,omitempty"`
}

// Lore is a piece of text attached to a tile, read with "interact".
type Lore struct {
	Pos  Position
	Text string
}

// Region is a half-open rectangle [X1,X2)x[Y1,Y2) painted with one tile type.
type Region struct {
	Tile   TileType
	X1, Y1 int
	X2, Y2 int
}

// Battle ties the battle state machine to the engaged enemy.
// Enemy is an index into Session.Enemies, -1 when no battle is active.
type Battle struct {
	State BattleState `yaml:"state"`
	Enemy int         `yaml:"enemy"`
}

// Session is the complete mutable state of one play-through.
type Session struct {
	ID           string
	Game         GameState
	Inventory    InventoryState
	Carried      []Item
	Enemies      []EnemyState
	Pickups      []Pickup
	Lore         []Lore
	Battle       Battle
	Score        int
	AttackBoost  int
	DefenseBoost int
	Visited      map[Position]bool
	Running      bool
	Victory      bool
	CommandLog   []string
}

// GameDef holds scenario metadata from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Intro   string
	Start   Position
	Potions int // starting health potions
	Gold    int // starting gold
}

// EnemySpawn places one enemy at scenario start.
type EnemySpawn struct {
	Kind EnemyKind
	Pos  Position
}
