package types

// AttackKind selects the damage table row for an attack.
type AttackKind int

const (
	SwordSlash AttackKind = iota
	SpinAttack
	BowShot
	MagicAttack
	ShieldBash
)

var attackKindNames = [...]string{"sword slash", "spin attack", "bow shot", "magic attack", "shield bash"}

func (k AttackKind) String() string {
	if k < 0 || int(k) >= len(attackKindNames) {
		return "unknown attack"
	}
	return attackKindNames[k]
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "nowhere"
	}
	return directionNames[d]
}

// GameAction is the closed set of actions the orchestrator understands.
type GameAction int

const (
	MoveNorth GameAction = iota
	MoveSouth
	MoveEast
	MoveWest
	Attack
	UseItem
	OpenInventory
	Interact
	Wait
	Quit
)

var gameActionNames = [...]string{
	"move_north", "move_south", "move_east", "move_west",
	"attack", "use_item", "open_inventory", "interact", "wait", "quit",
}

func (a GameAction) String() string {
	if a < 0 || int(a) >= len(gameActionNames) {
		return "unknown"
	}
	return gameActionNames[a]
}

// EnemyKind identifies an enemy's stat table row.
type EnemyKind int

const (
	Slime EnemyKind = iota
	Skeleton
	Bat
	Goblin
	DarkKnight
	Boss
)

var enemyKindNames = [...]string{"Slime", "Skeleton", "Bat", "Goblin", "Dark Knight", "Ganon"}

func (k EnemyKind) String() string {
	if k < 0 || int(k) >= len(enemyKindNames) {
		return "Unknown"
	}
	return enemyKindNames[k]
}

// MarshalYAML renders the kind by name in state dumps.
func (k EnemyKind) MarshalYAML() (any, error) { return k.String(), nil }

// Behavior is an enemy's movement strategy.
type Behavior int

const (
	Wander Behavior = iota
	Chase
	Flee
	Guard
	BossPattern
)

var behaviorNames = [...]string{"wander", "chase", "flee", "guard", "boss"}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "unknown"
	}
	return behaviorNames[b]
}

// MarshalYAML renders the behavior by name in state dumps.
func (b Behavior) MarshalYAML() (any, error) { return b.String(), nil }

// ItemCategory groups catalog items.
type ItemCategory int

const (
	Weapon ItemCategory = iota
	Armor
	Consumable
	Treasure
)

var itemCategoryNames = [...]string{"weapon", "armor", "consumable", "treasure"}

func (c ItemCategory) String() string {
	if c < 0 || int(c) >= len(itemCategoryNames) {
		return "unknown"
	}
	return itemCategoryNames[c]
}

// MarshalYAML renders the category by name in state dumps.
func (c ItemCategory) MarshalYAML() (any, error) { return c.String(), nil }

// GamePhase is the coarse mode the game is in.
type GamePhase int

const (
	Exploration GamePhase = iota
	Combat
	Dialogue
	Inventory
	GameOver
)

var gamePhaseNames = [...]string{"exploration", "combat", "dialogue", "inventory", "game_over"}

func (p GamePhase) String() string {
	if p < 0 || int(p) >= len(gamePhaseNames) {
		return "unknown"
	}
	return gamePhaseNames[p]
}

// MarshalYAML renders the phase by name in state dumps.
func (p GamePhase) MarshalYAML() (any, error) { return p.String(), nil }

// TileType is the terrain of a single map tile.
type TileType int

const (
	Grass TileType = iota
	Forest
	Water
	DungeonEntrance
	Wall
)

var tileTypeNames = [...]string{"grass", "forest", "water", "dungeon", "wall"}

func (t TileType) String() string {
	if t < 0 || int(t) >= len(tileTypeNames) {
		return "unknown"
	}
	return tileTypeNames[t]
}
