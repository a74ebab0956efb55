// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/legend/types"
)

var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
}

var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
}

var verbAliases = map[string]string{
	// Combat
	"a":      "attack",
	"hit":    "attack",
	"fight":  "attack",
	"strike": "attack",

	// Interaction
	"x":     "interact",
	"talk":  "interact",
	"read":  "interact",
	"enter": "interact",

	// Items
	"u":     "use",
	"drink": "use",
	"quaff": "use",
	"wield": "equip",
	"wear":  "equip",

	// Movement
	"walk": "go",
	"move": "go",
	"run":  "go",

	// System
	"i":     "inventory",
	"inv":   "inventory",
	"stat":  "status",
	"stats": "status",
	"h":     "help",
	"?":     "help",
	"q":     "quit",
	"exit":  "quit",
	".":     "wait",
	"z":     "wait",
	"l":     "look",
}

// attackKinds maps attack objects to their canonical names.
var attackKinds = map[string]string{
	"sword":  "sword",
	"slash":  "sword",
	"spin":   "spin",
	"bow":    "bow",
	"arrow":  "bow",
	"shoot":  "bow",
	"magic":  "magic",
	"spell":  "magic",
	"bash":   "bash",
	"shield": "bash",
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "my": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
	}

	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	object := strings.Join(stripArticles(words[1:]), " ")

	switch verb {
	case "go":
		if dir, ok := directionExpansions[object]; ok {
			object = dir
		}
	case "attack":
		object = attackKind(object)
	}

	return types.Intent{Verb: verb, Object: object}
}

// expandMultiWordVerbs handles "look around", "drink potion" style phrases.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "around" {
			return []string{"look"}
		}
	case "use":
		if words[1] == "item" && len(words) == 2 {
			return []string{"use"}
		}
	case "spin":
		if words[1] == "attack" {
			return []string{"attack", "spin"}
		}
	case "shield":
		if words[1] == "bash" {
			return []string{"attack", "bash"}
		}
	}

	return words
}

// attackKind normalises the object of an attack: an unknown word is kept
// so the engine can reject it.
func attackKind(object string) string {
	if object == "" {
		return ""
	}
	first := strings.Fields(object)[0]
	if kind, ok := attackKinds[first]; ok {
		return kind
	}
	return object
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// Action maps a turn-taking intent to the orchestrator's action.
// Driver-only verbs (status, help, look, equip) report false.
func Action(intent types.Intent) (types.GameAction, bool) {
	switch intent.Verb {
	case "go":
		switch intent.Object {
		case "north":
			return types.MoveNorth, true
		case "south":
			return types.MoveSouth, true
		case "east":
			return types.MoveEast, true
		case "west":
			return types.MoveWest, true
		}
		return 0, false
	case "attack":
		return types.Attack, true
	case "use":
		return types.UseItem, true
	case "inventory":
		return types.OpenInventory, true
	case "interact":
		return types.Interact, true
	case "wait":
		return types.Wait, true
	case "quit":
		return types.Quit, true
	default:
		return 0, false
	}
}

// AttackKind maps a canonical attack object to its kind. An empty object
// is the plain sword slash.
func AttackKind(object string) (types.AttackKind, bool) {
	switch object {
	case "", "sword":
		return types.SwordSlash, true
	case "spin":
		return types.SpinAttack, true
	case "bow":
		return types.BowShot, true
	case "magic":
		return types.MagicAttack, true
	case "bash":
		return types.ShieldBash, true
	default:
		return 0, false
	}
}
