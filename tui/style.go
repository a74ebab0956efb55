package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("209"))

	styleReward = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleMapPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeader
	kindCombat
	kindReward
	kindSystem
	kindError
	kindTrace
	kindInput // echoed player input
	kindMeta  // reply to a /command, shown in brackets
)

var errorPrefixes = []string{
	"You can't", "You don't have", "Unknown command", "No enemy nearby",
	"Your inventory is full", "You have been defeated",
}

var rewardPrefixes = []string{
	"You found", "You defeated", "You opened", "You drink", "Victory!", "Ganon has fallen", "***",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "==="):
		return kindHeader
	case hasAnyPrefix(line, errorPrefixes):
		return kindError
	case hasAnyPrefix(line, rewardPrefixes), strings.HasSuffix(line, "dropped a potion!"):
		return kindReward
	case strings.Contains(line, " damage"),
		strings.HasPrefix(line, "You engage"),
		strings.HasPrefix(line, "You escape"),
		strings.HasPrefix(line, "Critical hit!"):
		return kindCombat
	default:
		return kindNarrative
	}
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeader:
		return styleHeader.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindReward:
		return styleReward.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindInput:
		return stylePlayerInput.Render(line)
	case kindMeta:
		return styleSystem.Render("[" + line + "]")
	default:
		return styleNarrative.Render(line)
	}
}
