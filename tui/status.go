package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current area, health, level, gold and turn count. Score is shown when it
// fits.
func (m Model) renderStatusBar() string {
	s := m.engine.Session
	g := s.Game

	left := fmt.Sprintf(" %s | HP %d/%d | Lvl %d", g.CurrentArea, g.Player.Health, g.Player.MaxHealth, g.Player.Level)
	if s.Battle.State.Active {
		foe := s.Enemies[s.Battle.Enemy]
		left += fmt.Sprintf(" | vs %s %d/%d", foe.Kind, foe.Health, foe.MaxHealth)
	}
	right := fmt.Sprintf("Gold %d | T:%d ", s.Inventory.Gold, g.TurnNumber)

	candidate := fmt.Sprintf("Score %d | %s", s.Score, right)
	if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
		right = candidate
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
