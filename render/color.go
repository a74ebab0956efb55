package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Symbol colours for the terminal UI.
var symbolStyles = map[rune]lipgloss.Style{
	'@': lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	'.': lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	'T': lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	'~': lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	'O': lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
	'#': lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	'*': lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	'$': lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	'C': lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
	'+': lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	'[': lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
}

var enemyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

// Colorize styles each map symbol. Runs of the same symbol share one
// styled span.
func Colorize(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		runes := []rune(line)
		for j := 0; j < len(runes); {
			k := j
			for k < len(runes) && runes[k] == runes[j] {
				k++
			}
			b.WriteString(styleFor(runes[j]).Render(string(runes[j:k])))
			j = k
		}
		out[i] = b.String()
	}
	return out
}

func styleFor(r rune) lipgloss.Style {
	if st, ok := symbolStyles[r]; ok {
		return st
	}
	if strings.ContainsRune("skbgDB", r) {
		return enemyStyle
	}
	return lipgloss.NewStyle()
}
