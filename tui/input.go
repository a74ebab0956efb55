package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/legend/engine/snapshot"
	"github.com/nathoo/legend/render"
	"github.com/nathoo/legend/types"
)

var helpLines = []string{
	"System:",
	"  /quit     Exit game",
	"  /help     Show this help",
	"  /state    Debug: dump current state as YAML",
	"  /map      Toggle the map panel",
	"  /legend   Explain the map symbols",
	"  /history  Show recent commands",
	"  /trace    Toggle debug trace output",
	"",
	"Game commands:",
	"  n/s/e/w, go <dir>      Move (or flee a battle)",
	"  attack (a) [kind]      Attack: sword, spin, bow, magic, bash",
	"  use (u) [item]         Drink a potion or use an item",
	"  equip <item>           Wield a weapon or wear armor",
	"  interact (x)           Read lore or inspect the tile",
	"  look (l)               Describe your surroundings",
	"  inventory (i)          Check what you're carrying",
	"  status                 Show your stats",
	"  wait (z)               Let time pass",
	"  again (g)              Repeat your last command",
	"",
	"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
}

// submit handles the line in the input box.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if input == "" {
		return m, nil
	}
	m.history.Push(input)

	cmd, ok := m.expandRepeat(input)
	if !ok {
		m.write(outputMsg{echo: input, lines: []string{"Nothing to repeat."}, meta: true})
		return m, nil
	}

	if strings.HasPrefix(cmd, "/") {
		lines, quit := m.handleMeta(cmd)
		m.write(outputMsg{echo: cmd, lines: lines, meta: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.lastCmd = cmd
	m.write(outputMsg{echo: cmd, lines: m.play(cmd)})
	return m, nil
}

// expandRepeat turns "again" or "g" into the last game command.
func (m Model) expandRepeat(input string) (string, bool) {
	switch strings.ToLower(input) {
	case "again", "g":
		return m.lastCmd, m.lastCmd != ""
	}
	return input, true
}

// play runs one game command. The first time the game ends the banner and
// final summary are appended.
func (m *Model) play(cmd string) []string {
	result := m.engine.Step(cmd)
	lines := result.Output
	if m.trace {
		lines = append(lines, formatTrace(result)...)
	}
	if !result.Continues && !m.ended {
		m.ended = true
		lines = append(lines, "")
		lines = append(lines, render.GameOver(m.engine.Session.Victory)...)
		lines = append(lines, m.summary(), "Type /quit to leave.")
	}
	return lines
}

// handleMeta runs a /command and reports whether the program should exit.
func (m *Model) handleMeta(input string) ([]string, bool) {
	name := strings.Fields(input)[0]
	switch name {
	case "/quit", "/exit":
		return []string{"Goodbye.", m.summary()}, true
	case "/help":
		return helpLines, false
	case "/state":
		return m.stateDump(), false
	case "/legend":
		return render.Legend(), false
	case "/history":
		return m.history.Recent(10), false
	case "/map":
		m.showMap = !m.showMap
		if m.ready {
			m.resize(m.width, m.height)
		}
		return toggled("Map display", m.showMap), false
	case "/trace":
		m.trace = !m.trace
		return toggled("Trace output", m.trace), false
	}
	return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", name)}, false
}

func toggled(what string, on bool) []string {
	if on {
		return []string{what + " enabled."}
	}
	return []string{what + " disabled."}
}

func (m *Model) stateDump() []string {
	data, err := snapshot.YAML(snapshot.Take(m.engine.Session, m.engine.Defs))
	if err != nil {
		return []string{fmt.Sprintf("State dump failed: %v", err)}
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func (m *Model) summary() string {
	s := m.engine.Session
	return fmt.Sprintf("Final score: %d | Level: %d | Gold: %d | Turns: %d",
		s.Score, s.Game.Player.Level, s.Inventory.Gold, s.Game.TurnNumber-1)
}

// formatTrace renders the phase and events of one step, event data keys
// sorted.
func formatTrace(result types.Result) []string {
	lines := []string{fmt.Sprintf("[trace] Phase: %s", result.Phase)}
	if len(result.Events) == 0 {
		return lines
	}
	lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		names := make([]string, 0, len(e.Data))
		for k := range e.Data {
			names = append(names, k)
		}
		sort.Strings(names)
		var b strings.Builder
		b.WriteString("[trace]   " + e.Type)
		for _, k := range names {
			fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
		}
		lines = append(lines, b.String())
	}
	return lines
}
