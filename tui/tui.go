package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/legend/engine"
	"github.com/nathoo/legend/render"
)

// historySize is how many commands Up/Down can recall.
const historySize = 100

// rawLine is a narrative line kept unstyled so it can be re-wrapped on
// resize.
type rawLine struct {
	text string
	kind lineKind
}

// outputMsg delivers lines to the narrative pane.
type outputMsg struct {
	echo  string // player input to show before the lines, if any
	lines []string
	meta  bool // reply to a /command
}

// Model is the Bubble Tea model for a game in progress.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *History

	narrative []rawLine

	viewWidth  int // map viewport, in tiles
	viewHeight int
	showMap    bool

	width, height int
	ready         bool
	trace         bool
	quitting      bool
	ended         bool // the game-over banner has been shown
	lastCmd       string
}

// New creates a TUI model wired to the given engine, with a map viewport
// of viewWidth x viewHeight tiles.
func New(eng *engine.Engine, viewWidth, viewHeight int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		engine:     eng,
		input:      ti,
		history:    NewHistory(historySize),
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
		showMap:    true,
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(eng *engine.Engine, viewWidth, viewHeight int) error {
	p := tea.NewProgram(New(eng, viewWidth, viewHeight), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	intro := m.engine.Defs.Game.Intro
	return func() tea.Msg {
		lines := append(append([]string(nil), render.Title()...), "")
		if intro != "" {
			lines = append(lines, strings.Split(intro, "\n")...)
			lines = append(lines, "")
		}
		lines = append(lines, "Type 'help' for commands, /help for system commands.")
		return outputMsg{lines: lines}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			return m.submit()
		case key.Matches(msg, keys.HistoryPrev):
			if entry, ok := m.history.Prev(); ok {
				m.input.SetValue(entry)
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(msg, keys.HistoryNext):
			entry, ok := m.history.Next()
			if !ok {
				m.history.ResetCursor()
			}
			m.input.SetValue(entry)
			m.input.CursorEnd()
			return m, nil
		case key.Matches(msg, keys.Scroll):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case outputMsg:
		m.write(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize lays the panes out for a terminal of the given size.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	w, h := m.narrativeSize()
	if m.ready {
		m.viewport.Width, m.viewport.Height = w, h
	} else {
		m.viewport = viewport.New(w, h)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	}
	m.refresh()
}

// narrativeSize is what is left for the narrative pane after the map
// panel, the status bar and the input line.
func (m Model) narrativeSize() (int, int) {
	w := m.width - 1
	if m.showMap {
		w -= m.viewWidth + 2 // border
	}
	return max(w, 10), max(m.height-2, 1)
}

// write appends output to the narrative, followed by a blank separator.
func (m *Model) write(msg outputMsg) {
	if msg.echo != "" {
		m.narrative = append(m.narrative, rawLine{text: "> " + msg.echo, kind: kindInput})
	}
	for _, line := range msg.lines {
		kind := kindMeta
		if !msg.meta {
			kind = classifyLine(line)
		}
		m.narrative = append(m.narrative, rawLine{text: line, kind: kind})
	}
	m.narrative = append(m.narrative, rawLine{})
	m.refresh()
}

// refresh re-wraps and re-styles the narrative at the current width and
// scrolls to the newest line.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	rows := make([]string, 0, len(m.narrative))
	for _, rl := range m.narrative {
		if rl.text == "" {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, renderLineKind(wordWrap(rl.text, m.viewport.Width), rl.kind))
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap breaks text at spaces so no line exceeds width. Text that
// already fits, such as a map row, is returned unchanged.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	var b strings.Builder
	col := 0
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
		case col+1+len(word) > width:
			b.WriteByte('\n')
			col = 0
		default:
			b.WriteByte(' ')
			col++
		}
		b.WriteString(word)
		col += len(word)
	}
	return b.String()
}

// View stacks the map panel and narrative side by side above the status
// bar and input line.
func (m Model) View() string {
	switch {
	case m.quitting:
		return ""
	case !m.ready:
		return "Loading..."
	}

	body := m.viewport.View()
	if m.showMap {
		rows := render.Colorize(render.Map(m.engine.Session, m.engine.Map, m.viewWidth, m.viewHeight))
		panel := styleMapPanel.Render(strings.Join(rows, "\n"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(), m.input.View())
}
