// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for plain-text play and script playback.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/legend/engine"
	"github.com/nathoo/legend/engine/snapshot"
	"github.com/nathoo/legend/render"
	"github.com/nathoo/legend/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine     *engine.Engine
	In         io.Reader
	Out        io.Writer
	Trace      bool
	EchoInput  bool // echo each input line after the prompt (for script playback)
	ShowMap    bool // draw the viewport and HUD before each prompt
	ViewWidth  int
	ViewHeight int
	lastCmd    string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine:     eng,
		In:         os.Stdin,
		Out:        os.Stdout,
		ShowMap:    true,
		ViewWidth:  render.DefaultWidth,
		ViewHeight: render.DefaultHeight,
	}
}

// Run starts the game loop. It shows the title and intro, then loops:
// map → prompt → input → dispatch → output, until the adventure ends or
// input runs out.
func (c *CLI) Run() {
	for _, line := range render.Title() {
		c.printLine(line)
	}
	if intro := c.Engine.Defs.Game.Intro; intro != "" {
		c.printLine(intro)
	}
	c.printLine("Type 'help' for commands, /help for system commands.")
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		if c.ShowMap {
			c.printMap()
		}
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}

		if !result.Continues {
			c.printGameOver()
			return
		}
	}
	c.printLine("")
	c.printSummary()
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		c.printSummary()
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/map":
		c.ShowMap = !c.ShowMap
		if c.ShowMap {
			c.printSystem("Map display enabled.")
		} else {
			c.printSystem("Map display disabled.")
		}

	case "/legend":
		for _, line := range render.Legend() {
			c.printLine(line)
		}

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit    Exit game",
		"  /help    Show this help",
		"  /state   Debug: dump current state as YAML",
		"  /map     Toggle the map display",
		"  /legend  Explain the map symbols",
		"  /trace   Toggle debug trace output",
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
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	data, err := snapshot.YAML(snapshot.Take(c.Engine.Session, c.Engine.Defs))
	if err != nil {
		c.printSystem(fmt.Sprintf("State dump failed: %v", err))
		return
	}
	c.print(string(data))
}

func (c *CLI) printMap() {
	s := c.Engine.Session
	for _, line := range render.Map(s, c.Engine.Map, c.ViewWidth, c.ViewHeight) {
		c.printLine(line)
	}
	c.printLine(render.HUD(s))
}

func (c *CLI) printGameOver() {
	c.printLine("")
	for _, line := range render.GameOver(c.Engine.Session.Victory) {
		c.printLine(line)
	}
	c.printSummary()
}

func (c *CLI) printSummary() {
	s := c.Engine.Session
	c.printLine(fmt.Sprintf("Final score: %d | Level: %d | Gold: %d | Turns: %d",
		s.Score, s.Game.Player.Level, s.Inventory.Gold, s.Game.TurnNumber-1))
}

func (c *CLI) printTrace(result types.Result) {
	c.printSystem(fmt.Sprintf("[trace] Phase: %s", result.Phase))
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s%s", e.Type, formatData(e.Data)))
		}
	}
}

// formatData renders event data as sorted " key=value" pairs.
func formatData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, data[k])
	}
	return b.String()
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
