package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nathoo/legend/cli"
	"github.com/nathoo/legend/config"
	"github.com/nathoo/legend/engine"
	"github.com/nathoo/legend/engine/chance"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/loader"
	"github.com/nathoo/legend/observability"
	"github.com/nathoo/legend/tui"
)

var (
	configFile string
	scenario   string
	scriptFile string
	plain      bool
	trace      bool
	seed       int64
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configFile, "config", "", "config file (YAML)")
	f.StringVar(&scenario, "scenario", "", "scenario directory of Lua files (default: built-in Hyrule)")
	f.StringVar(&scriptFile, "script", "", "play commands from a file, echoing each one")
	f.BoolVar(&plain, "plain", false, "line-oriented output instead of the full-screen UI")
	f.BoolVar(&trace, "trace", false, "print phase and events after each turn")
	f.Int64Var(&seed, "seed", 0, "use seeded randomness with this seed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if scenario != "" {
		cfg.Game.Scenario = scenario
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Randomness = "seeded"
		cfg.Game.Seed = seed
	}
	if plain {
		cfg.UI.Plain = true
	}
	if trace {
		cfg.UI.Trace = true
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	defs, err := loadScenario(cfg.Game.Scenario)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	logger.Info("scenario loaded",
		zap.String("title", defs.Game.Title),
		zap.Int("enemies", len(defs.Enemies)),
		zap.Int("pickups", len(defs.Pickups)),
		zap.String("randomness", cfg.Game.Randomness),
	)

	eng := engine.New(defs,
		engine.WithSource(chance.New(cfg.Game.Randomness, cfg.Game.Seed)),
		engine.WithLogger(logger),
	)

	// Script mode: read commands from the file and echo them.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := newCLI(eng, cfg)
		c.In = f
		c.EchoInput = true
		c.Run()
		return nil
	}

	if cfg.UI.Plain || !isTerminal() {
		newCLI(eng, cfg).Run()
		return nil
	}

	return tui.Run(eng, cfg.Game.ViewWidth, cfg.Game.ViewHeight)
}

func newCLI(eng *engine.Engine, cfg config.Config) *cli.CLI {
	c := cli.New(eng)
	c.Trace = cfg.UI.Trace
	c.ViewWidth = cfg.Game.ViewWidth
	c.ViewHeight = cfg.Game.ViewHeight
	return c
}

func loadScenario(dir string) (*state.Defs, error) {
	if dir == "" {
		return loader.Default()
	}
	return loader.Load(dir)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
