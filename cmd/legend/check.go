package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathoo/legend/content"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/loader"
)

var checkCmd = &cobra.Command{
	Use:   "check [scenario_dir]",
	Short: "Validate a scenario without playing it",
	Long: `Load a scenario directory, report validation errors and warnings,
and summarize what it defines. Without an argument the built-in Hyrule
scenario is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		defs     *state.Defs
		warnings []string
		err      error
	)
	if len(args) == 1 {
		defs, warnings, err = loader.Check(os.DirFS(args[0]), ".")
	} else {
		defs, warnings, err = loader.Check(content.Hyrule, content.HyruleDir)
	}
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d enemies, %d pickups, %d regions, %d lore notes\n",
		defs.Game.Title, len(defs.Enemies), len(defs.Pickups), len(defs.Regions), len(defs.Lore))
	fmt.Fprintln(out, "OK")
	return nil
}
