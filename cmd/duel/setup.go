package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-duel/internal/platform/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup [preset]",
	Short: "Configure the board in a form, then play",
	Long: `Show a form for map width, height, rock count, wrap and portals,
prefilled from the configuration file and optional preset. Submitting the
form starts the duel; Esc cancels.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) {
	logger, err := newLogger("duel")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd, presetArg(args), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, ok, err := tui.RunSetup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running setup: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		logger.Debug("setup cancelled")
		return
	}

	if err := playDuel(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running duel: %v\n", err)
		os.Exit(1)
	}
}
