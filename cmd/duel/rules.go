package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-duel/internal/config"
	"github.com/vovakirdan/snake-duel/internal/registry"
)

// Rule flags shared by play, config and serve. They override the
// configuration file and the preset, but only when set.
var (
	flagWidth         int
	flagHeight        int
	flagRocks         int
	flagWrap          bool
	flagPortals       bool
	flagTick          time.Duration
	flagSelfCollision bool
	flagPrompt        bool
)

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells")
	cmd.Flags().IntVar(&flagRocks, "rocks", 0, "Number of rocks")
	cmd.Flags().BoolVar(&flagWrap, "wrap", false, "Wrap snakes around the board edges")
	cmd.Flags().BoolVar(&flagPortals, "portals", false, "Place a linked portal pair")
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Time between snake moves (e.g. 150ms)")
	cmd.Flags().BoolVar(&flagSelfCollision, "self-collision", false, "A snake running into itself loses")
}

func addPromptFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagPrompt, "prompt", false, "Ask for width, height, rocks, wrap and portals on the terminal")
}

// loadConfig resolves the configuration for a command: file (or embedded
// default), then the named preset, then rule flags, then prompts.
func loadConfig(cmd *cobra.Command, presetID string, logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded config", "source", source)

	if presetID != "" {
		preset, err := registry.Create(presetID)
		if err != nil {
			return cfg, fmt.Errorf("%w (run 'duel list' to see presets)", err)
		}
		preset.Apply(&cfg)
		logger.Debug("applied preset", "preset", presetID)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("rocks") {
		cfg.Rocks = flagRocks
	}
	if flags.Changed("wrap") {
		cfg.Grid.Wrap = flagWrap
	}
	if flags.Changed("portals") {
		cfg.Portals = flagPortals
	}
	if flags.Changed("tick") {
		cfg.TickInterval = flagTick
	}
	if flags.Changed("self-collision") {
		cfg.Rules.SelfCollision = flagSelfCollision
	}

	if flagPrompt {
		if err := config.Prompt(os.Stdin, os.Stdout, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Debug("effective config",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"wrap", cfg.Grid.Wrap,
		"rocks", cfg.Rocks,
		"portals", cfg.Portals,
		"tick", cfg.TickInterval,
		"self_collision", cfg.Rules.SelfCollision,
	)
	return cfg, nil
}

// presetArg returns the optional preset argument.
func presetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
