package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-duel/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config [preset]",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a duel would use, after the configuration
file, the optional preset and any rule flags are applied.

Examples:
  duel config
  duel config chaos --rocks 20 > ~/.duel/duel.yaml
  duel config --default`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	addRuleFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default file with comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaultConfig {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

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

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
