// duel is a two-player snake game for one shared terminal.
//
// Usage:
//
//	duel play [preset]   - Play a duel, optionally with a rule preset
//	duel setup           - Pick board size, rocks, wrap and portals in a form, then play
//	duel list            - List rule presets
//	duel config [preset] - Print the effective configuration as YAML
//	duel serve           - Host a duel per SSH session
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Read configuration from a YAML file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Snake Duel - two snakes, one terminal",
	Long: `Snake Duel is a two-player snake game played on one keyboard.
Player 1 steers with the arrow keys, player 2 with WASD. Leaving the
board, hitting the other snake or landing on a rock loses; meeting
head-on is a draw.

Available commands:
  play     - Play a duel
  setup    - Configure the board in a form, then play
  list     - Show rule presets
  config   - Print the effective configuration
  serve    - Start SSH server, one duel per connection

Examples:
  duel play
  duel play wrap --rocks 10
  duel play --prompt
  duel config chaos > ~/.duel/duel.yaml
  duel serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.duel/duel.yaml, ./configs/duel.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger for the --log-level flag.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
