package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-duel/internal/config"
	"github.com/vovakirdan/snake-duel/internal/games/duel"
	"github.com/vovakirdan/snake-duel/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a duel",
	Long: `Start a duel on this terminal.

Controls:
  Arrows     - Player 1
  W/A/S/D    - Player 2
  R          - Restart (after game over)
  Q/Esc      - Quit

A preset from 'duel list' is applied on top of the configuration file;
flags override both.

Examples:
  duel play
  duel play rocky
  duel play --width 30 --height 15 --wrap
  duel play portals --seed 42
  duel play --prompt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addRuleFlags(playCmd)
	addPromptFlag(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
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

	if err := playDuel(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running duel: %v\n", err)
		os.Exit(1)
	}
}

// playDuel runs duels on the local terminal until the players quit, then
// logs every finished game and prints the last outcome.
func playDuel(cfg config.Config, logger *log.Logger) error {
	rc := cfg.Runtime(flagSeed)
	boardW, boardH := rc.ScreenW, rc.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
		if w < boardW || h < boardH {
			logger.Warn("terminal is smaller than the board", "terminal", fmt.Sprintf("%dx%d", w, h),
				"board", fmt.Sprintf("%dx%d", boardW, boardH))
		}
	}

	model, err := tui.NewModel(cfg.Settings(), rc)
	if err != nil {
		return err
	}

	var results []tui.Result
	model = model.OnFinish(func(r tui.Result) {
		results = append(results, r)
	})

	if _, err := tui.Run(model); err != nil {
		return err
	}

	// The alternate screen is gone now, so logging is safe.
	for i, r := range results {
		logger.Info("duel finished", "game", i+1, "outcome", r.Outcome, "ticks", r.Ticks, "seed", r.Seed)
	}
	if n := len(results); n > 0 && results[n-1].Outcome != duel.OutcomeNone {
		fmt.Println(tui.OutcomeLabel(results[n-1].Outcome))
	}
	return nil
}
