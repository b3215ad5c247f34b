package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (restart after game over)
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Difficulty options:
  classic - Speed and gap tighten on every tick the score sits on a multiple
  edge    - Speed and gap tighten once per score multiple
  fixed   - No progression

Examples:
  flappy play
  flappy play --difficulty fixed
  flappy play --seed 42 --log-file ~/.tui-flappy/play.log --log-level debug
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the screen)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger, err := logging.New(out, flagLogLevel, "flappy")
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = resolveSeed(flagSeed)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, gameCfg, cfg, logger); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
