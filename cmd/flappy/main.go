// flappy is a side-scrolling arcade game for the terminal.
//
// Usage:
//
//	flappy play     - Play in this terminal
//	flappy serve    - Start an SSH server, one game per session
//	flappy sim      - Run a headless, deterministic simulation
//	flappy config   - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Frames drawn per second (default: 60)
//	--seed <value>        - Integer seed or any phrase for reproducible obstacles
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: classic, edge, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through an endless stream of pipes",
	Long: `Flappy is a terminal take on the classic side-scroller: the bird
falls, you flap, and every pipe you clear is worth points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Headless simulation for reproducible runs
  config   - Print the default game config

Examples:
  flappy play
  flappy play --seed "hello world" --difficulty edge
  flappy serve --ssh :2222
  flappy sim --ticks 3600 --flap-every 18`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames drawn per second")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "RNG seed: integer (0 included) or phrase; unset = random based on time")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, edge, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from --config and --difficulty.
func loadGameConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
