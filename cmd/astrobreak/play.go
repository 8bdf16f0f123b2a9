package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrobreak/internal/config"
	"github.com/vovakirdan/astrobreak/internal/core"
	"github.com/vovakirdan/astrobreak/internal/diag"
	"github.com/vovakirdan/astrobreak/internal/platform/tui"
	"github.com/vovakirdan/astrobreak/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagQuery      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match of Astrobreak in this terminal.

Controls:
  Left/A/H     - Steer left
  Right/D/L    - Steer right
  Enter/Space  - Start
  P            - Pause
  R            - Restart (after the match ends)
  Esc/B        - Back to title
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, wider ship, slower drone
  normal - Configured values
  hard   - Fewer lives, narrow ship, faster drone
  fixed  - No drone speed progression

Diagnostics (--query):
  devPanel  - Show the state line and enable Ctrl+W to clear the field
  musicLab  - Show the sound cue log

Examples:
  astrobreak play
  astrobreak play --difficulty easy
  astrobreak play --config ./my-astrobreak.yaml
  astrobreak play --query "devPanel=1&musicLab"`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagQuery, "query", "", "Diagnostic flags as a query string")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags, err := diag.ParseFlags(flagQuery)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "astrobreak",
	})

	// Continue without storage - the game still works
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(cfg, rt, tui.Options{
		Store:   store,
		Flags:   flags,
		Player:  "local",
		Logger:  logger,
		Publish: true,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
