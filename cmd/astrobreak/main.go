// astrobreak is a terminal arcade game: steer the ship, keep the drone in
// play, and shatter the asteroid field.
//
// Usage:
//
//	astrobreak play          - Play a match in this terminal
//	astrobreak serve         - Start SSH server for remote play
//	astrobreak scores        - Show the local high score table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible starfields
//	--db <path>     - Set database path (default: storage.path from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrobreak/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astrobreak",
	Short: "Astrobreak - break asteroids in your terminal",
	Long: `Astrobreak is a breakout-style arcade game played in the terminal.
Bounce the drone off your ship, split the asteroids, clear the field.

Available commands:
  play     - Play a match
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  astrobreak play
  astrobreak play --difficulty hard
  astrobreak play --query "devPanel&musicLab"
  astrobreak serve --ssh :2222
  astrobreak scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// dbPath resolves the --db flag against the loaded configuration.
func dbPath(cfg config.AstrobreakConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}
