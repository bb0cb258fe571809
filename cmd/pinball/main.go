// pinball is a terminal pinball table.
//
// Usage:
//
//	pinball list             - List available tables
//	pinball play [table]     - Play a table (default: classic)
//	pinball menu             - Pick a table interactively
//	pinball config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Presentation frame rate (default: 60)
//	--physics-hz <rate>  - Fixed physics rate (default: 50)
//	--config <path>      - Custom pinball.yaml
//	--log <path>         - Write logs to a file
//	--debug              - Log rule hits as well as round changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the built-in tables
	_ "github.com/vovakirdan/tui-pinball/internal/tables"
)

var (
	// Global flags
	flagFPS       int
	flagPhysicsHz int
	flagConfig    string
	flagLogPath   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinball",
	Short: "Terminal pinball",
	Long: `A pinball table that runs in your terminal.

Available commands:
  list     - Show all available tables
  play     - Play a table directly
  menu     - Interactive table picker
  config   - Print the effective configuration

Examples:
  pinball list
  pinball play classic
  pinball play --difficulty hard
  pinball menu
  pinball config > ~/.pinball/configs/pinball.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().IntVar(&flagPhysicsHz, "physics-hz", 50, "Physics steps per second")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pinball config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
