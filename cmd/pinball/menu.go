package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pinball/internal/platform/tui"
	"github.com/vovakirdan/tui-pinball/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a table interactively",
	Long: `Opens a table picker. After a game ends the picker comes back
until you quit it.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		layout, err := registry.Load(result.TableID)
		if err != nil {
			return err
		}
		if err := playTable(layout, cfg); err != nil {
			return err
		}
	}
}
