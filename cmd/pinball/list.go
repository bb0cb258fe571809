package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pinball/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tables",
	Long:  `Shows a list of all tables built into pinball.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	tables := registry.List()

	if len(tables) == 0 {
		fmt.Fprintln(out, "No tables available.")
		return
	}

	fmt.Fprintln(out, "Available tables:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, t := range tables {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, t := range tables {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'pinball play <id>' to play a table.")
}
