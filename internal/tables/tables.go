// Package tables embeds the built-in table layouts and registers them.
package tables

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/registry"
)

//go:embed layouts/*.yaml
var layouts embed.FS

// Built-in tables, in display order.
var builtin = []struct {
	id    string
	title string
}{
	{"classic", "Classic"},
	{"gauntlet", "Gauntlet"},
}

func init() {
	for _, t := range builtin {
		id := t.id
		registry.Register(id, t.title, func() (config.TableLayout, error) {
			return Builtin(id)
		})
	}
}

// Builtin parses an embedded layout by ID.
func Builtin(id string) (config.TableLayout, error) {
	data, err := layouts.ReadFile("layouts/" + id + ".yaml")
	if err != nil {
		return config.TableLayout{}, fmt.Errorf("tables: no built-in layout %q: %w", id, err)
	}
	return config.ParseTable(data)
}
