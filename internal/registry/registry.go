// Package registry provides a global registry for table layouts.
// Tables register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

// TableInfo contains metadata about a registered table.
type TableInfo struct {
	ID    string
	Title string
}

// Factory produces a fresh, validated layout for a table.
type Factory func() (config.TableLayout, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a table factory to the registry.
// Typically called from an init() function.
// Panics if a table with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: table %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered tables, sorted by ID.
func List() []TableInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TableInfo, 0, len(factories))
	for id := range factories {
		result = append(result, TableInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load builds the layout for a table by its ID.
// Returns an error if the ID is not registered or the layout is invalid.
func Load(id string) (config.TableLayout, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return config.TableLayout{}, fmt.Errorf("registry: unknown table %q", id)
	}

	layout, err := f()
	if err != nil {
		return layout, fmt.Errorf("registry: table %q: %w", id, err)
	}
	return layout, nil
}

// Exists checks if a table with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
