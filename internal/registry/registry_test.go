package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

func TestRegisterAndLoad(t *testing.T) {
	Register("zz-test", "Test Table", func() (config.TableLayout, error) {
		return config.TableLayout{Name: "zz-test"}, nil
	})

	if !Exists("zz-test") {
		t.Fatal("registered table should exist")
	}

	layout, err := Load("zz-test")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if layout.Name != "zz-test" {
		t.Errorf("Load() returned %q", layout.Name)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-test" {
			found = info.Title == "Test Table"
		}
	}
	if !found {
		t.Error("List() should include the registered table with its title")
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Error("expected error for unknown table")
	}
	if Exists("does-not-exist") {
		t.Error("unknown table should not exist")
	}
}

func TestLoadWrapsFactoryError(t *testing.T) {
	Register("zz-broken", "Broken", func() (config.TableLayout, error) {
		return config.TableLayout{}, config.ErrInvalidTable
	})
	if _, err := Load("zz-broken"); !errors.Is(err, config.ErrInvalidTable) {
		t.Errorf("Load() = %v, expected wrapped ErrInvalidTable", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", "Dup", func() (config.TableLayout, error) { return config.TableLayout{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", "Dup", func() (config.TableLayout, error) { return config.TableLayout{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", "B", func() (config.TableLayout, error) { return config.TableLayout{}, nil })
	Register("zz-a", "A", func() (config.TableLayout, error) { return config.TableLayout{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
