package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalTable = `
name: test
title: Test Table
bounds: { min_x: -5, max_x: 5, min_y: -6, max_y: 6 }
ball:
  start: { x: 0, y: 0 }
  radius: 0.15
flippers:
  left:  { pivot: { x: -2, y: -4 }, length: 1.5, rest: -25, min_angle: -25, max_angle: 30 }
  right: { pivot: { x: 2, y: -4 }, length: 1.5, rest: 205, min_angle: 150, max_angle: 205 }
coins:
  - { at: { x: 0, y: 2 }, radius: 0.2, sprite: coin3 }
teleporters:
  in:
    - { at: { x: -3, y: 3 }, radius: 0.3 }
  out:
    - { x: 3, y: 3 }
`

func TestParseTable(t *testing.T) {
	layout, err := ParseTable([]byte(minimalTable))
	if err != nil {
		t.Fatalf("ParseTable() failed: %v", err)
	}
	if layout.Name != "test" || layout.Title != "Test Table" {
		t.Errorf("unexpected identity: %q %q", layout.Name, layout.Title)
	}
	if len(layout.Coins) != 1 || layout.Coins[0].Sprite != "coin3" {
		t.Errorf("coins not parsed: %+v", layout.Coins)
	}
	if layout.Flippers.Right.Rest != 205 {
		t.Errorf("right flipper rest = %f, expected 205", layout.Flippers.Right.Rest)
	}
}

func TestParseTableRejectsDefects(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"mismatched teleporters", [2]string{"    - { x: 3, y: 3 }\n", ""}},
		{"unknown sprite", [2]string{"sprite: coin3", "sprite: coin7"}},
		{"missing name", [2]string{"name: test", "name: \"\""}},
		{"rest outside limits", [2]string{"rest: -25", "rest: -40"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := strings.Replace(minimalTable, tc.replace[0], tc.replace[1], 1)
			_, err := ParseTable([]byte(data))
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("ParseTable() = %v, expected ErrInvalidTable", err)
			}
		})
	}
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(minimalTable), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	layout, err := LoadTableFile(path)
	if err != nil {
		t.Fatalf("LoadTableFile() failed: %v", err)
	}
	if layout.Bounds.Width() != 10 || layout.Bounds.Height() != 12 {
		t.Errorf("bounds = %+v", layout.Bounds)
	}

	if _, err := LoadTableFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing table file")
	}
}

func TestCheckRules(t *testing.T) {
	rules := DefaultPinballConfig().Rules
	tests := []struct {
		name    string
		edit    func(*TableLayout)
		wantErr bool
	}{
		{"floor below drain", func(*TableLayout) {}, false},
		{"floor above drain", func(l *TableLayout) { l.Bounds.MinY = -4.5 }, true},
		{"ball rests on drain line", func(l *TableLayout) { l.Bounds.MinY = rules.DrainY - l.Ball.Radius }, true},
		{"launch left of table", func(l *TableLayout) { l.Bounds.MinX = -3.0 }, true},
		{"launch above table", func(l *TableLayout) { l.Bounds.MaxY = -3.5 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := ParseTable([]byte(minimalTable))
			if err != nil {
				t.Fatalf("ParseTable() failed: %v", err)
			}
			tc.edit(&layout)
			err = layout.CheckRules(rules)
			if tc.wantErr && !errors.Is(err, ErrInvalidTable) {
				t.Errorf("CheckRules() = %v, expected ErrInvalidTable", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("CheckRules() = %v, expected nil", err)
			}
		})
	}
}
