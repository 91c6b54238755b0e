package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// snapshot restores the globals touched by overrides when the test ends.
func snapshot(t *testing.T) {
	t.Helper()
	game := *C
	player, enemy, fruit, level := Player, Enemy, Fruit, Level
	physics, score, env, audio, debug := Physics, Score, Env, Audio, Debug
	t.Cleanup(func() {
		C = &game
		Player, Enemy, Fruit, Level = player, enemy, fruit, level
		Physics, Score, Env, Audio, Debug = physics, score, env, audio, debug
	})
}

func TestApplyOverridesKeepsUnsetDefaults(t *testing.T) {
	snapshot(t)
	runSpeed := Player.RunSpeed

	doc := []byte(`
player:
  jumpBudget: 3
score:
  fruitValue: 25
level:
  endless: [level_tutorial]
`)
	if err := ApplyOverrides(doc); err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}

	if Player.JumpBudget != 3 {
		t.Errorf("JumpBudget = %d, want 3", Player.JumpBudget)
	}
	if Player.RunSpeed != runSpeed {
		t.Errorf("RunSpeed = %v, want default %v", Player.RunSpeed, runSpeed)
	}
	if Score.FruitValue != 25 {
		t.Errorf("FruitValue = %d, want 25", Score.FruitValue)
	}
	if len(Level.Endless) != 1 || Level.Endless[0] != "level_tutorial" {
		t.Errorf("Endless = %v, want [level_tutorial]", Level.Endless)
	}
}

func TestApplyOverridesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"negative jump budget", "player:\n  jumpBudget: -1\n", "jumpBudget"},
		{"zero cell size", "physics:\n  cellSize: 0\n", "cellSize"},
		{"missing default enemy", "enemy:\n  types:\n    bat:\n      collisionWidth: 8\n      collisionHeight: 8\n", "default type"},
		{"malformed yaml", "player: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			budget := Player.JumpBudget

			err := ApplyOverrides([]byte(tt.doc))
			if err == nil {
				t.Fatalf("ApplyOverrides() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
			if Player.JumpBudget != budget {
				t.Errorf("globals changed on failed override: JumpBudget = %d, want %d", Player.JumpBudget, budget)
			}
		})
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "fruitrun.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  skipMenu: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if !Debug.SkipMenu {
		t.Error("Debug.SkipMenu = false, want true")
	}

	if err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadOverrides(missing) error = nil, want error")
	}
}

func TestParseEnemyKindFallsBack(t *testing.T) {
	tests := []struct {
		tag    string
		want   EnemyKind
		wantOK bool
	}{
		{"mushroom", EnemyMushroom, true},
		{" Mushroom ", EnemyMushroom, true},
		{"", DefaultEnemyKind, false},
		{"dragon", DefaultEnemyKind, false},
	}

	for _, tt := range tests {
		got, ok := ParseEnemyKind(tt.tag)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseEnemyKind(%q) = (%v, %v), want (%v, %v)", tt.tag, got, ok, tt.want, tt.wantOK)
		}
	}
}
