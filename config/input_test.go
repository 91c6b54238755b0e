package config

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestConfirmBindings(t *testing.T) {
	keys := Input.Bindings[ActionConfirm].Keys
	for _, want := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter} {
		if !slices.Contains(keys, want) {
			t.Errorf("confirm keys %v missing %v", keys, want)
		}
	}
}
