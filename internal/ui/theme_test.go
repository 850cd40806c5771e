package ui

import (
	"testing"

	"github.com/vitrinedev/vitrine/internal/store"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme(store.ThemeDark); got.Name != store.ThemeDark {
		t.Fatalf("GetTheme(dark).Name = %q, want dark", got.Name)
	}
	if got := GetTheme(store.ThemeLight); got.Name != store.ThemeLight {
		t.Fatalf("GetTheme(light).Name = %q, want light", got.Name)
	}
	// Unknown preferences fall back to light rather than crashing.
	if got := GetTheme(store.Theme("plaid")); got.Name != store.ThemeLight {
		t.Fatalf("GetTheme(unknown).Name = %q, want light", got.Name)
	}
}

func TestThemesDefineDistinctPalettes(t *testing.T) {
	light := GetTheme(store.ThemeLight)
	dark := GetTheme(store.ThemeDark)

	if light.Background == dark.Background {
		t.Fatal("light and dark share a background color")
	}
	if light.Text == dark.Text {
		t.Fatal("light and dark share a text color")
	}
}
