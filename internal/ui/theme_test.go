package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestLightLineThemeFixedVariant(t *testing.T) {
	dark := NewLightLineThemeWithVariant(theme.VariantDark)
	base := theme.DefaultTheme()

	got := dark.Color(theme.ColorNameBackground, theme.VariantLight)
	want := base.Color(theme.ColorNameBackground, theme.VariantDark)
	if got != want {
		t.Errorf("fixed dark theme should ignore the requested variant, got %v want %v", got, want)
	}
}

func TestLightLineThemeFollowsSystem(t *testing.T) {
	th := NewLightLineTheme()
	base := theme.DefaultTheme()

	for _, v := range []fyne.ThemeVariant{theme.VariantLight, theme.VariantDark} {
		if th.Color(theme.ColorNameBackground, v) != base.Color(theme.ColorNameBackground, v) {
			t.Errorf("variant %d: expected base background", v)
		}
	}
	if th.Color(theme.ColorNamePrimary, theme.VariantLight) != accent {
		t.Error("expected accent primary color")
	}
	if th.Size(theme.SizeNameText) != 12 {
		t.Errorf("expected compact text size 12, got %f", th.Size(theme.SizeNameText))
	}
}
