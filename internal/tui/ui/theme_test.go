package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}

	// Should use default theme when empty string is passed
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_InvalidTheme(t *testing.T) {
	// Invalid theme should fall back to default
	tp := NewThemeProvider("nonexistent-theme-xyz")

	// Should still be usable
	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}
	_ = tp.Styles()
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for a valid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("no-such-theme-xyz") {
		t.Error("expected SetTheme to return false for an unknown theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected the theme to stay 'nord', got %q", tp.CurrentName())
	}
}

func TestThemeProvider_CycleThemes(t *testing.T) {
	tp := NewThemeProvider("")
	start := tp.CurrentName()

	next := tp.NextTheme()
	if next == start {
		t.Error("expected NextTheme to advance")
	}
	if tp.PreviousTheme() != start {
		t.Errorf("expected PreviousTheme to return to %q, got %q", start, tp.CurrentName())
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()
	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	found := false
	for _, name := range themes {
		if name == DefaultTheme {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected %q among the available themes", DefaultTheme)
	}
}
