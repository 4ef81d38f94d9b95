package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

func TestPaletteRenderPlainOutput(t *testing.T) {
	// A renderer without a terminal uses the ASCII profile, so no escapes are emitted
	p := NewPalette(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 3)
	s.DrawTextColor(0, 0, "ab", core.ColorPlayer)
	s.DrawTextColor(2, 0, "cd", core.ColorObstacle)
	s.SetColor(5, 1, '#', core.Color(200))
	s.DrawText(0, 2, "xyz")

	got := p.Render(s)
	if got != s.String() {
		t.Errorf("Render() = %q, want %q", got, s.String())
	}
}

func TestPaletteCoversCoreColors(t *testing.T) {
	p := NewPalette(nil)

	for c := core.ColorRed; c <= core.ColorGray; c++ {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
	if !p.style(core.ColorPlayer).GetBold() {
		t.Error("player color should be bold")
	}
	if p.style(core.Color(250)).GetBold() {
		t.Error("unknown color should fall back to the plain style")
	}
}
