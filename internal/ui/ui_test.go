package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/octodial/internal/engine"
	"github.com/DaanHessen/octodial/internal/util"
)

func testModel(delay time.Duration) model {
	return initialModel(util.Config{Theme: "dracula", Notation: "ascii", SettleDelay: delay, Mouse: true}, nil)
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x + dialLeft, Y: y + dialTop, Action: action, Button: tea.MouseButtonLeft}
}

func TestArrowKeysStep(t *testing.T) {
	m := testModel(0)
	m, _ = send(t, m, key("right"))
	m, _ = send(t, m, key("right"))
	if m.dial.Position() != 2 {
		t.Fatalf("expected position 2, got %d", m.dial.Position())
	}
	m, _ = send(t, m, key("left"))
	if m.dial.Position() != 1 {
		t.Fatalf("expected position 1, got %d", m.dial.Position())
	}
}

func TestDigitKeysPickPair(t *testing.T) {
	m := testModel(0)
	m, _ = send(t, m, key("0"))
	m, _ = send(t, m, key("1"))
	if got := m.dial.Display().Text; got != "i_0 i_1 = i_3" {
		t.Fatalf("expected i_0 i_1 = i_3, got %q", got)
	}
	if !strings.Contains(m.View(), "i_0 i_1 = i_3") {
		t.Fatalf("view does not show the product")
	}
	m, _ = send(t, m, key("2"))
	if !strings.Contains(m.status, "hidden") {
		t.Fatalf("expected hidden unit status, got %q", m.status)
	}
	m, _ = send(t, m, key("right"))
	if m.dial.Display().Kind != engine.DisplayEmpty {
		t.Fatalf("rotation should blank the display")
	}
}

func TestMouseClickOnLitUnit(t *testing.T) {
	m := testModel(0)
	x, y := unitCell(3)
	m, _ = send(t, m, mouse(tea.MouseActionPress, x, y))
	if m.dial.Dragging() {
		t.Fatalf("press on a lit unit should not start a drag")
	}
	if got := m.dial.Display().Text; got != "i_3" {
		t.Fatalf("expected i_3 picked, got %q", got)
	}
}

func TestMousePressOnHiddenUnitDrags(t *testing.T) {
	m := testModel(0)
	x, y := unitCell(2)
	m, _ = send(t, m, mouse(tea.MouseActionPress, x, y))
	if !m.dial.Dragging() {
		t.Fatalf("press on a hidden unit should grab the mask")
	}
}

func TestMouseDragSnaps(t *testing.T) {
	m := testModel(200 * time.Millisecond)
	m, _ = send(t, m, key("0"))
	// 3 o'clock (0 degrees) to 6 o'clock (90 degrees)
	m, _ = send(t, m, mouse(tea.MouseActionPress, dialX+16, dialY))
	if !m.dial.Dragging() || m.dial.Display().Kind != engine.DisplayEmpty {
		t.Fatalf("expected drag to start and clear the pick")
	}
	m, _ = send(t, m, mouse(tea.MouseActionMotion, dialX, dialY+8))
	if d := m.dial.DragOffset(); d < 89.9 || d > 90.1 {
		t.Fatalf("expected 90 degree drag, got %.2f", d)
	}
	m, cmd := send(t, m, mouse(tea.MouseActionRelease, dialX, dialY+8))
	if m.dial.Position() != 2 {
		t.Fatalf("expected snap to position 2, got %d", m.dial.Position())
	}
	if !m.settling || cmd == nil {
		t.Fatalf("expected a settle tick after release")
	}
	if m.lit(2) {
		t.Fatalf("units should stay unlit while settling")
	}
	m, _ = send(t, m, settledMsg{seq: m.settleSeq - 1})
	if !m.settling {
		t.Fatalf("a stale settle message must not end settling")
	}
	m, _ = send(t, m, settledMsg{seq: m.settleSeq})
	if m.settling || !m.lit(2) || !m.lit(3) || !m.lit(5) {
		t.Fatalf("expected units 2, 3, 5 lit after settling")
	}
}

func TestDigitIgnoredWhileDragging(t *testing.T) {
	m := testModel(0)
	m, _ = send(t, m, mouse(tea.MouseActionPress, dialX+16, dialY))
	m, _ = send(t, m, key("0"))
	if m.dial.Display().Kind != engine.DisplayEmpty {
		t.Fatalf("digit pick during drag should be ignored")
	}
}

func TestViewsAndToggles(t *testing.T) {
	m := testModel(0)
	m, _ = send(t, m, key("tab"))
	if m.view != viewTable || !strings.Contains(m.View(), "i_3") {
		t.Fatalf("expected table view with entries")
	}
	m, _ = send(t, m, key("esc"))
	if m.view != viewDial {
		t.Fatalf("esc should return to the dial, got %s", m.view)
	}
	m, _ = send(t, m, key("?"))
	if m.view != viewHelp || !strings.Contains(m.View(), "Controls") {
		t.Fatalf("expected help view")
	}
	m, _ = send(t, m, key("?"))
	m, _ = send(t, m, key("n"))
	if m.notationName != "unicode" || m.notation.Unit(0) != "i₀" {
		t.Fatalf("expected unicode notation after toggle, got %s", m.notationName)
	}
	theme := m.theme
	m, _ = send(t, m, key("c"))
	if m.theme == theme {
		t.Fatalf("expected theme to change")
	}
}

func TestQuit(t *testing.T) {
	m := testModel(0)
	_, cmd := send(t, m, key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestPointerAngle(t *testing.T) {
	cases := []struct {
		x, y int
		want float64
	}{
		{dialX + 10, dialY, 0},
		{dialX, dialY + 5, 90},
		{dialX - 10, dialY, 180},
		{dialX, dialY - 5, -90},
	}
	for _, c := range cases {
		if got := pointerAngle(c.x, c.y); got < c.want-1e-9 || got > c.want+1e-9 {
			t.Fatalf("pointerAngle(%d,%d)=%v want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestUnitCellsDistinct(t *testing.T) {
	seen := map[[2]int]engine.Generator{}
	for g := engine.Generator(0); g < engine.Units; g++ {
		x, y := unitCell(g)
		if prev, ok := seen[[2]int{x, y}]; ok {
			t.Fatalf("units %d and %d share a cell", prev, g)
		}
		seen[[2]int{x, y}] = g
		if hit, ok := unitAt(x, y); !ok || hit != g {
			t.Fatalf("unitAt(%d,%d) = %d,%v want %d", x, y, hit, ok, g)
		}
	}
}

func TestNextThemeWraps(t *testing.T) {
	names := themeNames()
	if got := nextThemeName(names[len(names)-1], 1); got != names[0] {
		t.Fatalf("expected wrap to %s, got %s", names[0], got)
	}
	if got := nextThemeName(names[0], -1); got != names[len(names)-1] {
		t.Fatalf("expected wrap back to %s, got %s", names[len(names)-1], got)
	}
}
