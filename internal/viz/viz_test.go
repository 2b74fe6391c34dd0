package viz

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/dataset"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("expected clear canvas")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	w, h := c.Pixels()
	if w != 20 || h != 20 {
		t.Fatalf("expected 20x20 pixels, got %dx%d", w, h)
	}
	for i := 0; i < 20; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal pixel %d not set", i)
		}
	}

	if lines := strings.Count(c.String(), "\n"); lines != 5 {
		t.Errorf("expected 5 rows, got %d", lines)
	}
}

func TestCanvasDot(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Dot(4, 4, 1)
	for _, p := range [][2]int{{4, 4}, {3, 4}, {5, 4}, {4, 3}, {4, 5}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("pixel %v not set", p)
		}
	}
	if c.IsSet(3, 3) {
		t.Error("corner should stay clear")
	}
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 0.5, 1}, 3)
	if got != "▁▄█" {
		t.Errorf("unexpected sparkline %q", got)
	}
	if Sparkline(nil, 3) != "───" {
		t.Error("expected flat line for no values")
	}
}

func TestThemes(t *testing.T) {
	if ThemeFor("heart").Name != "purples" {
		t.Errorf("expected purples for heart, got %s", ThemeFor("heart").Name)
	}
	if GetTheme("missing").Name != "night" {
		t.Error("expected night fallback")
	}
	if nextTheme("ocean").Name != "night" {
		t.Error("expected theme cycle to wrap")
	}
}

func newTestPreview(t *testing.T, frames int, loop bool) Preview {
	t.Helper()
	c := chart.NewFlow(dataset.HongKong(), chart.Options{Frames: frames, Rand: rand.New(rand.NewSource(1))})
	return NewPreview(c, loop)
}

func update(m Preview, msg tea.Msg) Preview {
	next, _ := m.Update(msg)
	return next.(Preview)
}

func TestPreviewTick(t *testing.T) {
	m := newTestPreview(t, 3, false)
	if m.interval != 50*time.Millisecond {
		t.Errorf("expected play button interval, got %v", m.interval)
	}

	tick := TickMsg(time.Now())
	m = update(m, tick)
	m = update(m, tick)
	if m.Index() != 2 {
		t.Fatalf("expected frame 2, got %d", m.Index())
	}

	m = update(m, tick)
	if m.Index() != 2 || m.Running() {
		t.Error("expected preview to stop on the last frame")
	}
}

func TestPreviewLoop(t *testing.T) {
	m := newTestPreview(t, 2, true)
	tick := TickMsg(time.Now())
	m = update(m, tick)
	m = update(m, tick)
	if m.Index() != 0 || !m.Running() {
		t.Errorf("expected wrap to 0 while running, got %d", m.Index())
	}
}

func TestPreviewKeys(t *testing.T) {
	m := newTestPreview(t, 5, false)

	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Running() {
		t.Error("space should pause")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if m.Index() != 2 {
		t.Errorf("expected frame 2 after stepping, got %d", m.Index())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	if m.Index() != 1 {
		t.Errorf("expected frame 1 after stepping back, got %d", m.Index())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Index() != 0 {
		t.Errorf("expected restart at 0, got %d", m.Index())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestPreviewView(t *testing.T) {
	m := newTestPreview(t, 4, false)
	view := m.View()

	if !strings.Contains(view, "frame 1/4") {
		t.Errorf("missing frame counter in view:\n%s", view)
	}
	if !strings.Contains(view, "PLAYING") {
		t.Error("missing status")
	}
}
