package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/typhoonviz/internal/chart"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	defaultInterval = 50 * time.Millisecond
	minVisible      = 0.05
)

type TickMsg time.Time

// Preview plays a chart's frames on a Braille canvas. Frames are generated
// on first display and cached so scrubbing back replays the same geometry.
type Preview struct {
	chart    chart.Chart
	title    string
	layout   chart.Layout
	cache    []chart.Frame
	index    int
	running  bool
	loop     bool
	canvas   *Canvas
	theme    Theme
	interval time.Duration
	showHelp bool
}

func NewPreview(c chart.Chart, loop bool) Preview {
	layout := c.Layout()
	interval := defaultInterval
	for _, b := range layout.Buttons {
		if b.Action == chart.ActionPlay && b.FrameMS > 0 {
			interval = time.Duration(b.FrameMS) * time.Millisecond
			break
		}
	}

	p := Preview{
		chart:    c,
		title:    layout.Title,
		layout:   layout,
		cache:    make([]chart.Frame, 0, c.Frames()),
		running:  true,
		loop:     loop,
		canvas:   NewCanvas(defaultWidth, defaultHeight-6),
		theme:    ThemeFor(c.Name()),
		interval: interval,
	}
	p.draw()
	return p
}

func (m Preview) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Preview) Init() tea.Cmd {
	return m.tick()
}

// Index is the frame currently shown.
func (m Preview) Index() int { return m.index }

func (m Preview) Running() bool { return m.running }

func (m Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.index = 0
		case "[", "left", "h":
			m.running = false
			m.index = max(0, m.index-1)
		case "]", "right", "l":
			m.running = false
			m.index = min(m.chart.Frames()-1, m.index+1)
		case "t":
			m.theme = nextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
	case tea.WindowSizeMsg:
		m.canvas = NewCanvas(max(msg.Width-2, 10), max(msg.Height-8, 4))
		m.draw()
	case TickMsg:
		if m.running {
			m.advance()
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Preview) advance() {
	next := m.index + 1
	if next < m.chart.Frames() {
		m.index = next
		return
	}
	if m.loop {
		m.index = 0
		return
	}
	m.running = false
}

// frame returns frame i, generating every missing frame up to it in order.
func (m *Preview) frame(i int) chart.Frame {
	for len(m.cache) <= i {
		m.cache = append(m.cache, m.chart.Frame(len(m.cache)))
	}
	return m.cache[i]
}

func (m *Preview) draw() {
	m.canvas.Clear()
	fr := m.frame(m.index)

	w, h := m.canvas.Pixels()
	xr, yr := m.layout.X.Range, m.layout.Y.Range
	px := func(x, y float64) (int, int) {
		return int(math.Round((x - xr[0]) / (xr[1] - xr[0]) * float64(w-1))),
			int(math.Round(float64(h-1) - (y-yr[0])/(yr[1]-yr[0])*float64(h-1)))
	}

	for _, t := range fr.Traces {
		if t.Opacity < minVisible {
			continue
		}
		if t.Mode == chart.ModeLines {
			for i := 1; i < len(t.X); i++ {
				x0, y0 := px(t.X[i-1], t.Y[i-1])
				x1, y1 := px(t.X[i], t.Y[i])
				m.canvas.DrawLine(x0, y0, x1, y1)
			}
			continue
		}
		for i := range t.X {
			x, y := px(t.X[i], t.Y[i])
			size := t.Size
			if i < len(t.Sizes) {
				size = t.Sizes[i]
			}
			m.canvas.Dot(x, y, int(size/8))
		}
	}
}

func (m Preview) View() string {
	fr := m.cache[min(m.index, len(m.cache)-1)]

	header := lipgloss.NewStyle().Bold(true).Render(GradientText(m.title, m.theme.Primary, m.theme.Secondary))
	canvasView := lipgloss.NewStyle().Foreground(m.theme.Text).Render(m.canvas.String())

	status := "PLAYING"
	if !m.running {
		status = "PAUSED"
	}
	statusStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	progress := make([]float64, len(m.cache))
	for i, f := range m.cache {
		progress[i] = f.MeanProgress()
	}

	var s strings.Builder
	s.WriteString(header + "\n")
	s.WriteString(canvasView)
	s.WriteString(fmt.Sprintf("%s  frame %d/%d  %s %3.0f%%\n",
		statusStyle.Render(status),
		m.index+1, m.chart.Frames(),
		ProgressBar(fr.MeanProgress(), 20), fr.MeanProgress()*100))
	s.WriteString(muted.Render(Sparkline(progress, m.canvas.Width)) + "\n")

	if m.showHelp {
		s.WriteString(KeyHint.Render("space pause/resume · [ ] step · r restart · t theme · q quit") + "\n")
	} else {
		s.WriteString(KeyHint.Render("? help") + "\n")
	}
	return s.String()
}
