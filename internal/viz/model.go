package viz

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/molview/internal/raster"
	"github.com/san-kum/molview/internal/viewer"
)

const (
	panelWidth  = 32
	orbitStep   = 0.1
	historySize = 120

	gifCharW, gifCharH = 8, 16
)

type TickMsg time.Time

type gifSavedMsg struct {
	path   string
	frames int
	err    error
}

// Model drives a Viewer from the bubbletea event loop and shows its
// WireSurface beside a status panel.
type Model struct {
	viewer   *viewer.Viewer
	surface  *WireSurface
	interval time.Duration

	theme  int
	styles styles

	width, height int
	showHelp      bool

	recorder *raster.GIFRecorder
	GIFPath  string

	message  string
	last     time.Time
	frameDur []float64
}

// NewModel wraps v, which must render into surface.
func NewModel(v *viewer.Viewer, surface *WireSurface, fps int, theme string) Model {
	if fps <= 0 {
		fps = 60
	}
	idx := ThemeIndex(theme)
	return Model{
		viewer:   v,
		surface:  surface,
		interval: time.Second / time.Duration(fps),
		theme:    idx,
		styles:   newStyles(Themes[idx]),
		GIFPath:  "molview.gif",
		frameDur: make([]float64, 0, historySize),
	}
}

func (m Model) Viewer() *viewer.Viewer { return m.viewer }
func (m Model) Theme() Theme           { return Themes[m.theme] }
func (m Model) Recording() bool        { return m.recorder != nil }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// canvasSize is the braille area left after the side panel.
func canvasSize(width, height int) (cols, rows int) {
	return width - panelWidth, height - 1
}

// Update handles input events and advances the viewer one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols, rows := canvasSize(msg.Width, msg.Height)
		if err := m.viewer.Resize(cols*2, rows*4); err != nil {
			m.message = "terminal too small"
		} else {
			m.message = ""
		}
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.frameDur = append(m.frameDur, float64(now.Sub(m.last))/float64(time.Millisecond))
			if len(m.frameDur) > historySize {
				m.frameDur = m.frameDur[1:]
			}
		}
		m.last = now
		m.viewer.Tick()
		if m.recorder != nil {
			m.recorder.Add(m.surface.Canvas().Image(gifCharW, gifCharH, hexColor(m.Theme().Canvas), color.Black))
		}
		return m, m.tick()

	case gifSavedMsg:
		if msg.err != nil {
			m.message = msg.err.Error()
		} else {
			m.message = fmt.Sprintf("saved %d frames to %s", msg.frames, msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.viewer.Controls
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		c.RotateLeft(orbitStep)
	case "right", "l":
		c.RotateLeft(-orbitStep)
	case "up", "k":
		c.RotateUp(orbitStep)
	case "down", "j":
		c.RotateUp(-orbitStep)
	case "+", "=":
		c.Dolly(1)
	case "-", "_":
		c.Dolly(-1)
	case "r":
		m.viewer.ResetView()
	case " ":
		m.viewer.TogglePause()
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	case "g":
		if m.recorder == nil {
			m.recorder = raster.NewGIFRecorder(int(m.interval / (10 * time.Millisecond)))
			m.message = "recording"
			return m, nil
		}
		rec := m.recorder
		m.recorder = nil
		return m, saveGIF(rec, m.GIFPath)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func saveGIF(rec *raster.GIFRecorder, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return gifSavedMsg{path: path, err: err}
		}
		defer f.Close()
		if err := rec.Encode(f); err != nil {
			return gifSavedMsg{path: path, err: err}
		}
		return gifSavedMsg{path: path, frames: rec.Len()}
	}
}

// View renders the canvas and the status panel.
func (m Model) View() string {
	canvas := m.styles.canvas.Render(strings.TrimSuffix(m.surface.Canvas().String(), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.styles.panel.Render(m.panel()))
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, m.styles.help.Render(helpText), body)
	}
	return body
}

func (m Model) panel() string {
	v, t := m.viewer, m.Theme()
	var s strings.Builder

	s.WriteString(GradientText("MOLVIEW", t.Title, t.TitleEnd) + "\n\n")

	switch {
	case m.recorder != nil:
		s.WriteString(m.styles.recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())))
	case v.Paused:
		s.WriteString(m.styles.paused.Render("PAUSED"))
	default:
		s.WriteString(m.styles.running.Render(AnimatedSpinner(v.Ticks()) + " RUNNING"))
	}
	s.WriteString("\n\n")

	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	r := v.Molecule.Rotation
	w, h := m.surface.Size()
	row("Tick", fmt.Sprintf("%d", v.Ticks()))
	row("Rot X", fmt.Sprintf("%.3f", r.X))
	row("Rot Y", fmt.Sprintf("%.3f", r.Y))
	row("Rot Z", fmt.Sprintf("%.3f", r.Z))
	row("Distance", fmt.Sprintf("%.1f", v.Camera.Position.Sub(v.Controls.Target).Len()))
	row("Viewport", fmt.Sprintf("%dx%d", w, h))
	row("Aspect", fmt.Sprintf("%.3f", v.Camera.Aspect))
	if n := len(m.frameDur); n > 0 {
		row("Frame", fmt.Sprintf("%.1fms", m.frameDur[n-1]))
	}
	s.WriteString(m.styles.canvas.Render(Sparkline(m.frameDur, panelWidth-4)) + "\n\n")
	row("Theme", t.Name)

	if m.message != "" {
		s.WriteString("\n" + m.styles.value.Render(m.message) + "\n")
	}
	s.WriteString("\n" + m.styles.hint.Render("space pause  r reset  g gif\nt theme  ? help  q quit"))
	return s.String()
}

const helpText = `KEYBOARD SHORTCUTS

  ←↑↓→ / hjkl   orbit the camera
  + / -         move closer / further
  r             reset the view
  space         pause / resume the spin
  g             start / stop GIF capture
  t             cycle themes
  ?             toggle this help
  q             quit`

func hexColor(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{r, g, b, 0xff}
}
