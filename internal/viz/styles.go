package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	canvas    lipgloss.Style
	panel     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	hint      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	recording lipgloss.Style
	help      lipgloss.Style
}

func newStyles(t Theme) styles {
	s := styles{
		canvas:    lipgloss.NewStyle().Foreground(t.Canvas),
		label:     lipgloss.NewStyle().Foreground(t.Label).Width(10),
		value:     lipgloss.NewStyle().Foreground(t.Value),
		hint:      lipgloss.NewStyle().Foreground(t.Hint).Italic(true),
		running:   lipgloss.NewStyle().Bold(true).Foreground(t.Running),
		paused:    lipgloss.NewStyle().Bold(true).Foreground(t.Paused),
		recording: lipgloss.NewStyle().Bold(true).Foreground(t.Recording).Blink(true),
	}
	s.panel = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(panelWidth - 2)
	s.help = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Value).
		Padding(0, 1)
	return s
}

// GradientText colours each rune by interpolating between two hex colours.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	sr, sg, sb := parseHex(string(from))
	er, eg, eb := parseHex(string(to))

	var b strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := fmt.Sprintf("#%02x%02x%02x", lerp(sr, er, t), lerp(sg, eg, t), lerp(sb, eb, t))
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(col)).Render(string(c)))
	}
	return b.String()
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame uint64) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%uint64(len(spinners))]
}

// Sparkline renders values as a row of block characters, sampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(len(values)/width, 1)
	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		idx := int((values[i*step] - lo) / rng * float64(len(chars)-1))
		b.WriteRune(chars[min(max(idx, 0), len(chars)-1)])
	}
	return b.String()
}

func parseHex(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0xff, 0xff, 0xff
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0xff, 0xff, 0xff
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}
