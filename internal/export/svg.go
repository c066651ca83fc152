// Package export writes canvas frames and sample trajectories as SVG.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/molview/internal/analysis"
	"github.com/san-kum/molview/internal/viz"
)

const background = "#0a0a0a"

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// CanvasToSVG draws every lit braille dot as a circle, scale units apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}
	w, h := canvas.PixelSize()

	var sb strings.Builder
	header(&sb, float64(w)*scale, float64(h)*scale)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", fill)

	dotRadius := scale * 0.4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if canvas.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius)
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG draws the portrait as one polyline, y up.
func TrajectoryToSVG(p *analysis.Portrait, width, height int, strokeColor string) string {
	if p == nil || len(p.Points) < 2 {
		return ""
	}
	minX, maxX, minY, maxY := p.Bounds()
	rangeX, rangeY := maxX-minX, maxY-minY

	var sb strings.Builder
	header(&sb, float64(width), float64(height))
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)

	for i, pt := range p.Points {
		x := (pt.X - minX) / rangeX * float64(width)
		y := float64(height) - (pt.Y-minY)/rangeY*float64(height)
		if i > 0 {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
	}

	sb.WriteString("\"/>\n")
	if p.XLabel != "" || p.YLabel != "" {
		fmt.Fprintf(&sb, "<text x=\"8\" y=\"%d\" fill=\"#888899\" font-family=\"monospace\" font-size=\"12\">%s vs %s</text>\n",
			height-8, p.YLabel, p.XLabel)
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// Write writes svg to w, failing on empty documents.
func Write(w io.Writer, svg string) error {
	if svg == "" {
		return fmt.Errorf("export: nothing to draw")
	}
	_, err := io.WriteString(w, svg)
	return err
}
