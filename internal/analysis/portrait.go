package analysis

import (
	"strings"
)

type Point struct{ X, Y float64 }

// Portrait is one sample column plotted against another, e.g. h1_x against
// h1_z for the path of an atom seen from above.
type Portrait struct {
	XLabel, YLabel string
	Points         []Point
}

// NewPortrait pairs xs and ys up to the shorter length.
func NewPortrait(xLabel string, xs []float64, yLabel string, ys []float64) *Portrait {
	n := min(len(xs), len(ys))
	p := &Portrait{XLabel: xLabel, YLabel: yLabel, Points: make([]Point, n)}
	for i := 0; i < n; i++ {
		p.Points[i] = Point{xs[i], ys[i]}
	}
	return p
}

// Bounds returns the extent of the points padded by 10% on each side.
func (p *Portrait) Bounds() (minX, maxX, minY, maxY float64) {
	if len(p.Points) == 0 {
		return 0, 1, 0, 1
	}
	minX, maxX = p.Points[0].X, p.Points[0].X
	minY, maxY = p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return minX - rangeX*0.1, maxX + rangeX*0.1, minY - rangeY*0.1, maxY + rangeY*0.1
}

// ASCII renders the portrait on a width x height character grid, with axes
// where they cross the visible area.
func (p *Portrait) ASCII(width, height int) string {
	if len(p.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	minX, maxX, minY, maxY := p.Bounds()
	rangeX, rangeY := maxX-minX, maxY-minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
