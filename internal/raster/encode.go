package raster

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

// EncodePNG writes the current frame as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.frame); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// GIFRecorder collects rendered frames for an animated GIF.
type GIFRecorder struct {
	// Delay between frames in 100ths of a second.
	Delay int

	frames []*image.Paletted
	delays []int
}

func NewGIFRecorder(delay int) *GIFRecorder {
	if delay <= 0 {
		delay = 2
	}
	return &GIFRecorder{Delay: delay}
}

// Add quantises img to the Plan9 palette and appends it.
func (g *GIFRecorder) Add(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.Draw(p, b, img, b.Min, draw.Src)
	g.frames = append(g.frames, p)
	g.delays = append(g.delays, g.Delay)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

// Encode writes all frames as a looping GIF.
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}
	anim := &gif.GIF{
		Image:     g.frames,
		Delay:     g.delays,
		LoopCount: 0,
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
