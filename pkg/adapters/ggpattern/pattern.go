// Package ggpattern draws animated test-pattern frames with the gg library.
package ggpattern

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Pattern draws frame i of an n-frame loop: a ball circling the centre,
// a progress bar along the bottom edge and the frame number.
type Pattern struct {
	Width      int
	Height     int
	Background color.Color
	Foreground color.Color
}

// New creates a pattern of the given size.
func New(width, height int, bg, fg color.Color) *Pattern {
	return &Pattern{
		Width:      width,
		Height:     height,
		Background: bg,
		Foreground: fg,
	}
}

// Frame renders frame i of n.
func (p *Pattern) Frame(i, n int) image.Image {
	if n <= 0 {
		n = 1
	}
	w, h := float64(p.Width), float64(p.Height)
	progress := float64(i%n) / float64(n)

	dc := gg.NewContext(p.Width, p.Height)
	dc.SetColor(p.Background)
	dc.Clear()

	// orbit guide
	cx, cy := w/2, h/2
	radius := math.Min(w, h) / 3
	dc.SetColor(p.Foreground)
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	angle := 2*math.Pi*progress - math.Pi/2
	dc.DrawCircle(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle), math.Max(radius/6, 2))
	dc.Fill()

	barHeight := math.Max(h/40, 2)
	dc.DrawRectangle(0, h-barHeight, w*(float64(i%n)+1)/float64(n), barHeight)
	dc.Fill()

	dc.DrawStringAnchored(fmt.Sprintf("%d / %d", i%n+1, n), cx, cy, 0.5, 0.5)

	return dc.Image()
}

// Frames renders all n frames.
func (p *Pattern) Frames(n int) []image.Image {
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = p.Frame(i, n)
	}
	return frames
}
