package sheet

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"github.com/ericpauley/go-quantize/quantize"
)

// Delay between turnaround frames, in 100ths of a second.
const turnaroundDelay = 50

// Turnaround builds an animated GIF cycling through the direction frames
// in row order, a quick way to eyeball a sprite set without opening the
// sheets. Each frame gets its own median-cut palette with a transparency
// slot at index 0; background disposal keeps small frames from smearing
// over large ones.
func Turnaround(frames []*image.RGBA) *gif.GIF {
	g := &gif.GIF{}
	q := quantize.MedianCutQuantizer{}
	for _, frame := range frames {
		if frame == nil {
			continue
		}
		pal := q.Quantize(make(color.Palette, 0, 255), frame)
		pal = append(color.Palette{color.Transparent}, pal...)

		p := image.NewPaletted(frame.Bounds(), pal)
		draw.Draw(p, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, turnaroundDelay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0
	return g
}
