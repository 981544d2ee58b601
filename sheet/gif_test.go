package sheet

import (
	"bytes"
	"image/color"
	"image/gif"
	"testing"

	"badc0de.net/pkg/go-nara/ntesting"
)

func TestTurnaround(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, dir, "hero", "south", 8, 10, color.NRGBA{R: 0xff, A: 0xff})
	writeSprite(t, dir, "hero", "north", 8, 10, color.NRGBA{B: 0xff, A: 0xff})

	c := Compositor{SpritesDir: dir}
	frames, err := c.Frames("hero")
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}
	g := Turnaround(frames)

	ntesting.AssertEqualInt(t, "frame count", len(g.Image), len(Directions))
	ntesting.AssertEqualInt(t, "delay count", len(g.Delay), len(Directions))
	for i, d := range g.Delay {
		if d != turnaroundDelay {
			t.Errorf("frame %d delay = %d; want %d", i, d, turnaroundDelay)
		}
	}
	for i, disposal := range g.Disposal {
		if disposal != gif.DisposalBackground {
			t.Errorf("frame %d disposal = %d; want background", i, disposal)
		}
	}
	for i, p := range g.Image {
		if got := p.Bounds(); got.Dx() != FrameWidth || got.Dy() != FrameHeight {
			t.Errorf("frame %d is %dx%d; want %dx%d", i, got.Dx(), got.Dy(), FrameWidth, FrameHeight)
		}
		if len(p.Palette) == 0 || p.Palette[0] != color.Transparent {
			t.Errorf("frame %d palette slot 0 is not transparent", i)
		}
	}

	// The assembled animation must survive GIF encoding.
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	back, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	ntesting.AssertEqualInt(t, "decoded frame count", len(back.Image), len(Directions))
}
