// Package sheet composites per-direction character sprites into the
// fixed-layout sheets the canvas renderer consumes.
//
// A sheet is a frame grid: one row per facing direction, one column per
// animation tick. The renderer advances columns while a character moves;
// since the source sprites are static, every column of a row repeats the
// same frame. Missing source sprites degrade to transparent frames so a
// partial sprite set still yields usable sheets.
package sheet

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // sources are nominally PNG; accept whatever decodes
	_ "image/jpeg" // ditto
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Direction names a character facing. Its index in Directions is the sheet
// row it renders to.
type Direction string

// Directions in sheet row order: south is row 0, south-east is row 7.
var Directions = []Direction{
	"south", "south-west", "west", "north-west",
	"north", "north-east", "east", "south-east",
}

// Frame and sheet geometry, shared by the walk and idle sheets.
const (
	FrameWidth  = 32
	FrameHeight = 40
	Columns     = 8
	Rows        = 8 // one per direction

	SheetWidth  = FrameWidth * Columns
	SheetHeight = FrameHeight * Rows
)

// Animation is the kind of sheet being produced. Both kinds currently
// share geometry and source frames; the kind only selects the output name.
type Animation string

const (
	Walk Animation = "walk"
	Idle Animation = "idle"
)

// Animations lists the sheets produced for one character prefix.
var Animations = []Animation{Walk, Idle}

// Compositor loads per-direction sprites from SpritesDir and tiles them
// into sheets. The zero value reads from the current directory.
type Compositor struct {
	SpritesDir string
}

// SpritePath returns the conventional path of one direction's source
// sprite, {prefix}_{direction}.png under SpritesDir.
func (c Compositor) SpritePath(prefix string, d Direction) string {
	return filepath.Join(c.SpritesDir, fmt.Sprintf("%s_%s.png", prefix, d))
}

// Frame returns the frame for one direction: the source sprite scaled to
// fit, centered on a transparent canvas. A missing or undecodable source
// yields a fully transparent frame and a warning; only filesystem errors
// other than absence are reported to the caller.
func (c Compositor) Frame(prefix string, d Direction) (*image.RGBA, error) {
	path := c.SpritePath(prefix, d)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		glog.Warningf("missing %s, using empty frame", path)
		return emptyFrame(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening sprite for %s", d)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		glog.Warningf("cannot decode %s, using empty frame: %v", path, err)
		return emptyFrame(), nil
	}
	glog.V(1).Infof("loaded %s", path)
	return FitFrame(src), nil
}

// Frames loads all direction frames, in sheet row order.
func (c Compositor) Frames(prefix string) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, len(Directions))
	for row, d := range Directions {
		frame, err := c.Frame(prefix, d)
		if err != nil {
			return nil, err
		}
		frames[row] = frame
	}
	return frames, nil
}

// FitFrame scales src down or up to fit the frame box, preserving aspect
// ratio, and centers it on a transparent canvas. Fractional target sizes
// truncate; degenerate sources come out as a single pixel column or row
// rather than vanishing.
func FitFrame(src image.Image) *image.RGBA {
	frame := emptyFrame()
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return frame
	}
	scale := math.Min(
		float64(FrameWidth)/float64(b.Dx()),
		float64(FrameHeight)/float64(b.Dy()))
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	scaled := resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	off := image.Pt((FrameWidth-w)/2, (FrameHeight-h)/2)
	draw.Draw(frame,
		image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))},
		scaled, scaled.Bounds().Min, draw.Over)
	return frame
}

func emptyFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
}

// Sheet tiles direction frames into one sprite sheet: each row repeats its
// frame across every column. Nil frames leave their row transparent.
func Sheet(frames []*image.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	for row, frame := range frames {
		if frame == nil || row >= Rows {
			continue
		}
		for col := range iter.N(Columns) {
			dst := image.Rect(
				col*FrameWidth, row*FrameHeight,
				(col+1)*FrameWidth, (row+1)*FrameHeight)
			draw.Draw(img, dst, frame, frame.Bounds().Min, draw.Src)
		}
	}
	return img
}

// WriteSheet encodes img into dir as {prefix}_{anim}.png and returns the
// path written.
func WriteSheet(dir, prefix string, anim Animation, img image.Image) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, anim))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating sheet file")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", errors.Wrap(err, "encoding sheet png")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "closing sheet file")
	}
	return path, nil
}
