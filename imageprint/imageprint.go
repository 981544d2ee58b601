// Package imageprint prints images on terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees. It exists so the
// sprite tools can show their sheets without a browser round trip.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"

	"github.com/gookit/color"
	"github.com/nfnt/resize"
)

type dumper interface {
	Printf(s string, arg ...interface{})
}
type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Printf(s, arg...)
}

var fmtDumper fmtDumperT

// shade prints one pixel as a two-character cell.
func shade(col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}

	var d dumper
	if noColor {
		d = &fmtDumper
	} else if escapesTrueColor {
		fmt.Printf("\x1b[48;2;%d;%d;%dm", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8))
		d = &fmtDumper
	} else {
		d = color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true)
	}
	if blanks {
		d.Printf("  ")
	} else {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			d.Printf("..")
		case a < 64:
			d.Printf("--")
		case a < 128:
			d.Printf("==")
		default:
			d.Printf("##")
		}
	}

	if escapesTrueColor {
		fmt.Printf("\x1b[0m")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(i image.Image, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(i.At(x, y), false, blanks, false)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// Print24bit draws an image using 24bit color escape sequences by changing
// background.
func Print24bit(i image.Image, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(i.At(x, y), true, blanks, false)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// PrintNoColor draws an image without using color escape sequences. Only
// makes sense with blanks=false.
func PrintNoColor(i image.Image, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(i.At(x, y), true, blanks, true)
		}
		fmt.Printf("\n")
	}
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(i image.Image, fn string) {
	if !isTermItermWez() {
		return
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	bEnc.Close()
	fmt.Printf("\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n",
		name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}

// Auto draws the image with the richest protocol the terminal supports:
// Kitty or iTerm graphics, sixel where available, colored cells otherwise.
// Oversized images are downscaled to the terminal window first.
func Auto(i image.Image) {
	if ts, err := termSize(); err == nil && ts.xpix > 0 && ts.ypix > 0 {
		if b := i.Bounds(); b.Dx() > ts.xpix || b.Dy() > ts.ypix {
			i = resize.Thumbnail(uint(ts.xpix), uint(ts.ypix), i, resize.Lanczos3)
		}
	}
	if printGraphics(i) {
		return
	}
	Print24bit(FitTerminal(i), true)
}

// terminalSize is the terminal window size in character cells and, where
// the terminal reports it, in pixels.
type terminalSize struct {
	rows, cols int
	xpix, ypix int
}

// FitTerminal downscales an image so cell-based printing fits the
// terminal. Every pixel prints as a two-character cell, so the width
// budget is half the column count. Unknown sizes leave the image alone.
func FitTerminal(i image.Image) image.Image {
	ts, err := termSize()
	if err != nil || ts.cols <= 0 || ts.rows <= 0 {
		return i
	}
	return resize.Thumbnail(uint(ts.cols/2), uint(ts.rows), i, resize.Lanczos3)
}
