//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

func isTermItermWez() bool {
	return rasterm.IsTermItermWez()
}

// PrintRasTerm draws an image using the RasTerm library.
//
// This should enable drawing in Kitty terminal, iTerm2/WezTerm, and
// sixel-capable terminals such as xterm in vt340 mode.
func PrintRasTerm(i image.Image) {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		// Sixel wants a paletted image; 64 colors is plenty for sprites.
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.Point{})

		rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
		fmt.Printf("\n")
		return
	}
}

// printGraphics prints via a pixel-graphics protocol and reports whether
// one was available.
func printGraphics(i image.Image) bool {
	if rasterm.IsTermKitty() || rasterm.IsTermItermWez() {
		PrintRasTerm(i)
		return true
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		PrintRasTerm(i)
		return true
	}
	return false
}
