//go:build !go1.13 || windows
// +build !go1.13 windows

package imageprint

import (
	"fmt"
	"image"
)

func isTermItermWez() bool {
	return false
}

func PrintRasTerm(i image.Image) {
	fmt.Printf("rasterm not supported below Go 1.13 or on windows\n")
}

func printGraphics(i image.Image) bool {
	return false
}
