//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package imageprint

import (
	"golang.org/x/crypto/ssh/terminal"
)

func termSize() (terminalSize, error) {
	w, h, err := terminal.GetSize(0)
	if err != nil {
		return terminalSize{}, err
	}
	return terminalSize{rows: h, cols: w}, nil
}
