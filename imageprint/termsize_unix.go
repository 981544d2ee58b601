//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package imageprint

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

// termSize reads the controlling terminal's size. The ioctl also reports
// pixel dimensions on terminals that fill them in; the terminal package
// probe on stdin is the fallback and only knows cells.
func termSize() (terminalSize, error) {
	if f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666); err == nil {
		defer f.Close()
		if sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return terminalSize{
				rows: int(sz.Row), cols: int(sz.Col),
				xpix: int(sz.Xpixel), ypix: int(sz.Ypixel),
			}, nil
		}
	}
	w, h, err := terminal.GetSize(0)
	if err != nil {
		return terminalSize{}, err
	}
	return terminalSize{rows: h, cols: w}, nil
}
