//go:build unix

package artwork

import (
	"os"

	"golang.org/x/sys/unix"
)

// cellPixels divides the window's pixel size by its cell count. Terminals
// that leave the pixel fields at zero report !ok.
func cellPixels() (w, h int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return 0, 0, false
	}
	return int(ws.Xpixel / ws.Col), int(ws.Ypixel / ws.Row), true
}
