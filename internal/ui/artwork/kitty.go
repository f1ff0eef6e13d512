package artwork

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

const (
	apcStart = "\x1b_G"
	apcEnd   = "\x1b\\"

	// chunkSize is the largest base64 payload one graphics command may carry.
	chunkSize = 4096

	fallbackCellW = 8
	fallbackCellH = 16
)

// Kitty speaks the Kitty graphics protocol. Every command is sent with q=2
// so the terminal never answers on stdin.
type Kitty struct {
	cellW, cellH int
}

// NewKitty reads the cell size of the controlling terminal once.
func NewKitty() *Kitty {
	w, h, ok := cellPixels()
	if !ok {
		w, h = fallbackCellW, fallbackCellH
	}
	return &Kitty{cellW: w, cellH: h}
}

// Prepare transmits img as PNG without showing it (a=t), split in chunks
// where every chunk but the last carries m=1.
func (k *Kitty) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	payload := base64.StdEncoding.EncodeToString(buf.Bytes())

	var sb strings.Builder
	for start := 0; start < len(payload); start += chunkSize {
		end := min(start+chunkSize, len(payload))
		more := 0
		if end < len(payload) {
			more = 1
		}
		keys := fmt.Sprintf("m=%d", more)
		if start == 0 {
			keys = fmt.Sprintf("a=t,f=100,i=%d,q=2,", id) + keys
		}
		sb.WriteString(apcStart + keys + ";" + payload[start:end] + apcEnd)
	}
	return sb.String(), nil
}

// Place saves the cursor, draws the placement there without moving the
// cursor (C=1) and restores it.
func (k *Kitty) Place(id, placementID uint32, row, col, width, height int) string {
	return fmt.Sprintf("\x1b[s\x1b[%d;%dH%sa=p,i=%d,p=%d,c=%d,r=%d,C=1,q=2;%s\x1b[u",
		row, col, apcStart, id, placementID, width, height, apcEnd)
}

// Unplace implements ImageProtocol.
func (k *Kitty) Unplace(id, placementID uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,p=%d,q=2;%s", apcStart, id, placementID, apcEnd)
}

// Delete implements ImageProtocol. d=I also frees the image data.
func (k *Kitty) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", apcStart, id, apcEnd)
}

// TargetPixelSize implements ImageProtocol.
func (k *Kitty) TargetPixelSize(widthCells, heightCells int) (int, int) {
	cw, ch := k.cellW, k.cellH
	if cw <= 0 || ch <= 0 {
		cw, ch = fallbackCellW, fallbackCellH
	}
	return widthCells * cw, heightCells * ch
}
