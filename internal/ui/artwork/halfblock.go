package artwork

import (
	"image"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const upperHalfBlock = "▀"

// HalfBlocks renders img as truecolor text of width×height cells, two
// pixels per cell: the upper one as foreground, the lower one as
// background. It is the fallback for terminals without image support.
func HalfBlocks(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}

	scaled := resize.Resize(uint(width), uint(height*2), img, resize.Bilinear) //nolint:gosec // dimensions are small
	b := scaled.Bounds()

	lines := make([]string, height)
	var sb strings.Builder
	for row := range height {
		sb.Reset()
		for col := range width {
			top := pixel(scaled, b.Min.X+col, b.Min.Y+row*2)
			bottom := pixel(scaled, b.Min.X+col, b.Min.Y+row*2+1)
			writeColor(&sb, "38", top)
			writeColor(&sb, "48", bottom)
			sb.WriteString(upperHalfBlock)
		}
		sb.WriteString("\x1b[0m")
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// pixel returns the color at (x, y), transparent pixels blended on black.
func pixel(img image.Image, x, y int) colorful.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return colorful.Color{}
	}
	return c
}

func writeColor(sb *strings.Builder, layer string, c colorful.Color) {
	r, g, b := c.Clamped().RGB255()
	sb.WriteString("\x1b[")
	sb.WriteString(layer)
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte('m')
}
