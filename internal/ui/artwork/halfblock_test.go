package artwork

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHalfBlocks_Size(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	out := HalfBlocks(img, 6, 3)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
}

func TestHalfBlocks_Colors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})

	out := HalfBlocks(img, 1, 1)
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("missing red foreground in %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;255") {
		t.Errorf("missing blue background in %q", out)
	}
}

func TestHalfBlocks_Empty(t *testing.T) {
	if got := HalfBlocks(nil, 4, 4); got != "" {
		t.Errorf("HalfBlocks(nil) = %q", got)
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := HalfBlocks(img, 0, 4); got != "" {
		t.Errorf("HalfBlocks(w=0) = %q", got)
	}
}
