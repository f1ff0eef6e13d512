package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain title", "Abbey Road (Remastered)", "Abbey Road (Remastered)"},
		{"accents kept", "Beyoncé – Lemonade", "Beyoncé – Lemonade"},
		{"newline in description", "Line one\nLine two", "Line one Line two"},
		{"tab", "Vol.\t2", "Vol. 2"},
		{"no-break space", "Vol.\u00a02", "Vol. 2"},
		{"escape sequence stripped of ESC", "\x1b[31mRed", "[31mRed"},
		{"C1 control", "Track\u00851", "Track1"},
		{"invalid byte", "Caf\xe9 Tacuba", "Caf Tacuba"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Jack Johnson", 20, "Jack Johnson"},
		{"exact", "Jack Johnson", 12, "Jack Johnson"},
		{"cut", "Jack Johnson", 8, "Jack Jo…"},
		{"one column", "Jack Johnson", 1, "…"},
		{"zero width", "Jack Johnson", 0, ""},
		{"wide runes are not split", "東京事変", 6, "東京…"},
		{"cleans before measuring", "A\nB", 3, "A B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.in, tt.width); got != tt.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestFit_ExactWidth(t *testing.T) {
	for _, in := range []string{"", "Pages", "The Dark Side of the Moon", "東京事変 - 教育"} {
		for _, w := range []int{1, 5, 12, 30} {
			if got := runewidth.StringWidth(Fit(in, w)); got != w {
				t.Errorf("Fit(%q, %d) is %d columns wide", in, w, got)
			}
		}
	}
}

func TestSpread(t *testing.T) {
	if got := Spread("Results", "1/3", 14); got != "Results    1/3" {
		t.Errorf("Spread() = %q", got)
	}
	if got := Spread("Results", "1/3", 4); got != "Results 1/3" {
		t.Errorf("Spread() on a narrow line = %q, want one space gap", got)
	}
}

func TestRuleAndBlank(t *testing.T) {
	if got := Rule(3); got != "───" {
		t.Errorf("Rule(3) = %q", got)
	}
	if got := Blank(2); got != "  " {
		t.Errorf("Blank(2) = %q", got)
	}
	if Rule(-1) != "" || Blank(-1) != "" {
		t.Error("negative widths should give empty lines")
	}
}
