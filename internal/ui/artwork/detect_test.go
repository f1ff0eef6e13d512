package artwork

import "testing"

func TestKittyCapable(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, false},
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "1"}, true},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, true},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, true},
		{"ghostty", map[string]string{"GHOSTTY_RESOURCES_DIR": "/usr/share/ghostty"}, true},
		{"recent konsole", map[string]string{"KONSOLE_VERSION": "230805"}, true},
		{"old konsole", map[string]string{"KONSOLE_VERSION": "211200"}, false},
		{"contour started from ghostty", map[string]string{"CONTOUR_PROFILE": "main", "GHOSTTY_RESOURCES_DIR": "/x"}, false},
		{"forced off", map[string]string{OverrideEnv: "none", "KITTY_WINDOW_ID": "1"}, false},
		{"forced on", map[string]string{OverrideEnv: "kitty", "TERM": "xterm"}, true},
		{"unknown override", map[string]string{OverrideEnv: "sixel", "KITTY_WINDOW_ID": "1"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(k string) string { return tt.env[k] }
			if got := kittyCapable(env); got != tt.want {
				t.Errorf("kittyCapable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	t.Setenv(OverrideEnv, "none")
	if Detect() != nil {
		t.Error("Detect() should honour the none override")
	}
	t.Setenv(OverrideEnv, "kitty")
	if _, ok := Detect().(*Kitty); !ok {
		t.Error("Detect() should honour the kitty override")
	}
}
