package artwork

import (
	"os"
	"strings"
)

// OverrideEnv forces the thumbnail mode: "kitty" or "none". Any other
// value leaves the choice to the terminal.
const OverrideEnv = "STORESEARCH_IMAGE_PROTOCOL"

// kittyTerminals recognise terminals speaking the Kitty graphics protocol
// from the variables they export.
var kittyTerminals = []func(env func(string) string) bool{
	func(env func(string) string) bool { return env("KITTY_WINDOW_ID") != "" },
	func(env func(string) string) bool { return strings.Contains(env("TERM"), "kitty") },
	func(env func(string) string) bool { return env("TERM_PROGRAM") == "WezTerm" },
	func(env func(string) string) bool { return env("GHOSTTY_RESOURCES_DIR") != "" },
	func(env func(string) string) bool {
		v := env("KONSOLE_VERSION")
		return len(v) >= 4 && v[:4] >= "2204"
	},
}

// Detect picks the image protocol of the running terminal. Nil means
// thumbnails are drawn with half blocks.
func Detect() ImageProtocol {
	if kittyCapable(os.Getenv) {
		return NewKitty()
	}
	return nil
}

func kittyCapable(env func(string) string) bool {
	switch env(OverrideEnv) {
	case "kitty":
		return true
	case "none":
		return false
	}
	// Contour inherits the variables of the terminal it was started from
	// but cannot show Kitty images.
	if env("CONTOUR_PROFILE") != "" {
		return false
	}
	for _, match := range kittyTerminals {
		if match(env) {
			return true
		}
	}
	return false
}
