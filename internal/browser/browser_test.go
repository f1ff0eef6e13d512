package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	const url = "https://apps.apple.com/app/id1"

	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", url}},
		{"darwin", []string{"open", url}},
		{"windows", []string{"cmd", "/c", "start", url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := command(tt.goos, url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestCommand_Unsupported(t *testing.T) {
	_, err := command("plan9", "https://example.com")
	assert.ErrorContains(t, err, "unsupported platform")
}
