//go:build !linux

package notify

// Connect returns Off: desktop alerts need the freedesktop service.
func Connect() (Alerter, error) {
	return Off{}, nil
}
