// Package notify raises a desktop notification when a store search fails,
// so the failure is seen while the terminal is in the background.
package notify

// Alert is the notification for a failed search.
type Alert struct {
	Title string
	Body  string
}

// Alerter shows failure alerts on the desktop.
type Alerter interface {
	Alert(a Alert) error
}

// Off drops every alert. It stands in when no notification service is
// reachable.
type Off struct{}

// Alert implements Alerter.
func (Off) Alert(Alert) error { return nil }
