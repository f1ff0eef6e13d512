package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	service = "org.freedesktop.Notifications"
	path    = "/org/freedesktop/Notifications"
	method  = service + ".Notify"

	appName = "StoreSearch"
	icon    = "dialog-error"

	urgencyNormal  byte  = 1
	defaultTimeout int32 = -1
)

// caller is the part of dbus.BusObject used to send alerts.
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

// desktop sends alerts to the freedesktop notification service. A new
// alert replaces the one still on screen, so a run of failed searches
// leaves a single bubble.
type desktop struct {
	bus caller

	mu    sync.Mutex
	shown uint32
}

// Connect reaches the notification service on the session bus. When the
// bus is unavailable it returns Off along with the error.
func Connect() (Alerter, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Off{}, fmt.Errorf("session bus: %w", err)
	}
	return &desktop{bus: conn.Object(service, dbus.ObjectPath(path))}, nil
}

// Alert implements Alerter.
func (d *desktop) Alert(a Alert) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgencyNormal),
		"desktop-entry": dbus.MakeVariant("storesearch"),
	}
	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := d.bus.Call(method, 0,
		appName, d.shown, icon, a.Title, a.Body, []string{}, hints, defaultTimeout)
	if call.Err != nil {
		return call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notification id: %w", err)
	}
	d.shown = id
	return nil
}
