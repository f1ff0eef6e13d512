// Package errmsg words failures for the status line, alerts and the JSON
// error bodies of the server.
package errmsg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
)

// Op is what the user was trying to do, worded to follow "Could not".
type Op string

const (
	OpSearch       Op = "search the iTunes Store"
	OpArtworkLoad  Op = "load artwork"
	OpOpenStoreURL Op = "open store page"

	OpHistoryLoad  Op = "load search history"
	OpHistorySave  Op = "save search history"
	OpHistoryClear Op = "clear search history"

	OpCacheOpen  Op = "open response cache"
	OpInitialize Op = "start storesearch"
)

// Format words the failure of op. A nil err gives "".
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Could not %s: %s", op, reason(err))
}

// FormatWith also names what op was working on, such as a URL.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Could not %s %q: %s", op, subject, reason(err))
}

// reason replaces the errors users meet most with a plain phrase and
// leaves the rest as reported.
func reason(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return "timed out"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	}
	return err.Error()
}
