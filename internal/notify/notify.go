// Package notify tells the desktop that a new wallpaper was applied.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsNotify = "org.freedesktop.Notifications.Notify"

	appName        = "wallfetch"
	expireTimeout  = 5 * time.Second
	notifyDeadline = 2 * time.Second
)

// DesktopNotifier sends freedesktop notifications over the session bus
type DesktopNotifier struct {
	logger  *zap.Logger
	connect func() (DBusClient, error)
}

// NewDesktopNotifier creates a notifier connecting lazily on each Notify
func NewDesktopNotifier(logger *zap.Logger) *DesktopNotifier {
	return &DesktopNotifier{
		logger: logger,
		connect: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// Notify shows summary/body with the wallpaper as icon.
// A notification daemon that does not answer within a short deadline is an error.
func (n *DesktopNotifier) Notify(ctx context.Context, summary, body, imagePath string) (err error) {
	conn, err := n.connect()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}
	defer func() {
		err = multierr.Append(err, conn.Close())
	}()

	ctx, cancel := context.WithTimeout(ctx, notifyDeadline)
	defer cancel()

	hints := map[string]dbus.Variant{
		"image-path": dbus.MakeVariant(imagePath),
		"urgency":    dbus.MakeVariant(byte(0)),
	}

	reply, err := conn.Call(ctx, notificationsDest, notificationsPath, notificationsNotify,
		appName,
		uint32(0),
		imagePath,
		summary,
		body,
		[]string{},
		hints,
		int32(expireTimeout/time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	if len(reply) > 0 {
		if id, ok := reply[0].(uint32); ok {
			n.logger.Debug("Notification sent", zap.Uint32("id", id))
		}
	}
	return nil
}
