package notify

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/wallfetch/internal/notify DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Call invokes method on the object at path owned by dest
	// dest: The bus name (e.g., "org.freedesktop.Notifications")
	// path: The object path (e.g., "/org/freedesktop/Notifications")
	// method: The fully qualified method (e.g., "org.freedesktop.Notifications.Notify")
	Call(ctx context.Context, dest, path, method string, args ...any) ([]any, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient opens a private connection to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Call invokes a method and returns the reply body
func (c *StdDBusClient) Call(ctx context.Context, dest, path, method string, args ...any) ([]any, error) {
	obj := c.conn.Object(dest, dbus.ObjectPath(path))
	call := obj.CallWithContext(ctx, method, 0, args...)
	return call.Body, call.Err
}
