package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/genricoloni/wallfetch/internal/notify/mocks"
	"github.com/godbus/dbus/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDesktopNotifier_Notify(t *testing.T) {
	imagePath := "/home/me/.cache/wallfetch/ab/abcd.jpg"

	tests := []struct {
		name          string
		connectErr    error
		setupMock     func(*mocks.MockDBusClient)
		expectedError string
	}{
		{
			name: "Success - Notification Sent",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().Call(gomock.Any(), notificationsDest, notificationsPath, notificationsNotify,
					appName, uint32(0), imagePath, "Wallpaper applied", "from wallhaven",
					[]string{}, gomock.Any(), int32(5000)).
					DoAndReturn(func(_ context.Context, _, _, _ string, args ...any) ([]any, error) {
						hints, ok := args[6].(map[string]dbus.Variant)
						if !ok {
							t.Fatalf("hints have type %T", args[6])
						}
						if got := hints["image-path"].Value(); got != imagePath {
							t.Errorf("image-path hint: expected %q, got %v", imagePath, got)
						}
						return []any{uint32(42)}, nil
					})
				m.EXPECT().Close().Return(nil)
			},
		},
		{
			name: "DBus Error - Call Fails",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("org.freedesktop.DBus.Error.ServiceUnknown"))
				m.EXPECT().Close().Return(nil)
			},
			expectedError: "failed to send notification",
		},
		{
			name: "Close Error Is Reported",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]any{uint32(1)}, nil)
				m.EXPECT().Close().Return(errors.New("already closed"))
			},
			expectedError: "already closed",
		},
		{
			name:          "Connection Fails",
			connectErr:    errors.New("no session bus"),
			expectedError: "session bus connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockDBusClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(mockClient)
			}

			n := NewDesktopNotifier(zap.NewNop())
			n.connect = func() (DBusClient, error) {
				if tt.connectErr != nil {
					return nil, tt.connectErr
				}
				return mockClient, nil
			}

			err := n.Notify(context.Background(), "Wallpaper applied", "from wallhaven", imagePath)
			if tt.expectedError == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
				t.Errorf("expected error containing %q, got %v", tt.expectedError, err)
			}
		})
	}
}
