//go:build !linux
// +build !linux

package executor

import "go.uber.org/zap"

// WallpaperCommand represents a known wallpaper setter
type WallpaperCommand struct {
	Name     string
	Binary   string
	Template string
}

// detectCommand has no table outside Linux yet; set_command must be configured
func detectCommand(logger *zap.Logger) WallpaperCommand {
	logger.Debug("Wallpaper command detection is not implemented for this platform")
	return WallpaperCommand{}
}
