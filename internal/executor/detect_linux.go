//go:build linux
// +build linux

package executor

import (
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// WallpaperCommand represents a known wallpaper setter
type WallpaperCommand struct {
	Name     string
	Binary   string
	Template string // set_command value, {path} is the image
}

var (
	// Ordered list of wallpaper commands to try (highest priority first)
	wallpaperCommands = []WallpaperCommand{
		// Hyprland - swww (recommended)
		{Name: "swww", Binary: "swww", Template: "swww img {path}"},
		// Hyprland - hyprpaper
		{Name: "hyprpaper", Binary: "hyprctl", Template: "hyprctl hyprpaper wallpaper ,{path}"},
		// swaybg (Sway/Wayland)
		{Name: "swaybg", Binary: "swaybg", Template: "swaybg -i {path} -m fill"},
		// GNOME (dark theme), requires a file:// URI
		{Name: "gnome", Binary: "gsettings", Template: "gsettings set org.gnome.desktop.background picture-uri-dark file://{path}"},
		// Generic X11 - feh
		{Name: "feh", Binary: "feh", Template: "feh --bg-fill {path}"},
		// Generic X11 - nitrogen
		{Name: "nitrogen", Binary: "nitrogen", Template: "nitrogen --set-zoom-fill {path}"},
	}

	lookPath = exec.LookPath
)

// detectCommand analyzes the environment to choose the best wallpaper command
func detectCommand(logger *zap.Logger) WallpaperCommand {
	desktop := os.Getenv("XDG_CURRENT_DESKTOP")
	session := os.Getenv("XDG_SESSION_TYPE")
	wayland := os.Getenv("WAYLAND_DISPLAY")
	hyprland := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")

	logger.Debug("Detecting wallpaper command",
		zap.String("desktop", desktop),
		zap.String("session", session),
		zap.String("wayland", wayland),
		zap.String("hyprland", hyprland))

	if hyprland != "" {
		if cmd, ok := firstAvailable("swww", "hyprpaper"); ok {
			return cmd
		}
	}

	if strings.Contains(strings.ToLower(desktop), "gnome") {
		if cmd, ok := firstAvailable("gnome"); ok {
			return cmd
		}
	}

	if wayland != "" || session == "wayland" {
		if cmd, ok := firstAvailable("swww", "swaybg"); ok {
			return cmd
		}
	}

	// Fallback: try all commands in order
	for _, cmd := range wallpaperCommands {
		if commandExists(cmd.Binary) {
			logger.Debug("Using fallback wallpaper command", zap.String("name", cmd.Name))
			return cmd
		}
	}

	return WallpaperCommand{}
}

func firstAvailable(names ...string) (WallpaperCommand, bool) {
	for _, cmd := range wallpaperCommands {
		for _, n := range names {
			if cmd.Name == n && commandExists(cmd.Binary) {
				return cmd, true
			}
		}
	}
	return WallpaperCommand{}, false
}

// commandExists checks if a binary exists in PATH
func commandExists(binary string) bool {
	_, err := lookPath(binary)
	return err == nil
}
