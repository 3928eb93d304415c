package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Options are the global flags shared by every command
type Options struct {
	ConfigFile string
	Verbose    bool
	// Simple keeps stdout scriptable: only the resulting path is printed
	Simple bool
}

var globalOpts Options

var rootCmd = &cobra.Command{
	Use:   "wallfetch",
	Short: "Fetch wallpapers from configurable image suppliers",
	Long: "Fetch a wallpaper from one of the configured suppliers, optionally narrowed\n" +
		"by a category, cache it and assign it with the configured set_command.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigFile, "config", "", "config file (default: ~/.config/wallfetch/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		newPrinter(os.Stdout, os.Stderr, globalOpts.Simple).Error("%v", err)
		cancel()
		os.Exit(1)
	}
}
