package main

import (
	"github.com/genricoloni/wallfetch/internal/config"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the image cache",
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cfg *config.AppConfig
		if _, err := newApp(globalOpts, &cfg); err != nil {
			return err
		}
		newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), true).Print("%s", cfg.GetCacheDir())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheDirCmd)
	rootCmd.AddCommand(cacheCmd)
}
