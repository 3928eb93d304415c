package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/genricoloni/wallfetch/internal/config"
	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:       "list <categories|suppliers>",
	Short:     "List configured entries",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"categories", "suppliers"},
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var cfg *config.AppConfig
	if _, err := newApp(globalOpts, &cfg); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
	bold := color.New(color.Bold).SprintFunc()

	switch args[0] {
	case "categories":
		if len(cfg.GetCategories()) == 0 {
			p.Warning("(no categories)")
		}
		for _, c := range cfg.GetCategories() {
			p.Print("%s\t%s%s", bold(c.Name), strings.Join(c.Tags, ", "), ratioSuffix(c.AspectRatios))
		}
	case "suppliers":
		if len(cfg.GetSuppliers()) == 0 {
			p.Warning("(no suppliers)")
		}
		for _, s := range cfg.GetSuppliers() {
			p.Print("%s\t%s", bold(s.Name), s.File)
		}
	}
	return nil
}

func ratioSuffix(ratios []domain.AspectRatio) string {
	if len(ratios) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ratios))
	for _, r := range ratios {
		parts = append(parts, r.String())
	}
	return " [" + strings.Join(parts, " ") + "]"
}
