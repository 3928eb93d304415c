package main

import (
	"errors"
	"strings"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/engine"
	"github.com/spf13/cobra"
)

type fetchFlags struct {
	assign   bool
	output   string
	category string
	supplier string
	tags     []string
	nsfw     bool
}

var fetchOpts fetchFlags

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a wallpaper",
	Long: "Fetch one image from a supplier picked by name or at random. The image goes\n" +
		"into the cache unless --output is given.",
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.BoolVarP(&fetchOpts.assign, "assign", "a", false, "assign the wallpaper using the 'set_command' config command")
	f.StringVarP(&fetchOpts.output, "output", "o", "", "where to put the image, goes into cache if not set")
	f.StringVarP(&fetchOpts.category, "category", "c", "", "which predefined category name to use")
	f.StringVarP(&fetchOpts.supplier, "supplier", "s", "", "which supplier to use, leave empty to pick randomly")
	f.StringArrayVarP(&fetchOpts.tags, "tags", "t", nil, "additional tags to add (repeatable)")
	f.BoolVar(&fetchOpts.nsfw, "nsfw", false, "allow non-sfw content")
	f.BoolVar(&globalOpts.Simple, "simple", false, "only print the image's final path, for use in scripts")

	rootCmd.AddCommand(fetchCmd)
}

// buildRequest turns the parsed flags into an engine request. A flag that
// was not given stays nil, so "-c ''" still reaches the resolver.
func buildRequest(cmd *cobra.Command, flags fetchFlags) engine.Request {
	req := engine.Request{
		Tags:   flags.tags,
		Output: flags.output,
		Assign: flags.assign,
		NSFW:   flags.nsfw,
	}
	if cmd.Flags().Changed("category") {
		c := flags.category
		req.Category = &c
	}
	if cmd.Flags().Changed("supplier") {
		s := flags.supplier
		req.Supplier = &s
	}
	return req
}

func runFetch(cmd *cobra.Command, _ []string) error {
	var eng *engine.Engine
	if _, err := newApp(globalOpts, &eng); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), globalOpts.Simple)
	req := buildRequest(cmd, fetchOpts)

	spin := p.Spin("Downloading...")
	req.OnState = func(s engine.State) {
		if label := stateLabel(s, req.Output); label != "" {
			spin.Describe(label)
		}
	}
	res, err := eng.Fetch(cmd.Context(), req)
	spin.Stop()

	if err != nil {
		// the image is already persisted when only the command is missing
		if errors.Is(err, domain.ErrMissingApplyCommand) && res != nil && res.Path != "" {
			reportPath(p, req, res)
		}
		return err
	}

	reportPath(p, req, res)

	if req.Assign {
		if res.Applied {
			p.Success("Assigned to image as the active wallpaper.")
		} else if res.ApplyErr != nil {
			p.Warning("Failed to assign wallpaper: %s", applyDetail(res))
		}
	}
	return nil
}

// stateLabel is the spinner text for a state, empty to keep the current one
func stateLabel(s engine.State, output string) string {
	switch s {
	case engine.StatePersisting:
		if output != "" {
			return "Saving image to file..."
		}
		return "Caching image..."
	case engine.StateApplyingExternalCommand:
		return "Assigning wallpaper..."
	default:
		return ""
	}
}

func reportPath(p *printer, req engine.Request, res *engine.Result) {
	switch {
	case p.simple:
		p.Print("%s", res.Path)
	case req.Output != "":
		p.Success("Successfully saved image to file: %s", res.Path)
	default:
		p.Success("Downloaded %s", res.Path)
	}
}

func applyDetail(res *engine.Result) string {
	if stderr := strings.TrimSpace(res.ApplyResult.Stderr); stderr != "" {
		return stderr
	}
	return res.ApplyErr.Error()
}
