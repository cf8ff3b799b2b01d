package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diagraft/diagraft/pkg/pipeline"
	"github.com/diagraft/diagraft/pkg/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	generateOpts
	addr string
}

// previewCommand creates the preview command. It runs one generation
// pass and then serves the target document over local HTTP until
// interrupted.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the target page over local HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to diagraft.toml (default: discovered at the project root)")
	cmd.Flags().StringVarP(&opts.modelPath, "model", "m", "", "model file (overrides config)")
	cmd.Flags().StringVarP(&opts.htmlPath, "html", "t", "", "target HTML document (overrides config)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts previewOpts) error {
	cfg, err := c.resolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts.modelPath, opts.htmlPath)
	if opts.addr != "" {
		cfg.Preview.Addr = opts.addr
	}

	// Refresh the fragment first so the browser shows the current model.
	runner := pipeline.NewRunner(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		ModelPath: cfg.Model,
		HTMLPath:  cfg.HTML,
		Markers:   cfg.SpliceMarkers(),
	})
	if err != nil {
		return err
	}

	printSuccess("rendered %d relations into %s", result.Relations, result.HTMLPath)
	printInfo("preview at http://%s (ctrl+c to stop)", cfg.Preview.Addr)

	handler := preview.NewHandler(cfg.HTML, c.Logger)
	return preview.Serve(ctx, cfg.Preview.Addr, handler, c.Logger)
}
