package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagraft/diagraft/pkg/config"
	"github.com/diagraft/diagraft/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string // explicit diagraft.toml path
	modelPath  string // model file override
	htmlPath   string // target document override
	dryRun     bool   // render and validate without writing
}

// generateCommand creates the generate command, the tool's main entry
// point. With no flags it resolves both file paths from the project
// configuration, so a bare `diagraft generate` works from anywhere
// inside the project.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render relation paths and splice them into the target page",
		Long: `Render one SVG path per relation from the diagram model and splice
the fragment into the marker-delimited region of the target HTML document.

The whole marked region is replaced on every run; reruns on an unchanged
model are byte-identical. Any validation error aborts before the target
file is touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to diagraft.toml (default: discovered at the project root)")
	cmd.Flags().StringVarP(&opts.modelPath, "model", "m", "", "model file (overrides config)")
	cmd.Flags().StringVarP(&opts.htmlPath, "html", "t", "", "target HTML document (overrides config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate and render without writing the target")

	return cmd
}

// runGenerate executes one generation pass and prints the summary line.
func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	cfg, err := c.resolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts.modelPath, opts.htmlPath)

	runner := pipeline.NewRunner(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		ModelPath: cfg.Model,
		HTMLPath:  cfg.HTML,
		Markers:   cfg.SpliceMarkers(),
		DryRun:    opts.dryRun,
	})
	if err != nil {
		return err
	}

	if opts.dryRun {
		printInfo("dry run: %d relations, viewport %gx%g (nothing written)",
			result.Relations, result.Viewport.Width, result.Viewport.Height)
		printFile(result.HTMLPath)
		return nil
	}

	// The success contract: one summary line on stdout.
	fmt.Printf("rendered %d relations into %s (viewport %gx%g)\n",
		result.Relations, result.HTMLPath, result.Viewport.Width, result.Viewport.Height)
	return nil
}

// applyOverrides layers flag overrides on top of the resolved config.
func applyOverrides(cfg *config.Config, modelPath, htmlPath string) {
	if modelPath != "" {
		cfg.Model = modelPath
	}
	if htmlPath != "" {
		cfg.HTML = htmlPath
	}
}
