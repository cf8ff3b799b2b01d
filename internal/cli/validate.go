package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagraft/diagraft/pkg/pipeline"
)

// validateCommand creates the validate command. It runs every check of
// a generation pass (model structure, entity records, relation kinds
// and references, marker placement) without writing anything.
func (c *CLI) validateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the model and target document without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runValidate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to diagraft.toml (default: discovered at the project root)")
	cmd.Flags().StringVarP(&opts.modelPath, "model", "m", "", "model file (overrides config)")
	cmd.Flags().StringVarP(&opts.htmlPath, "html", "t", "", "target HTML document (overrides config)")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, opts generateOpts) error {
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
		DryRun:    true,
	})
	if err != nil {
		return err
	}

	printSuccess("model validates: %d entities, %d relations", result.Entities, result.Relations)
	printKeyValue("model", cfg.Model)
	printKeyValue("target", cfg.HTML)
	printKeyValue("viewport", fmt.Sprintf("%gx%g", result.Viewport.Width, result.Viewport.Height))
	printKeyValue("fragment", fmt.Sprintf("%d bytes", len(result.Block)))
	return nil
}
