// Package pipeline runs the complete load → resolve → render → splice
// sequence for one generation pass.
//
// The four stages are strictly sequential with no feedback loops:
//
//  1. Load: parse the YAML model and extract the diagram section
//  2. Resolve: validate entities and build the id → position index
//  3. Render: emit one SVG path per relation, grouped by kind
//  4. Splice: replace the marker region of the target HTML document
//
// Any validation failure aborts the pass before the target file is
// touched. CLI commands and the watch loop share this package so every
// entry point behaves identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ModelPath: "docs/data-model.yml",
//	    HTMLPath:  "docs/index.html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("rendered %d relations\n", result.Relations)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/diagraft/diagraft/pkg/errors"
	"github.com/diagraft/diagraft/pkg/model"
	"github.com/diagraft/diagraft/pkg/render"
	"github.com/diagraft/diagraft/pkg/splice"
)

// Options configures a single generation pass.
type Options struct {
	// ModelPath is the YAML model file.
	ModelPath string

	// HTMLPath is the target document carrying the marker region.
	HTMLPath string

	// Markers delimits the replaceable region. Zero value means the
	// AUTO-RELATIONS defaults.
	Markers splice.Markers

	// DryRun renders and validates everything but skips the file write.
	DryRun bool

	// Render forwards renderer options (class prefix, routing margins).
	Render []render.Option
}

// Validate checks required fields and applies marker defaults.
func (o *Options) Validate() error {
	if o.ModelPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "model path is required")
	}
	if o.HTMLPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "html path is required")
	}
	if o.Markers.Begin == "" && o.Markers.End == "" {
		o.Markers = splice.DefaultMarkers()
	}
	if o.Markers.Begin == "" || o.Markers.End == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "markers must set both begin and end")
	}
	return nil
}

// Result contains the outputs of one generation pass.
type Result struct {
	// Relations is the number of paths rendered.
	Relations int

	// Entities is the number of entities in the position index.
	Entities int

	// Viewport is the effective (configured or default) viewport.
	Viewport model.Viewport

	// Block is the rendered SVG fragment that was (or would be) spliced.
	Block []byte

	// HTMLPath is the rewritten target document.
	HTMLPath string

	// Written is false for dry runs.
	Written bool

	// Stats contains stage timings.
	Stats Stats
}

// discard is the fallback logger when a Runner is built without one.
func discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
