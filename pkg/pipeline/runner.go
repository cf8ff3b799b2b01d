package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diagraft/diagraft/pkg/errors"
	"github.com/diagraft/diagraft/pkg/model"
	"github.com/diagraft/diagraft/pkg/render"
	"github.com/diagraft/diagraft/pkg/splice"
)

// Stats contains timings for the stages of a pass.
type Stats struct {
	LoadTime   time.Duration
	RenderTime time.Duration
	SpliceTime time.Duration
}

// Runner executes generation passes. It is stateless apart from the
// logger, so one Runner can serve repeated watch-mode passes.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = discard()
	}
	return &Runner{Logger: logger}
}

// Execute runs one complete pass. The target file is only written when
// every stage has succeeded and opts.DryRun is false; a cancelled
// context also prevents the write.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{HTMLPath: opts.HTMLPath}

	loadStart := time.Now()
	m, err := model.Load(opts.ModelPath)
	if err != nil {
		return nil, err
	}
	idx, err := model.BuildIndex(m.Entities)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Entities = len(idx)
	result.Viewport = m.Viewport()

	r.Logger.Debug("loaded model",
		"path", opts.ModelPath,
		"entities", len(idx),
		"relations", len(m.Relations),
		"duration", result.Stats.LoadTime)

	renderStart := time.Now()
	block, err := render.RenderSVG(m.Relations, idx, result.Viewport, opts.Render...)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.Relations = len(m.Relations)
	result.Block = block

	r.Logger.Debug("rendered fragment",
		"relations", result.Relations,
		"bytes", len(block),
		"duration", result.Stats.RenderTime)

	if opts.DryRun {
		// Still verify the markers so a dry run catches every error a
		// real run would.
		if _, err := spliceCheck(opts.HTMLPath, block, opts.Markers); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spliceStart := time.Now()
	if err := splice.File(opts.HTMLPath, block, opts.Markers); err != nil {
		return nil, err
	}
	result.Stats.SpliceTime = time.Since(spliceStart)
	result.Written = true

	r.Logger.Debug("spliced target",
		"path", opts.HTMLPath,
		"duration", result.Stats.SpliceTime)

	return result, nil
}

// spliceCheck performs the splice in memory without writing the result.
func spliceCheck(path string, block []byte, m splice.Markers) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read target %s", path)
	}
	return splice.Replace(string(data), block, m)
}
