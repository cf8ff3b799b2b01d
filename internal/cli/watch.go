package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diagraft/diagraft/pkg/pipeline"
	"github.com/diagraft/diagraft/pkg/watch"
)

// watchOpts holds the command-line flags for the watch command.
type watchOpts struct {
	generateOpts
	noTUI bool
}

// watchCommand creates the watch command. It regenerates the fragment
// whenever the model file changes on disk, with an interactive status
// display unless --no-tui is set.
func (c *CLI) watchCommand() *cobra.Command {
	var opts watchOpts

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the model file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runWatch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to diagraft.toml (default: discovered at the project root)")
	cmd.Flags().StringVarP(&opts.modelPath, "model", "m", "", "model file (overrides config)")
	cmd.Flags().StringVarP(&opts.htmlPath, "html", "t", "", "target HTML document (overrides config)")
	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "plain log output instead of the interactive display")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts watchOpts) error {
	cfg, err := c.resolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts.modelPath, opts.htmlPath)

	pipeOpts := pipeline.Options{
		ModelPath: cfg.Model,
		HTMLPath:  cfg.HTML,
		Markers:   cfg.SpliceMarkers(),
	}

	w, err := watch.New(cfg.Model)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	if opts.noTUI {
		return c.watchPlain(ctx, w, pipeOpts)
	}
	return watchTUI(ctx, w, pipeOpts)
}

// watchPlain runs the watch loop with line-oriented output, for use in
// scripts and dumb terminals.
func (c *CLI) watchPlain(ctx context.Context, w *watch.Watcher, opts pipeline.Options) error {
	runner := pipeline.NewRunner(c.Logger)

	report := func() {
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			printError("%v", err)
			return
		}
		printSuccess("rendered %d relations into %s", result.Relations, result.HTMLPath)
	}

	printInfo("watching %s (ctrl+c to stop)", w.Path)
	report()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			report()
		}
	}
}

// watchTUI runs the watch loop inside a bubbletea status display.
func watchTUI(ctx context.Context, w *watch.Watcher, opts pipeline.Options) error {
	p := tea.NewProgram(newWatchModel(w.Path, opts.HTMLPath))

	// Pipeline logging would corrupt the display, so watch-mode passes
	// run silently and report through messages instead.
	runner := pipeline.NewRunner(nil)

	go func() {
		p.Send(runPass(ctx, runner, opts))
		for {
			select {
			case <-ctx.Done():
				p.Quit()
				return
			case _, ok := <-w.Events:
				if !ok {
					p.Quit()
					return
				}
				p.Send(runPass(ctx, runner, opts))
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return ctx.Err()
}

// passMsg reports the outcome of one generation pass to the TUI.
type passMsg struct {
	result *pipeline.Result
	err    error
	at     time.Time
}

func runPass(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) passMsg {
	result, err := runner.Execute(ctx, opts)
	return passMsg{result: result, err: err, at: time.Now()}
}

// watchModel is the bubbletea model for the watch status display.
type watchModel struct {
	modelPath string
	htmlPath  string

	passes int
	last   *passMsg
}

func newWatchModel(modelPath, htmlPath string) watchModel {
	return watchModel{modelPath: modelPath, htmlPath: htmlPath}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case passMsg:
		m.passes++
		m.last = &msg
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("diagraft watch"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	b.WriteString(watchKey("model") + StyleValue.Render(m.modelPath) + "\n")
	b.WriteString(watchKey("target") + StyleValue.Render(m.htmlPath) + "\n")
	b.WriteString(watchKey("passes") + StyleValue.Render(fmt.Sprintf("%d", m.passes)) + "\n\n")

	switch {
	case m.last == nil:
		b.WriteString(StyleDim.Render("waiting for first pass..."))
	case m.last.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + StyleWarning.Render(m.last.err.Error()))
	default:
		status := fmt.Sprintf("rendered %d relations at %s",
			m.last.result.Relations, m.last.at.Format("15:04:05"))
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render(status))
	}
	b.WriteString("\n")

	return b.String()
}

func watchKey(key string) string {
	return lipgloss.NewStyle().Foreground(colorGray).Width(9).Render(key) + " "
}
