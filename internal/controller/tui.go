package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mendoc-dev/mendoc/internal/model"
	"golang.org/x/sync/errgroup"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, option := range options {
		option(cfg)
	}

	model := newFixRunModel()
	if cfg.mode == ModeView {
		// Saved reports skip the progress phase entirely.
		model.rendered = true
		model.runFinished = true
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	if t.started {
		return nil
	}

	t.program = tea.NewProgram(
		model,
		tea.WithOutput(t.output),
		tea.WithMouseCellMotion(),
	)

	t.group = &errgroup.Group{}
	t.group.Go(func() error {
		_, err := t.program.Run()

		return err
	})

	t.started = true

	return nil
}

// ensureStarted launches the program for callers that display before Start.
func (t *TUI) ensureStarted() {
	if t.started {
		return
	}

	_ = t.startWithModel(newFixRunModel())
}

// send forwards a message to the running program. Messages sent before the
// program starts are dropped.
func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

// Close shuts the program down without waiting for the user.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Quit()
	t.Wait()
	t.program = nil
}

// Wait blocks until the user closes the UI.
func (t *TUI) Wait() {
	if t.group == nil {
		return
	}

	_ = t.group.Wait()
}

// DisplayRunPlan announces how many files the run covers.
func (t *TUI) DisplayRunPlan(files int, environment string) {
	t.ensureStarted()
	t.send(planMsg{files: files, environment: environment})
}

// DisplayStartingFileInfo shows the file about to be fixed.
func (t *TUI) DisplayStartingFileInfo(file m.Path, index int, total int) {
	t.send(startFileMsg{path: string(file), index: index, total: total})
}

// DisplayBlockFix shows the outcome of a single failure block.
func (t *TUI) DisplayBlockFix(fix m.BlockFix) {
	t.send(blockFixMsg{fix: fix})
}

// DisplayWarning surfaces a non-fatal problem in the results list.
func (t *TUI) DisplayWarning(warning m.Warning) {
	t.send(warningMsg{warning: warning})
}

// DisplayCompletedFileInfo records the per-file result rows.
func (t *TUI) DisplayCompletedFileInfo(fix m.FileFix) {
	t.send(completedFileMsg{fix: fix})
}

// DisplayRunSummary switches the UI to the results view.
func (t *TUI) DisplayRunSummary(report m.RunReport) error {
	t.ensureStarted()
	t.send(summaryMsg{report: report})

	return nil
}
