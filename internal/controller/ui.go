// Package controller provides output adapters for displaying doctest fix runs.
package controller

import (
	m "github.com/mendoc-dev/mendoc/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFix StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFixMode sets the UI to live fix run mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithViewMode sets the UI to saved report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying fix run progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunPlan(files int, environment string)
	DisplayStartingFileInfo(file m.Path, index int, total int)
	DisplayBlockFix(fix m.BlockFix)
	DisplayWarning(warning m.Warning)
	DisplayCompletedFileInfo(fix m.FileFix)
	DisplayRunSummary(report m.RunReport) error
}
