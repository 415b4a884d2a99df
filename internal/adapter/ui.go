// Package adapter provides output adapters for displaying scanned
// documentation files.
package adapter

import (
	m "github.com/mendoc-dev/mendoc/internal/model"
)

// UI defines the interface for displaying documentation file lists.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Display shows a list of documentation files with their example counts.
	Display(files []m.DocFile) error
}
