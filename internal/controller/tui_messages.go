package controller

import (
	"fmt"
	"time"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// Message types.
type tickMsg time.Time

type planMsg struct {
	files       int
	environment string
}

type startFileMsg struct {
	path  string
	index int
	total int
}

type blockFixMsg struct {
	fix m.BlockFix
}

type warningMsg struct {
	warning m.Warning
}

type completedFileMsg struct {
	fix m.FileFix
}

type summaryMsg struct {
	report m.RunReport
}

// List item types.
type blockResult struct {
	file    string
	line    int
	kind    string
	outcome string
	detail  string
}

func (r blockResult) FilterValue() string {
	return fmt.Sprintf("%s %d %s %s", r.file, r.line, r.kind, r.outcome)
}
