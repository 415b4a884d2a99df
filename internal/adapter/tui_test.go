package adapter

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

func TestTUI_Display(t *testing.T) {
	tests := []struct {
		name         string
		files        []m.DocFile
		wantContains []string
		wantNotEmpty bool
	}{
		{
			name:  "empty list",
			files: []m.DocFile{},
			wantContains: []string{
				"No documentation files found",
			},
			wantNotEmpty: true,
		},
		{
			name: "single file",
			files: []m.DocFile{
				{Path: m.Path("matrix.py"), Examples: 3},
			},
			wantContains: []string{
				"matrix.py",
				"Found 1 documentation file(s)",
			},
			wantNotEmpty: true,
		},
		{
			name: "multiple files",
			files: []m.DocFile{
				{Path: m.Path("matrix.py"), Examples: 4},
				{Path: m.Path("vector.py"), Examples: 2},
				{Path: m.Path("doc/tutorial.rst"), Examples: 0},
			},
			wantContains: []string{
				"matrix.py",
				"vector.py",
				"doc/tutorial.rst",
				"Total: 6 example(s) across 3 file(s)",
			},
			wantNotEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a buffer to capture output
			var buf bytes.Buffer

			// Create TUI
			ui := NewTUI(&buf)
			err := ui.Display(tt.files)

			if err != nil {
				t.Errorf("Display() error = %v", err)
				return
			}

			got := buf.String()

			if tt.wantNotEmpty && got == "" {
				t.Errorf("Display() output is empty, want non-empty")
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Display() output does not contain %q\nGot: %q", want, got)
				}
			}
		})
	}
}
