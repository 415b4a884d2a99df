package adapter

import (
	"path/filepath"
	"strings"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// DocFileAdapter encapsulates doctest-specific scanning so the domain layer
// can focus on reconciliation rules while delegating file format details to
// an infrastructure component.
type DocFileAdapter interface {
	// Candidate reports whether a walked path looks like a doctest carrier.
	// Explicitly named files bypass this filter.
	Candidate(path m.Path) bool

	// Scan counts prompt examples in src and collects file-level tag
	// directives. The boolean is false when the content holds no examples.
	Scan(path m.Path, src []byte) (m.DocFile, bool)
}

// docExtensions lists the file types the directory walker considers.
var docExtensions = map[string]struct{}{
	".py":  {},
	".pyx": {},
	".rst": {},
	".txt": {},
}

// LocalDocFileAdapter provides a concrete DocFileAdapter driven by the
// configured example syntax.
type LocalDocFileAdapter struct {
	syntax m.Syntax
}

// NewLocalDocFileAdapter constructs a LocalDocFileAdapter.
func NewLocalDocFileAdapter(syntax m.Syntax) *LocalDocFileAdapter {
	return &LocalDocFileAdapter{syntax: syntax}
}

// Candidate reports whether path carries one of the recognized extensions.
func (a *LocalDocFileAdapter) Candidate(path m.Path) bool {
	_, ok := docExtensions[strings.ToLower(filepath.Ext(string(path)))]

	return ok
}

// Scan walks src line by line, counting example prompts and merging any
// file-level tag directives it encounters.
func (a *LocalDocFileAdapter) Scan(path m.Path, src []byte) (m.DocFile, bool) {
	file := m.DocFile{Path: path, FileTags: m.TagSet{}}

	for _, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == a.syntax.Prompt || strings.HasPrefix(trimmed, a.syntax.Prompt+" ") {
			file.Examples++

			continue
		}

		if a.syntax.FileTagPrefix == "" || !strings.HasPrefix(trimmed, a.syntax.FileTagPrefix) {
			continue
		}

		directive := strings.TrimPrefix(trimmed, a.syntax.FileTagPrefix)
		if _, tags, ok := m.ParseTagComment(directive); ok {
			file.FileTags.Merge(tags)
		}
	}

	return file, file.Examples > 0
}
