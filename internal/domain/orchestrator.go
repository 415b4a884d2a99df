package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/mendoc-dev/mendoc/internal/adapter"
	m "github.com/mendoc-dev/mendoc/internal/model"
)

// Orchestrator coordinates fixing a single documentation file: running the
// harness against it, reconciling the reported failures into the file's
// content, and writing the result back out.
type Orchestrator interface {
	FixFile(ctx context.Context, file m.Path, opts FixOptions) (m.FileFix, []m.Warning, error)
}

type orchestrator struct {
	fsAdapter      adapter.SourceFSAdapter
	harnessAdapter adapter.HarnessAdapter
	docAdapter     adapter.DocFileAdapter
	syntax         m.Syntax
	features       m.Features
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem, harness, and doc file adapters.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	harnessAdapter adapter.HarnessAdapter,
	docAdapter adapter.DocFileAdapter,
	syntax m.Syntax,
	features m.Features,
) Orchestrator {
	return &orchestrator{
		fsAdapter:      fsAdapter,
		harnessAdapter: harnessAdapter,
		docAdapter:     docAdapter,
		syntax:         syntax,
		features:       features,
	}
}

func (o *orchestrator) FixFile(ctx context.Context, file m.Path, opts FixOptions) (m.FileFix, []m.Warning, error) {
	src, err := o.fsAdapter.ReadFile(file)
	if err != nil {
		return m.FileFix{}, nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	doc, _ := o.docAdapter.Scan(file, src)

	output, err := o.harnessAdapter.RunFile(ctx, file, runOptions(opts))
	if err != nil {
		return m.FileFix{}, nil, fmt.Errorf("harness run failed for %s: %w", file, err)
	}

	blocks := parseReport(output, file)

	buf := newLineBuffer(string(src))
	rec := newReconciler(buf, o.syntax, o.features, doc.FileTags, opts)

	fixes := make([]m.BlockFix, 0, len(blocks))
	for _, block := range blocks {
		fixes = append(fixes, rec.apply(block))
	}

	content := buf.Flatten()
	if buf.Dirty() {
		content = normalizeContent(content, doc.FileTags, o.syntax)
	}

	fix := m.FileFix{
		File:    file,
		Changed: content != string(src),
		Blocks:  fixes,
	}

	if hash, err := o.fsAdapter.HashFile(file); err == nil {
		fix.Hash = hash
	}

	if fix.Changed || opts.Output != "" {
		out := outputPath(file, opts)
		if err := o.fsAdapter.WriteFile(out, []byte(content), 0o644); err != nil {
			return m.FileFix{}, rec.warnings, fmt.Errorf("failed to write %s: %w", out, err)
		}

		fix.Output = out
	}

	return fix, rec.warnings, nil
}

// outputPath decides where the reconciled content goes: an explicit output
// wins, otherwise the file itself or a ".fixed" sibling.
func outputPath(file m.Path, opts FixOptions) m.Path {
	if opts.Output != "" {
		return opts.Output
	}

	if opts.Overwrite {
		return file
	}

	return file + ".fixed"
}

func runOptions(opts FixOptions) m.RunOptions {
	return m.RunOptions{
		Long:        opts.Long,
		Probe:       opts.Probe,
		Environment: opts.Environment,
		Venv:        opts.Venv,
	}
}

func normalizeContent(content string, fileTags m.TagSet, syntax m.Syntax) string {
	lines := normalizeTags(strings.Split(content, "\n"), fileTags, syntax)

	return strings.Join(lines, "\n")
}
