package domain

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mendoc-dev/mendoc/internal/adapter"
	"github.com/mendoc-dev/mendoc/internal/controller"
	m "github.com/mendoc-dev/mendoc/internal/model"
)

// FixArgs carries everything a fix run needs.
type FixArgs struct {
	Paths   []m.Path
	Options FixOptions
	Reports m.Path
}

// ListArgs carries the roots to scan for doctest files.
type ListArgs struct {
	Paths []m.Path
}

// ViewArgs names the directory holding saved fix reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for doctest fixing operations.
type Workflow interface {
	Fix(args FixArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter      adapter.SourceFSAdapter
	docAdapter     adapter.DocFileAdapter
	harnessAdapter adapter.HarnessAdapter
	reportStore    adapter.ReportStore
	ui             controller.UI
	listUI         adapter.UI
	orch           Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	docAdapter adapter.DocFileAdapter,
	harnessAdapter adapter.HarnessAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	listUI adapter.UI,
	orch Orchestrator,
) Workflow {
	return &workflow{
		fsAdapter:      fsAdapter,
		docAdapter:     docAdapter,
		harnessAdapter: harnessAdapter,
		reportStore:    reportStore,
		ui:             ui,
		listUI:         listUI,
		orch:           orch,
	}
}

// Fix runs the harness over every discovered file and reconciles the
// reported failures back into the sources, in argument order.
func (w *workflow) Fix(args FixArgs) error {
	if len(args.Paths) == 0 {
		return fmt.Errorf("no input paths provided")
	}

	ctx := context.Background()
	opts := args.Options

	if err := w.harnessAdapter.SmokeTest(ctx, runOptions(opts)); err != nil {
		return err
	}

	docFiles, err := w.collectDocFiles(args.Paths)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithFixMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayRunPlan(len(docFiles), opts.Environment)

	report := m.RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}

	for i, doc := range docFiles {
		w.ui.DisplayStartingFileInfo(doc.Path, i+1, len(docFiles))

		fix, warnings, err := w.orch.FixFile(ctx, doc.Path, opts)
		if err != nil {
			return fmt.Errorf("failed to fix %s: %w", doc.Path, err)
		}

		if opts.Verbose {
			for _, block := range fix.Blocks {
				w.ui.DisplayBlockFix(block)
			}
		}

		for _, warning := range warnings {
			w.ui.DisplayWarning(warning)
		}

		w.ui.DisplayCompletedFileInfo(fix)

		report.Files = append(report.Files, fix)
		report.Warnings = append(report.Warnings, warnings...)
	}

	if err := w.reportStore.SaveReport(args.Reports, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if err := w.ui.DisplayRunSummary(report); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// List prints every doctest-carrying file below the given roots.
func (w *workflow) List(args ListArgs) error {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	docFiles, err := w.collectDocFiles(paths)
	if err != nil {
		return err
	}

	return w.listUI.Display(docFiles)
}

// View renders the most recent saved fix report.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no fix reports found in %s", args.Reports)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	latest := reports[len(reports)-1]

	if err := w.ui.DisplayRunSummary(latest); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// collectDocFiles resolves every root into scanned doctest files,
// preserving argument order and dropping duplicates.
func (w *workflow) collectDocFiles(roots []m.Path) ([]m.DocFile, error) {
	seen := make(map[string]bool)

	var all []m.DocFile

	for _, root := range roots {
		files, err := w.scanRoot(root)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			if seen[string(file.Path)] {
				continue
			}

			seen[string(file.Path)] = true

			all = append(all, file)
		}
	}

	return all, nil
}

// scanRoot expands a single root. A file root is always included, even
// without examples; directory walks keep doctest carriers only.
func (w *workflow) scanRoot(root m.Path) ([]m.DocFile, error) {
	rootPath, recursive, err := w.fsAdapter.NormalizeRoot(root)
	if err != nil {
		return nil, err
	}

	info, err := w.fsAdapter.FileInfo(rootPath)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		file, err := w.scanFile(rootPath)
		if err != nil {
			return nil, err
		}

		return []m.DocFile{file}, nil
	}

	var files []m.DocFile

	err = w.fsAdapter.Walk(rootPath, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !w.docAdapter.Candidate(m.Path(path)) {
			return nil
		}

		if file, ok := w.tryScanFile(m.Path(path)); ok {
			files = append(files, file)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootPath, err)
	}

	return files, nil
}

func (w *workflow) scanFile(path m.Path) (m.DocFile, error) {
	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.DocFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, _ := w.docAdapter.Scan(path, src)

	hash, err := w.fsAdapter.HashFile(path)
	if err != nil {
		return m.DocFile{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}

	file.Hash = hash

	return file, nil
}

// tryScanFile is the lenient variant used during directory walks:
// unreadable files and files without examples are skipped quietly.
func (w *workflow) tryScanFile(path m.Path) (m.DocFile, bool) {
	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.DocFile{}, false
	}

	file, ok := w.docAdapter.Scan(path, src)
	if !ok {
		return m.DocFile{}, false
	}

	if hash, err := w.fsAdapter.HashFile(path); err == nil {
		file.Hash = hash
	}

	return file, ok
}
