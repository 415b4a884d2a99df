package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mendoc-dev/mendoc/internal/model"
)

func TestAnimateScrollFileAndTruncateFile(t *testing.T) {
	if got := truncateFile("hello", 0); got != "" {
		t.Fatalf("truncateFile width 0 = %q", got)
	}
	if got := truncateFile("hello", 1); got != "…" {
		t.Fatalf("truncateFile width 1 = %q", got)
	}
	if got := truncateFile("hello", 10); got != "hello" {
		t.Fatalf("truncateFile no truncation = %q", got)
	}

	if got := animateScrollFile("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScrollFile pause = %q", got)
	}
	got := animateScrollFile("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScrollFile scrolled = %q", got)
	}
}

func TestFixRunModel_HandlePlanAndStart(t *testing.T) {
	model := newFixRunModel()
	model = model.handlePlan(planMsg{files: 3, environment: "sage"})
	if model.totalFiles != 3 || model.environment != "sage" || !model.rendered {
		t.Fatalf("handlePlan did not set state")
	}

	model = model.handleStartFile(startFileMsg{path: "src/rings.py", index: 1, total: 3})
	if model.currentFile != "src/rings.py" || model.currentIndex != 1 || model.currentStatus != "running" {
		t.Fatalf("handleStartFile did not set state")
	}
}

func TestFixRunModel_HandleCompletedFile(t *testing.T) {
	model := newFixRunModel()
	model.totalFiles = 1

	fix := m.FileFix{
		File: "src/rings.py",
		Blocks: []m.BlockFix{
			{File: "src/rings.py", Line: 10, Kind: m.BlockWrongOutput, Outcome: m.OutcomeUpdated},
			{File: "src/rings.py", Line: 30, Kind: m.BlockException, Outcome: m.OutcomeSkipped, Detail: "verify failed"},
		},
	}

	model = model.handleCompletedFile(completedFileMsg{fix: fix})
	if model.completedCount != 1 || model.progressPercent != 1 || !model.runFinished {
		t.Fatalf("handleCompletedFile did not complete progress")
	}
	if len(model.results) != 2 {
		t.Fatalf("results length = %d, want 2", len(model.results))
	}
	if len(model.resultsList.Items()) != 2 {
		t.Fatalf("results list items = %d, want 2", len(model.resultsList.Items()))
	}

	// when totalFiles is zero, progress should not update
	model = newFixRunModel()
	model = model.handleCompletedFile(completedFileMsg{fix: m.FileFix{File: "b.py"}})
	if model.progressPercent != 0 {
		t.Fatalf("progressPercent = %v, want 0", model.progressPercent)
	}
	if model.runFinished {
		t.Fatalf("runFinished should stay false without a plan")
	}
}

func TestFixRunModel_HandleWarning(t *testing.T) {
	model := newFixRunModel()

	warning := m.Warning{File: "src/rings.py", Line: 4, Title: "unmatched block", Detail: []string{"report line 12"}}
	model = model.handleWarning(warningMsg{warning: warning})

	if len(model.results) != 1 {
		t.Fatalf("results length = %d, want 1", len(model.results))
	}

	result := model.results[0]
	if result.outcome != "warning" || result.line != 4 {
		t.Fatalf("warning result = %+v", result)
	}
	if !strings.Contains(result.detail, "unmatched block") || !strings.Contains(result.detail, "report line 12") {
		t.Fatalf("warning detail = %q", result.detail)
	}
}

func TestFixRunModel_HandleSummary(t *testing.T) {
	report := m.RunReport{
		Files: []m.FileFix{{
			File: "src/rings.py",
			Blocks: []m.BlockFix{
				{File: "src/rings.py", Line: 10, Kind: m.BlockWrongOutput, Outcome: m.OutcomeUpdated},
			},
		}},
		Warnings: []m.Warning{{File: "docs/guide.rst", Title: "file not found"}},
	}

	// A saved report populates the list from scratch
	model := newFixRunModel()
	model = model.handleSummary(summaryMsg{report: report})
	if !model.runFinished || !model.rendered || model.progressPercent != 1 {
		t.Fatalf("handleSummary did not finish run")
	}
	if len(model.results) != 2 {
		t.Fatalf("results length = %d, want 2", len(model.results))
	}

	// A live run keeps its accumulated rows
	model = newFixRunModel()
	model.results = []blockResult{{file: "live.py", outcome: "updated"}}
	model = model.handleSummary(summaryMsg{report: report})
	if len(model.results) != 1 {
		t.Fatalf("live results length = %d, want 1", len(model.results))
	}
}

func TestFixRunModel_HandleKeyMsgAndTick(t *testing.T) {
	model := newFixRunModel()
	model.runFinished = true
	model.rendered = true
	model.resultsList.SetItems([]list.Item{
		blockResult{file: "a.py", line: 1, kind: "wrong-output", outcome: "updated"},
		blockResult{file: "b.py", line: 2, kind: "exception", outcome: "skipped"},
	})

	model.lastSelected = -1
	updated, _ := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	if updated.lastSelected == -1 {
		t.Fatalf("expected selection to update")
	}

	_, cmd := updated.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	updated.animOffset = 0
	model, _ = updated.handleTickMsg(tickMsg(time.Now()))
	if model.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", model.animOffset)
	}

	updated.runFinished = false
	expectedOffset := updated.animOffset
	model, _ = updated.handleTickMsg(tickMsg(time.Now()))
	if model.animOffset != expectedOffset {
		t.Fatalf("animOffset changed unexpectedly")
	}

	fresh := newFixRunModel()
	_, cmd = fresh.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Fatalf("expected nil cmd when not finished")
	}
}

func TestFixRunModel_DetailToggle(t *testing.T) {
	model := newFixRunModel()
	model.runFinished = true
	model.rendered = true
	model.width = 80
	model.height = 30
	model.resultsList.SetItems([]list.Item{
		blockResult{file: "a.py", line: 1, outcome: "updated", detail: "report expected:\n  42\nfile line 1:\n  41"},
		blockResult{file: "b.py", line: 2, outcome: "skipped"},
	})

	model, _ = model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	if !model.showDetail || model.selectedPath != "a.py" {
		t.Fatalf("toggle on: showDetail = %v, path = %q", model.showDetail, model.selectedPath)
	}

	box, height := model.renderDetailBox(lipgloss.Color("6"), 76)
	if box == "" || height == 0 {
		t.Fatalf("renderDetailBox empty while detail shown")
	}
	if !strings.Contains(box, "Detail") || !strings.Contains(box, "a.py") {
		t.Fatalf("renderDetailBox missing header\n%s", box)
	}

	if model.detailBoxHeight() == 0 {
		t.Fatalf("detailBoxHeight = 0 while detail shown")
	}

	// Same selection toggles back off
	model.toggleSelectedDetail()
	if model.showDetail {
		t.Fatalf("toggle off: showDetail = true")
	}

	if box, _ := model.renderDetailBox(lipgloss.Color("6"), 76); box != "" {
		t.Fatalf("renderDetailBox after toggle off = %q", box)
	}

	// Rows without detail never open the box
	model.resultsList.Select(1)
	model.toggleSelectedDetail()
	if model.showDetail {
		t.Fatalf("empty detail opened the box")
	}
}

func TestFixRunModel_MouseToggle(t *testing.T) {
	model := newFixRunModel()

	// Before the run finishes mouse events are ignored
	updated, _ := model.handleMouseMsg(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if updated.showDetail {
		t.Fatalf("mouse toggled detail before finish")
	}

	model.runFinished = true
	model.rendered = true
	model.resultsList.SetItems([]list.Item{
		blockResult{file: "a.py", line: 1, outcome: "updated", detail: "got 42"},
	})

	model, _ = model.handleMouseMsg(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if !model.showDetail {
		t.Fatalf("click did not open detail")
	}

	model, _ = model.handleMouseMsg(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if model.showDetail {
		t.Fatalf("second click did not close detail")
	}
}

func TestFixRunModel_WindowSizeAndViews(t *testing.T) {
	model := newFixRunModel()
	model = model.handleWindowSize(tea.WindowSizeMsg{Width: 10, Height: 5})
	if model.progressBar.Width != 20 {
		t.Fatalf("progress bar width = %d, want 20", model.progressBar.Width)
	}

	model = model.handleWindowSize(tea.WindowSizeMsg{Width: 80, Height: 30})
	if model.progressBar.Width != 72 {
		t.Fatalf("progress bar width = %d, want 72", model.progressBar.Width)
	}

	if got := model.View(); got != "Initializing fix run…\n" {
		t.Fatalf("View() before rendered = %q", got)
	}

	model.rendered = true
	model.totalFiles = 2
	model.completedCount = 1
	model.currentFile = "src/rings.py"
	model.currentIndex = 1
	progressView := model.viewProgress()
	if !strings.Contains(progressView, "Mendoc Doctest Fixing") {
		t.Fatalf("viewProgress missing title")
	}
	if !strings.Contains(progressView, "rings.py") {
		t.Fatalf("viewProgress missing current file")
	}

	model.runFinished = true
	model.results = []blockResult{
		{file: "a.py", outcome: "updated"},
		{file: "b.py", outcome: "warning"},
	}
	resultsView := model.viewResults()
	if !strings.Contains(resultsView, "Mendoc Fix Results") {
		t.Fatalf("viewResults missing title")
	}

	box := model.renderResultsBox(lipgloss.Color("6"))
	if !strings.Contains(box, "Line") || !strings.Contains(box, "Outcome") {
		t.Fatalf("renderResultsBox missing headers")
	}

	if got := model.countOutcome("updated"); got != 1 {
		t.Fatalf("countOutcome updated = %d, want 1", got)
	}

	// An idle box renders before any file starts
	model.currentFile = ""
	fileBox := model.renderCurrentFileBox(lipgloss.Color("6"))
	if !strings.Contains(fileBox, "idle") {
		t.Fatalf("renderCurrentFileBox missing idle marker")
	}
}

func TestBlockResultDelegateStyles(t *testing.T) {
	delegate := blockResultDelegate{}
	result := blockResult{file: "path/to/file.py", line: 12, kind: "wrong-output", outcome: "custom"}

	_, _, _, _, display := delegate.getStylesAndFile(result, false, 10)
	if len([]rune(display)) == 0 {
		t.Fatalf("expected display file for unselected")
	}

	_, _, _, _, display = delegate.getStylesAndFile(result, true, 10)
	if len([]rune(display)) == 0 {
		t.Fatalf("expected display file for selected")
	}
}

func TestBlockResultDelegate_Render(t *testing.T) {
	delegate := blockResultDelegate{}
	items := []list.Item{blockResult{file: "short.py", line: 7, kind: "exception", outcome: "updated"}}
	lst := list.New(items, delegate, 60, 5)
	var buf strings.Builder
	delegate.Render(&buf, lst, 0, items[0])
	if !strings.Contains(buf.String(), "short.py") {
		t.Fatalf("render output missing file")
	}

	// Render with bad item type should not panic
	buf.Reset()
	delegate.Render(&buf, lst, 0, struct{ list.Item }{})

	// Test delegate methods
	if delegate.Height() != 1 {
		t.Fatalf("Height() = %d, want 1", delegate.Height())
	}
	if delegate.Spacing() != 0 {
		t.Fatalf("Spacing() = %d, want 0", delegate.Spacing())
	}
	if cmd := delegate.Update(nil, &lst); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}
}

func TestFixRunModel_UpdateSwitch(t *testing.T) {
	model := newFixRunModel()
	if cmd := model.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}

	if view := model.View(); !strings.Contains(view, "Initializing") {
		t.Fatalf("View before start should show initializing")
	}

	_, _ = model.Update(tea.WindowSizeMsg{Width: 50, Height: 10})
	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	_, _ = model.Update(tickMsg(time.Now()))

	updated, _ := model.Update(planMsg{files: 1, environment: "sage"})
	model = updated.(fixRunModel)
	updated, _ = model.Update(startFileMsg{path: "src/rings.py", index: 1, total: 1})
	model = updated.(fixRunModel)

	if view := model.View(); !strings.Contains(view, "Mendoc Doctest Fixing") {
		t.Fatalf("View after start should show fixing")
	}

	updated, _ = model.Update(blockFixMsg{fix: m.BlockFix{File: "src/rings.py", Line: 3, Outcome: m.OutcomeUpdated}})
	model = updated.(fixRunModel)
	if model.currentStatus != "updated" {
		t.Fatalf("currentStatus = %q, want updated", model.currentStatus)
	}

	updated, _ = model.Update(warningMsg{warning: m.Warning{File: "src/rings.py", Title: "stale line"}})
	model = updated.(fixRunModel)

	updated, _ = model.Update(completedFileMsg{fix: m.FileFix{
		File:   "src/rings.py",
		Blocks: []m.BlockFix{{File: "src/rings.py", Line: 3, Outcome: m.OutcomeUpdated}},
	}})
	model = updated.(fixRunModel)

	if !model.runFinished {
		t.Fatalf("runFinished = false after last file")
	}

	if view := model.View(); !strings.Contains(view, "Mendoc Fix Results") {
		t.Fatalf("View after finish should show results")
	}

	updated, _ = model.Update(summaryMsg{report: m.RunReport{}})
	model = updated.(fixRunModel)
	if len(model.results) != 2 {
		t.Fatalf("results length = %d, want 2", len(model.results))
	}

	// Set filtering and test tick skip
	model.resultsList.SetFilteringEnabled(true)
	_, _ = model.resultsList.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	_, cmd := model.handleTickMsg(tickMsg(time.Now()))
	_ = cmd
}
