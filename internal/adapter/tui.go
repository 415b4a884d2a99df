package adapter

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

const (
	// ANSI color codes for files without examples (dark gray, faint).
	grayColor  = "\033[2;90m" // Faint + dark gray
	resetColor = "\033[0m"    // Reset
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Display shows documentation files using Bubble Tea TUI.
func (p *TUI) Display(files []m.DocFile) error {
	model := newTUIModel(files)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// tuiModel represents the Bubble Tea model for displaying documentation files.
type tuiModel struct {
	files    []m.DocFile
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newTUIModel(files []m.DocFile) tuiModel {
	return tuiModel{
		files:    files,
		height:   0, // Will be set on first WindowSizeMsg
		width:    0,
		offset:   0,
		quitting: false,
	}
}

func (tm tuiModel) Init() tea.Cmd {
	return nil
}

func (tm tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.height = msg.Height
		tm.width = msg.Width

		return tm, nil

	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	}

	return tm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (tm tuiModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		tm.quitting = true
		return tm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		tm.quitting = true
		return tm, tea.Quit

	case "down", "j":
		tm.offset++

		maxOffset := tm.maxOffset()
		if tm.offset > maxOffset {
			tm.offset = maxOffset
		}

		return tm, nil

	case "up", "k":
		tm.offset--
		if tm.offset < 0 {
			tm.offset = 0
		}

		return tm, nil

	case "g", "home":
		tm.offset = 0

		return tm, nil

	case "G", "end":
		tm.offset = tm.maxOffset()

		return tm, nil

	case "d", "pgdown":
		tm.offset += tm.itemsPerPage()

		maxOffset := tm.maxOffset()
		if tm.offset > maxOffset {
			tm.offset = maxOffset
		}

		return tm, nil

	case "u", "pgup":
		tm.offset -= tm.itemsPerPage()
		if tm.offset < 0 {
			tm.offset = 0
		}

		return tm, nil
	}

	return tm, nil
}

// itemsPerPage calculates how many items can fit on screen.
func (tm tuiModel) itemsPerPage() int {
	if tm.height == 0 {
		return 10 // Default
	}
	// Reserve space for:
	// - Header: 4 lines (box + empty)
	// - Title: 2 lines (count + empty)
	// - Summary: 2 lines (empty + totals)
	// - Footer: 3 lines (empty + page + help)
	// - Top margin: 1 line
	// Total: 12 lines
	reserved := 12

	available := tm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (tm tuiModel) maxOffset() int {
	itemCount := len(tm.files)

	perPage := tm.itemsPerPage()
	if perPage <= 0 {
		return 0
	}

	maxOff := itemCount - perPage
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (tm tuiModel) needsPagination() bool {
	totalFiles := len(tm.files)
	if totalFiles == 0 {
		return false
	}

	itemsPerPage := tm.itemsPerPage()

	return totalFiles > itemsPerPage && tm.height > 0
}

func (tm tuiModel) View() string {
	var b strings.Builder

	tm.renderHeader(&b)

	if len(tm.files) == 0 {
		b.WriteString("  📭 No documentation files found\n")
		return b.String()
	}

	tm.renderFileList(&b)

	return b.String()
}

func (tm tuiModel) renderHeader(b *strings.Builder) {
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                     Mendoc - Doctest Fixer                     ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")
}

func (tm tuiModel) renderFileList(b *strings.Builder) {
	totalFiles := len(tm.files)
	fmt.Fprintf(b, "  📁 Found %d documentation file(s):\n\n", totalFiles)

	// Calculate pagination
	itemsPerPage := tm.itemsPerPage()
	needsPagination := totalFiles > itemsPerPage && tm.height > 0

	start := tm.offset

	end := start + itemsPerPage
	if end > totalFiles {
		end = totalFiles
	}

	if start >= totalFiles {
		start = totalFiles - 1
		if start < 0 {
			start = 0
		}
	}

	// Show items for current page
	displayFiles := tm.files

	if needsPagination {
		displayFiles = tm.files[start:end]
	}

	totalExamples := 0
	for _, file := range tm.files {
		totalExamples += file.Examples
	}

	for i, file := range displayFiles {
		actualIndex := start + i + 1

		if file.Examples == 0 {
			// Gray out files that carry no examples
			fmt.Fprintf(b, "  %2d. %s%s%s\n", actualIndex, grayColor, describeDocFile(file), resetColor)
		} else {
			fmt.Fprintf(b, "  %2d. %s\n", actualIndex, describeDocFile(file))
		}
	}

	// Total count
	b.WriteString("\n")
	fmt.Fprintf(b, "  📊 Total: %d example(s) across %d file(s)\n", totalExamples, totalFiles)

	// Footer with navigation help
	if needsPagination {
		b.WriteString("\n")

		currentPage := (tm.offset / itemsPerPage) + 1
		totalPages := (totalFiles + itemsPerPage - 1) / itemsPerPage
		fmt.Fprintf(b, "  Page %d/%d | Showing %d-%d of %d\n",
			currentPage, totalPages, start+1, end, totalFiles)
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}
}
