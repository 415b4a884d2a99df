package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// blockResultDelegate is the delegate for rendering block results in the list.
type blockResultDelegate struct {
	offset int
}

func (d blockResultDelegate) Height() int  { return 1 }
func (d blockResultDelegate) Spacing() int { return 0 }
func (d blockResultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d blockResultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(blockResult)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	fileWidth := m.Width() - 46 // Reserve space for Line, Outcome, Kind columns and spacing

	lineStyle, outcomeStyle, kindStyle, fileStyle, displayFile := d.getStylesAndFile(result, isSelected, fileWidth)

	line := fmt.Sprintf("%s  %s  %s  %s",
		lineStyle.Render(fmt.Sprintf("%-4d", result.line)),
		outcomeStyle.Render(fmt.Sprintf("%-8s", result.outcome)),
		kindStyle.Render(fmt.Sprintf("%-16s", result.kind)),
		fileStyle.Render(displayFile),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d blockResultDelegate) getStylesAndFile(result blockResult, isSelected bool, fileWidth int) (lipgloss.Style, lipgloss.Style, lipgloss.Style, lipgloss.Style, string) {
	if isSelected {
		return lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Width(6).
				Align(lipgloss.Left),
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Width(10).
				Align(lipgloss.Left),
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Width(18).
				Align(lipgloss.Left),
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true),
			animateScrollFile(result.file, fileWidth, d.offset)
	}

	outcomeColorMap := map[string]lipgloss.Color{
		"updated": lipgloss.Color("2"), // Green
		"tagged":  lipgloss.Color("6"), // Cyan
		"skipped": lipgloss.Color("3"), // Yellow
		"warning": lipgloss.Color("1"), // Red
	}

	outcomeColor, ok := outcomeColorMap[result.outcome]
	if !ok {
		outcomeColor = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Left),
		lipgloss.NewStyle().
			Foreground(outcomeColor).
			Bold(true).
			Width(10).
			Align(lipgloss.Left),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Width(18).
			Align(lipgloss.Left),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")),
		truncateFile(result.file, fileWidth)
}

// fixRunModel handles the TUI display during a doctest fix run.
type fixRunModel struct {
	width           int
	height          int
	progressBar     progress.Model
	currentFile     string
	currentIndex    int
	currentStatus   string
	environment     string
	totalFiles      int
	completedCount  int
	progressPercent float64
	rendered        bool
	runFinished     bool
	results         []blockResult
	resultsList     list.Model
	delegate        blockResultDelegate
	animOffset      int
	lastSelected    int
	showDetail      bool
	selectedDetail  string
	selectedPath    string
}

func newFixRunModel() fixRunModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := blockResultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return fixRunModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m fixRunModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m fixRunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case planMsg:
		m = m.handlePlan(msg)

	case startFileMsg:
		m = m.handleStartFile(msg)

	case blockFixMsg:
		m.currentStatus = string(msg.fix.Outcome)

	case warningMsg:
		m = m.handleWarning(msg)

	case completedFileMsg:
		m = m.handleCompletedFile(msg)

	case summaryMsg:
		m = m.handleSummary(msg)
	}

	return m, cmd
}

func (m fixRunModel) View() string {
	if !m.rendered {
		return "Initializing fix run…\n"
	}

	if m.runFinished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m fixRunModel) viewProgress() string {
	accentColor := lipgloss.Color("6") // Cyan

	// Styles
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor) // Cyan

	// 1. Title
	title := titleStyle.Render("📝 Mendoc Doctest Fixing")

	// 2. Summary with metadata
	envLabel := m.environment
	if envLabel == "" {
		envLabel = "default"
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Environment: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
		accentStyle.Render(envLabel),
	))

	// 3. Progress Bar
	progressStyle := lipgloss.NewStyle().
		Padding(0, 2)

	progressView := progressStyle.Render(m.progressBar.ViewAs(m.progressPercent))

	// 4. Current File Section
	fileBox := m.renderCurrentFileBox(accentColor)

	// 5. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Padding(0, 0)

	footer := footerStyle.Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		fileBox,
		footer,
	)
}

func (m fixRunModel) renderCurrentFileBox(accentColor lipgloss.Color) string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1). // Compact padding
		Margin(1, 1, 1, 0).
		Width(m.width - 4) // Constrain width

	fileStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	// Calculate max specific width for file path:
	// Width - Border(2) - Padding(2)
	availableWidth := m.width - 4 - 2 - 2

	lineContent := "idle"

	if m.currentFile != "" {
		label := fmt.Sprintf("[%d/%d] ", m.currentIndex, m.totalFiles)

		remainingForFile := availableWidth - len(label)
		if remainingForFile < 10 {
			remainingForFile = 10
		}

		lineContent = fmt.Sprintf("%s%s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(label), // Grey for position
			fileStyle.Render(truncateFile(m.currentFile, remainingForFile)),
		)

		if m.currentStatus != "" {
			lineContent = fmt.Sprintf("%s  %s", lineContent, m.currentStatus)
		}
	}

	return contentStyle.Render(lineContent)
}

func (m fixRunModel) viewResults() string {
	accentColor := lipgloss.Color("6") // Cyan

	// Styles
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	// 1. Title
	title := titleStyle.Render("📝 Mendoc Fix Results")

	// 2. Summary
	summary := summaryStyle.Render(fmt.Sprintf(
		"Total: %s  •  Updated: %s  •  Tagged: %s  •  Skipped: %s  •  Warnings: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.results))),
		accentStyle.Render(fmt.Sprintf("%d", m.countOutcome("updated"))),
		accentStyle.Render(fmt.Sprintf("%d", m.countOutcome("tagged"))),
		accentStyle.Render(fmt.Sprintf("%d", m.countOutcome("skipped"))),
		accentStyle.Render(fmt.Sprintf("%d", m.countOutcome("warning"))),
	))

	// 3. Results table with list
	resultsBox := m.renderResultsBox(accentColor)

	// 4. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter/space/click detail • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		resultsBox,
		footer,
	)
}

func (m fixRunModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 4
	detailBoxHeight := m.detailBoxHeight()

	listHeight := m.height - 9 - detailBoxHeight
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	// Column Headers
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %10s  %18s  %s", "Line", "Outcome", "Kind", "File"))

	resultsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	resultsBox := resultsStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.resultsList.View(),
		),
	)

	detailBox, _ := m.renderDetailBox(accentColor, listWidth)
	if detailBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, detailBox)
}

func (m fixRunModel) countOutcome(outcome string) int {
	count := 0

	for _, result := range m.results {
		if result.outcome == outcome {
			count++
		}
	}

	return count
}

func animateScrollFile(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateFile(text, width)
	}

	effectiveStep := offset - pause

	// Create the repeating pattern: text + gap
	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	// Construct the window
	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateFile(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	if width <= 1 {
		return "…"
	}

	ellipsis := "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func (m fixRunModel) handlePlan(msg planMsg) fixRunModel {
	m.totalFiles = msg.files
	m.environment = msg.environment
	m.completedCount = 0
	m.progressPercent = 0
	m.rendered = true

	return m
}

func (m fixRunModel) handleStartFile(msg startFileMsg) fixRunModel {
	m.currentFile = msg.path
	m.currentIndex = msg.index
	m.currentStatus = "running"
	m.rendered = true

	if msg.total > 0 {
		m.totalFiles = msg.total
	}

	return m
}

func (m fixRunModel) handleWarning(msg warningMsg) fixRunModel {
	detail := msg.warning.Title
	if len(msg.warning.Detail) > 0 {
		detail = detail + "\n" + strings.Join(msg.warning.Detail, "\n")
	}

	m.results = append(m.results, blockResult{
		file:    string(msg.warning.File),
		line:    msg.warning.Line,
		outcome: "warning",
		detail:  detail,
	})

	m.syncResultsList()

	return m
}

func (m fixRunModel) handleCompletedFile(msg completedFileMsg) fixRunModel {
	m.completedCount++
	m.currentStatus = fmt.Sprintf("%d block(s)", len(msg.fix.Blocks))

	for _, block := range msg.fix.Blocks {
		m.results = append(m.results, blockResult{
			file:    string(block.File),
			line:    block.Line,
			kind:    string(block.Kind),
			outcome: string(block.Outcome),
			detail:  block.Detail,
		})
	}

	m.syncResultsList()

	if m.totalFiles > 0 {
		m.progressPercent = float64(m.completedCount) / float64(m.totalFiles)
		// Mark as finished when all files are done
		if m.completedCount == m.totalFiles {
			m.runFinished = true
		}
	}

	return m
}

func (m fixRunModel) handleSummary(msg summaryMsg) fixRunModel {
	m.rendered = true
	m.runFinished = true
	m.progressPercent = 1

	// A live run already accumulated its rows; only a saved report
	// viewed after the fact needs populating here.
	if len(m.results) > 0 {
		return m
	}

	for _, file := range msg.report.Files {
		for _, block := range file.Blocks {
			m.results = append(m.results, blockResult{
				file:    string(block.File),
				line:    block.Line,
				kind:    string(block.Kind),
				outcome: string(block.Outcome),
				detail:  block.Detail,
			})
		}
	}

	for _, warning := range msg.report.Warnings {
		detail := warning.Title
		if len(warning.Detail) > 0 {
			detail = detail + "\n" + strings.Join(warning.Detail, "\n")
		}

		m.results = append(m.results, blockResult{
			file:    string(warning.File),
			line:    warning.Line,
			outcome: "warning",
			detail:  detail,
		})
	}

	m.syncResultsList()

	return m
}

func (m *fixRunModel) syncResultsList() {
	items := make([]list.Item, 0, len(m.results))

	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)
}

func (m fixRunModel) handleKeyMsg(msg tea.KeyMsg) (fixRunModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if m.runFinished {
			if msg.String() == "enter" || msg.String() == " " {
				m.toggleSelectedDetail()
				return m, nil
			}

			var newList list.Model

			newList, cmd = m.resultsList.Update(msg)
			m.resultsList = newList

			// Detect selection change to reset animation
			if m.resultsList.Index() != m.lastSelected {
				m.lastSelected = m.resultsList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.resultsList.SetDelegate(m.delegate)
				m.showDetail = false
				m.selectedDetail = ""
				m.selectedPath = ""
			}

			return m, cmd
		}
	}

	return m, nil
}

func (m fixRunModel) handleMouseMsg(msg tea.MouseMsg) (fixRunModel, tea.Cmd) {
	var cmd tea.Cmd

	if !m.runFinished {
		return m, nil
	}

	var newList list.Model

	newList, cmd = m.resultsList.Update(msg)
	m.resultsList = newList

	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
		m.showDetail = false
		m.selectedDetail = ""
		m.selectedPath = ""
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.resultsList.FilterState() != list.Filtering {
		m.toggleSelectedDetail()
	}

	return m, cmd
}

func (m *fixRunModel) toggleSelectedDetail() {
	item := m.resultsList.SelectedItem()

	result, ok := item.(blockResult)
	if !ok {
		return
	}

	detail := strings.TrimSpace(result.detail)
	if detail == "" {
		m.showDetail = false
		m.selectedDetail = ""

		return
	}

	if m.showDetail && m.selectedDetail == detail {
		m.showDetail = false
		m.selectedDetail = ""
		m.selectedPath = ""

		return
	}

	m.showDetail = true
	m.selectedDetail = detail
	m.selectedPath = result.file
}

func (m fixRunModel) detailMaxLines() int {
	maxLines := m.height / 3
	if maxLines < 6 {
		maxLines = 6
	}

	if maxLines > 20 {
		maxLines = 20
	}

	return maxLines
}

func (m fixRunModel) detailBoxHeight() int {
	if !m.showDetail {
		return 0
	}

	detail := strings.TrimSpace(m.selectedDetail)
	if detail == "" {
		return 0
	}

	lines := strings.Split(detail, "\n")

	maxLines := m.detailMaxLines()
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return len(lines) + 3
}

func (m fixRunModel) renderDetailBox(accentColor lipgloss.Color, width int) (string, int) {
	if !m.showDetail {
		return "", 0
	}

	detail := strings.TrimSpace(m.selectedDetail)
	if detail == "" {
		return "", 0
	}

	lines := strings.Split(detail, "\n")
	maxLines := m.detailMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDetailLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, truncateFile("…", contentWidth))
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true)

	headerText := "Detail"
	if m.selectedPath != "" {
		headerText = fmt.Sprintf("Detail • %s", m.selectedPath)
	}

	header := headerStyle.Render(truncateFile(headerText, contentWidth))

	body := lipgloss.JoinVertical(lipgloss.Left, bodyLines...)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))

	return box, lipgloss.Height(box)
}

func renderDetailLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(trimmed, "report expected:"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(trimmed, "file line"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(trimmed, "Traceback"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case trimmed == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return style.Render(truncateFile(line, width))
}

func (m fixRunModel) handleWindowSize(msg tea.WindowSizeMsg) fixRunModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m fixRunModel) handleTickMsg(_ tickMsg) (fixRunModel, tea.Cmd) {
	// Keep the UI responsive
	if m.runFinished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
