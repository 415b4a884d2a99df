package controller

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	m "github.com/mendoc-dev/mendoc/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; plain text output has nothing to wait for.
func (s *SimpleUI) Wait() {}

// DisplayRunPlan prints how many files the run covers.
func (s *SimpleUI) DisplayRunPlan(files int, environment string) {
	if environment != "" {
		s.printf("Fixing doctests in %d file(s), environment %q\n", files, environment)
		return
	}

	s.printf("Fixing doctests in %d file(s)\n", files)
}

// DisplayStartingFileInfo prints the file about to be fixed.
func (s *SimpleUI) DisplayStartingFileInfo(file m.Path, index int, total int) {
	s.printf("[%d/%d] %s\n", index, total, file)
}

// DisplayBlockFix prints the outcome of a single failure block.
func (s *SimpleUI) DisplayBlockFix(fix m.BlockFix) {
	if fix.Detail != "" {
		s.printf("  line %d: %s (%s)\n", fix.Line, fix.Outcome, fix.Detail)
		return
	}

	s.printf("  line %d: %s\n", fix.Line, fix.Outcome)
}

// DisplayWarning prints a non-fatal problem with its detail lines.
func (s *SimpleUI) DisplayWarning(warning m.Warning) {
	caution := color.New(color.FgYellow)

	if warning.Line > 0 {
		_, _ = caution.Fprintf(s.cmd.OutOrStdout(), "warning: %s:%d: %s\n", warning.File, warning.Line, warning.Title)
	} else {
		_, _ = caution.Fprintf(s.cmd.OutOrStdout(), "warning: %s: %s\n", warning.File, warning.Title)
	}

	for _, line := range warning.Detail {
		s.printf("  %s\n", line)
	}
}

// DisplayCompletedFileInfo prints the per-file result line.
func (s *SimpleUI) DisplayCompletedFileInfo(fix m.FileFix) {
	if len(fix.Blocks) == 0 {
		s.printf("  no failures reported\n")
		return
	}

	updated, tagged, skipped := countOutcomes(fix.Blocks)
	s.printf("  %d block(s): %d updated, %d tagged, %d skipped\n", len(fix.Blocks), updated, tagged, skipped)

	if fix.Output != "" {
		s.printf("  wrote %s\n", fix.Output)
	}
}

// DisplayRunSummary prints the per-file result table for a completed run.
func (s *SimpleUI) DisplayRunSummary(report m.RunReport) error {
	if len(report.Files) == 0 {
		s.printf("No files were processed\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Blocks", "Updated", "Tagged", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var totalBlocks, totalUpdated, totalTagged, totalSkipped int

	for _, file := range report.Files {
		updated, tagged, skipped := countOutcomes(file.Blocks)
		table.Append([]string{
			string(file.File),
			fmt.Sprintf("%d", len(file.Blocks)),
			fmt.Sprintf("%d", updated),
			fmt.Sprintf("%d", tagged),
			fmt.Sprintf("%d", skipped),
		})

		totalBlocks += len(file.Blocks)
		totalUpdated += updated
		totalTagged += tagged
		totalSkipped += skipped
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		fmt.Sprintf("%d", totalBlocks),
		fmt.Sprintf("%d", totalUpdated),
		fmt.Sprintf("%d", totalTagged),
		fmt.Sprintf("%d", totalSkipped),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if len(report.Warnings) > 0 {
		s.printf("\n%d warning(s) reported\n", len(report.Warnings))
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func countOutcomes(blocks []m.BlockFix) (updated, tagged, skipped int) {
	for _, block := range blocks {
		switch block.Outcome {
		case m.OutcomeUpdated:
			updated++
		case m.OutcomeTagged:
			tagged++
		case m.OutcomeSkipped:
			skipped++
		}
	}

	return updated, tagged, skipped
}
