package domain

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// reportSeparator divides failure blocks in harness output.
const reportSeparator = "**********************************************************************"

// reportIndent is the indentation the harness applies to block bodies.
const reportIndent = 4

var blockHeaderRe = regexp.MustCompile(`^File "(.+)", line ([0-9]+), in (.+)$`)

var (
	insertBeforeRe = regexp.MustCompile(`Consider using a block-scoped tag by inserting the line '([^']+)' just before this line to avoid repeating the tag`)
	replaceFirstRe = regexp.MustCompile(`Consider updating the block-scoped tag to '([^']+)' to avoid repeating the tag`)
	crossRefRe     = regexp.MustCompile(`was set only in doctest marked '([^']+)'`)
	unneededRe     = regexp.MustCompile(`the tag '([^']+)' may no longer be needed`)
)

// parseReport extracts the failure blocks for one file from harness output.
// Blocks reported against other files are ignored.
func parseReport(output string, file m.Path) []m.Block {
	var blocks []m.Block

	for _, raw := range splitReport(output) {
		block, ok := parseBlock(raw)
		if !ok {
			continue
		}

		if file != "" && !sameFile(block.File, file) {
			continue
		}

		blocks = append(blocks, block)
	}

	return blocks
}

// splitReport cuts harness output into block texts along the separator.
func splitReport(output string) []string {
	var blocks []string

	var current []string

	inBlock := false

	flush := func() {
		if inBlock && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
		}

		current = nil
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, reportSeparator) {
			flush()

			inBlock = true

			continue
		}

		if inBlock {
			current = append(current, line)
		}
	}

	flush()

	return blocks
}

// parseBlock extracts one failure block. Blocks without a recognizable
// header or failure shape are dismissed; there is nothing to fix in them.
func parseBlock(raw string) (m.Block, bool) {
	lines := strings.Split(raw, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	if start == len(lines) {
		return m.Block{}, false
	}

	match := blockHeaderRe.FindStringSubmatch(lines[start])
	if match == nil {
		return m.Block{}, false
	}

	lineNo, err := strconv.Atoi(match[2])
	if err != nil || lineNo < 1 {
		return m.Block{}, false
	}

	block := m.Block{
		File:    m.Path(match[1]),
		Line:    lineNo,
		Context: match[3],
		Advice:  parseAdvice(raw),
		Raw:     raw,
	}

	var hasExpected, hasGot, expectedNothing, gotNothing, exception bool

	idx := start + 1
	for idx < len(lines) {
		switch lines[idx] {
		case "Expected:":
			block.Expected, idx = collectBody(lines, idx+1)
			hasExpected = true
		case "Expected nothing":
			expectedNothing = true
			idx++
		case "Got:":
			block.Got, idx = collectBody(lines, idx+1)
			hasGot = true
		case "Got nothing":
			gotNothing = true
			idx++
		case "Exception raised:":
			block.Got, idx = collectBody(lines, idx+1)
			exception = true
		default:
			idx++
		}
	}

	switch {
	case exception:
		block.Kind = m.BlockException
	case hasExpected && gotNothing:
		block.Kind = m.BlockMissingOutput
	case expectedNothing && hasGot:
		block.Kind = m.BlockUnexpectedOutput
	case hasExpected && hasGot:
		block.Kind = m.BlockWrongOutput
	case hasAdvice(block.Advice):
		block.Kind = m.BlockTagAdvice
	default:
		return m.Block{}, false
	}

	return block, true
}

// collectBody gathers the indented lines following a section marker and
// returns them dedented, together with the index of the first line after
// the body. A non-indented line ends the body.
func collectBody(lines []string, start int) ([]string, int) {
	var body []string

	idx := start
	for idx < len(lines) {
		line := lines[idx]
		if line != "" && !strings.HasPrefix(line, " ") {
			break
		}

		body = append(body, dedentReport(line))
		idx++
	}

	// trailing blanks belong to the report framing, not to the body
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}

	return body, idx
}

// dedentReport strips up to reportIndent leading spaces from a body line.
func dedentReport(line string) string {
	for i := 0; i < reportIndent && line != ""; i++ {
		if line[0] != ' ' {
			break
		}

		line = line[1:]
	}

	return line
}

// parseAdvice scans a block for the harness's tag placement suggestions.
func parseAdvice(raw string) m.TagAdvice {
	advice := m.TagAdvice{}

	if match := insertBeforeRe.FindStringSubmatch(raw); match != nil {
		advice.InsertBefore = match[1]
	}

	if match := replaceFirstRe.FindStringSubmatch(raw); match != nil {
		advice.ReplaceFirst = match[1]
	}

	if match := crossRefRe.FindStringSubmatch(raw); match != nil {
		advice.CrossRef = match[1]
	}

	for _, match := range unneededRe.FindAllStringSubmatch(raw, -1) {
		advice.Unneeded = append(advice.Unneeded, match[1])
	}

	return advice
}

func hasAdvice(advice m.TagAdvice) bool {
	return advice.InsertBefore != "" || advice.ReplaceFirst != "" ||
		advice.CrossRef != "" || len(advice.Unneeded) > 0
}

// sameFile compares the path reported by the harness with the path that
// was handed to it. Harnesses may absolutize paths, so a basename match
// counts when the full paths differ.
func sameFile(reported, invoked m.Path) bool {
	if reported == invoked {
		return true
	}

	return filepath.Base(string(reported)) == filepath.Base(string(invoked))
}
