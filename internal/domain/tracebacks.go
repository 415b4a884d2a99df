package domain

import (
	"regexp"
	"strings"
)

// tracebackHeader opens every interpreter traceback.
const tracebackHeader = "Traceback (most recent call last):"

// elisionLine stands in for traceback frames that were dropped.
const elisionLine = "..."

var (
	moduleNotFoundRe = regexp.MustCompile(`ModuleNotFoundError: No module named '([^']+)'`)
	nameErrorRe      = regexp.MustCompile(`^NameError: name '([^']+)' is not defined`)
	frameFileRe      = regexp.MustCompile(`^(\s+)File "([^"]+)"(.*)$`)
)

// isTraceback reports whether got output is an interpreter traceback.
func isTraceback(got []string) bool {
	for _, line := range got {
		if strings.TrimSpace(line) == "" {
			continue
		}

		return strings.TrimSpace(line) == tracebackHeader
	}

	return false
}

// moduleNotFound extracts the module name from a ModuleNotFoundError.
func moduleNotFound(got []string) (string, bool) {
	for _, line := range got {
		if match := moduleNotFoundRe.FindStringSubmatch(line); match != nil {
			return match[1], true
		}
	}

	return "", false
}

// collapseTraceback reduces a traceback to its three-line short form:
// the header, an ellipsis, and the final error line.
func collapseTraceback(got []string) []string {
	return []string{tracebackHeader, elisionLine, lastErrorLine(got)}
}

// lastErrorLine returns the final non-blank line of the traceback.
func lastErrorLine(got []string) string {
	for i := len(got) - 1; i >= 0; i-- {
		if strings.TrimSpace(got[i]) != "" {
			return strings.TrimRight(got[i], " \t")
		}
	}

	return ""
}

// cleanTraceback keeps the full traceback but elides leading frames whose
// path matches an internal marker and abbreviates absolute paths in the
// frames that remain.
func cleanTraceback(got []string, markers []string) []string {
	headerAt := -1

	for i, line := range got {
		if strings.TrimSpace(line) == tracebackHeader {
			headerAt = i
			break
		}
	}

	if headerAt < 0 {
		return got
	}

	rest := got[headerAt+1:]
	out := []string{got[headerAt]}

	elided := false
	keeping := false

	i := 0
	for i < len(rest) {
		match := frameFileRe.FindStringSubmatch(rest[i])
		if match == nil {
			break
		}

		end := i + 1
		for end < len(rest) && frameBodyLine(rest[end], match[1]) {
			end++
		}

		if !keeping && pathMatchesAny(match[2], markers) {
			elided = true
			i = end

			continue
		}

		if elided && !keeping {
			out = append(out, "  "+elisionLine)
		}

		keeping = true

		for k := i; k < end; k++ {
			out = append(out, abbreviateFramePath(rest[k]))
		}

		i = end
	}

	if elided && !keeping {
		out = append(out, "  "+elisionLine)
	}

	out = append(out, rest[i:]...)

	return out
}

// frameBodyLine reports whether line belongs to the frame whose File line
// is indented by frameIndent (source echoes are indented deeper).
func frameBodyLine(line, frameIndent string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	return len(indent) > len(frameIndent)
}

func pathMatchesAny(path string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(path, marker) {
			return true
		}
	}

	return false
}

// abbreviateFramePath shortens an absolute frame path to its last two
// components so rewritten tracebacks stay machine independent.
func abbreviateFramePath(line string) string {
	match := frameFileRe.FindStringSubmatch(line)
	if match == nil {
		return line
	}

	path := match[2]
	if !strings.HasPrefix(path, "/") {
		return line
	}

	parts := strings.Split(path, "/")
	if len(parts) > 2 {
		path = ".../" + strings.Join(parts[len(parts)-2:], "/")
	}

	return match[1] + `File "` + path + `"` + match[3]
}

// bareNameError reports a NameError that has no user frame left once
// internal frames are cleaned away. Such failures come from a name that
// was never defined at the example's top level.
func bareNameError(got []string, markers []string) (string, bool) {
	if !isTraceback(got) {
		return "", false
	}

	clean := cleanTraceback(got, markers)
	for _, line := range clean {
		if frameFileRe.MatchString(line) {
			return "", false
		}
	}

	match := nameErrorRe.FindStringSubmatch(lastErrorLine(clean))
	if match == nil {
		return "", false
	}

	return match[1], true
}
