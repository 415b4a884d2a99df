package domain

import (
	"strings"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// exampleLine is a parsed doctest prompt or continuation line.
type exampleLine struct {
	indent     string
	marker     string // the prompt or continuation token
	code       string // statement text without the trailing comment
	pre        string // comment text preceding the tag directive, if any
	rawComment string // the original trailing comment, '#' included
	kind       m.TagKind
	tags       m.TagSet // nil when the line carries no directive
}

// parseExampleLine splits a source line into prompt, statement and trailing
// directive parts. ok is false when the line is not an example line.
func parseExampleLine(line string, syntax m.Syntax) (exampleLine, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	var marker string

	switch {
	case strings.HasPrefix(trimmed, syntax.Prompt+" ") || trimmed == syntax.Prompt:
		marker = syntax.Prompt
	case strings.HasPrefix(trimmed, syntax.Continuation+" ") || trimmed == syntax.Continuation:
		marker = syntax.Continuation
	default:
		return exampleLine{}, false
	}

	rest := strings.TrimPrefix(trimmed, marker)
	rest = strings.TrimPrefix(rest, " ")

	el := exampleLine{indent: indent, marker: marker}

	code, comment := splitTrailingComment(rest)
	el.code = strings.TrimRight(code, " \t")
	el.rawComment = comment

	if comment == "" {
		return el, true
	}

	// The directive may sit after a free-form comment on the same line, so
	// try every '#' position in turn.
	for j := 0; j < len(comment); j++ {
		if comment[j] != '#' {
			continue
		}

		kind, tags, ok := m.ParseTagComment(comment[j:])
		if !ok {
			continue
		}

		el.kind = kind
		el.tags = tags
		el.pre = strings.TrimSpace(strings.TrimPrefix(comment[:j], "#"))

		return el, true
	}

	el.pre = strings.TrimSpace(strings.TrimPrefix(comment, "#"))

	return el, true
}

// splitTrailingComment cuts rest into statement text and trailing comment.
// Hash characters inside string literals do not start a comment. The
// returned comment keeps its leading '#'.
func splitTrailingComment(rest string) (string, string) {
	var inSingle, inDouble bool

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return rest[:i], rest[i:]
			}
		}
	}

	return rest, ""
}

// isTagOnly reports whether the line declares tags without running code.
// Such lines make their tags persistent for the rest of the block.
func (el exampleLine) isTagOnly() bool {
	return el.code == "" && len(el.tags) > 0
}

// wantsExplanation reports whether the author asked for the reason behind
// a failure to be kept alongside the tag.
func (el exampleLine) wantsExplanation() bool {
	comment := strings.ToLower(el.rawComment)

	return strings.Contains(comment, "why") || strings.Contains(comment, "explain")
}

func (el *exampleLine) addTag(tag m.Tag) {
	if el.tags == nil {
		el.tags = m.TagSet{}
		el.kind = m.TagNeeds
	}

	el.tags.Add(tag)
}

func (el *exampleLine) mergeTags(kind m.TagKind, tags m.TagSet) {
	if el.tags == nil {
		el.tags = m.TagSet{}
		el.kind = kind
	}

	el.tags.Merge(tags)
}

func (el *exampleLine) removeTag(name string) {
	delete(el.tags, strings.ToLower(name))
}

func (el exampleLine) kindOrDefault() m.TagKind {
	if el.kind == "" {
		return m.TagNeeds
	}

	return el.kind
}

// render reassembles the line. Lines are only rendered after their tag set
// changed, so spacing in front of the comment is normalized to two spaces.
func (el exampleLine) render() string {
	var b strings.Builder

	b.WriteString(el.indent)
	b.WriteString(el.marker)

	if el.code != "" {
		b.WriteString(" ")
		b.WriteString(el.code)
	}

	var parts []string

	if el.pre != "" {
		parts = append(parts, "# "+el.pre)
	}

	if rendered := el.tags.Render(el.kindOrDefault()); rendered != "" {
		parts = append(parts, rendered)
	}

	if len(parts) > 0 {
		b.WriteString("  ")
		b.WriteString(strings.Join(parts, "  "))
	}

	return b.String()
}
