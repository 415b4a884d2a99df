package domain

import (
	"strings"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// normalizeTags strips tag directives made redundant by a file-level tag
// or by a block-scoped tag line earlier in the same doctest block. Tags
// carrying an explanation, block-scoped declaration lines themselves and
// the keep-both markers are never touched.
func normalizeTags(lines []string, fileTags m.TagSet, syntax m.Syntax) []string {
	if fileTags == nil {
		fileTags = m.TagSet{}
	}

	out := make([]string, 0, len(lines))
	persistent := m.TagSet{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || isDocstringDelimiter(trimmed, syntax) {
			persistent = m.TagSet{}
			out = append(out, line)

			continue
		}

		el, ok := parseExampleLine(line, syntax)
		if !ok || len(el.tags) == 0 {
			out = append(out, line)

			continue
		}

		if el.tags.Has(expectedTagName) || el.tags.Has(gotTagName) {
			out = append(out, line)

			continue
		}

		// Tag-only prompt lines declare persistent tags for the rest of
		// the block; the declarations themselves are never rewritten.
		if el.isTagOnly() {
			persistent.Merge(el.tags)
			out = append(out, line)

			continue
		}

		changed := false

		for _, name := range el.tags.Names() {
			tag := el.tags[strings.ToLower(name)]
			if tag.Explanation != "" {
				continue
			}

			if fileTags.Has(name) || persistent.Has(name) {
				el.removeTag(name)
				changed = true
			}
		}

		if changed {
			out = append(out, el.render())

			continue
		}

		out = append(out, line)
	}

	return out
}
