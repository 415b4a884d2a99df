package model

import (
	"fmt"
	"sort"
	"strings"
)

// TagKind selects the directive keyword used when rendering a tag comment.
type TagKind string

const (
	// TagOptional marks examples that depend on an optional package.
	TagOptional TagKind = "optional"
	// TagNeeds marks examples that need a runtime capability to be present.
	TagNeeds TagKind = "needs"
)

// Tag is a single entry of a doctest tag directive.
type Tag struct {
	Name        string `yaml:"name"`
	Explanation string `yaml:"explanation,omitempty"`
}

// TagSet holds directive entries keyed by lowercase tag name.
type TagSet map[string]Tag

// NewTagSet builds a TagSet from plain tag names.
func NewTagSet(names ...string) TagSet {
	ts := make(TagSet, len(names))
	for _, name := range names {
		ts.Add(Tag{Name: name})
	}

	return ts
}

// Add inserts or overwrites a tag entry.
func (ts TagSet) Add(tag Tag) {
	ts[strings.ToLower(tag.Name)] = tag
}

// Has reports whether the set contains a tag with the given name.
func (ts TagSet) Has(name string) bool {
	_, ok := ts[strings.ToLower(name)]

	return ok
}

// Merge copies all entries from other into the set.
func (ts TagSet) Merge(other TagSet) {
	for key, tag := range other {
		ts[key] = tag
	}
}

// Clone returns an independent copy of the set.
func (ts TagSet) Clone() TagSet {
	clone := make(TagSet, len(ts))
	for key, tag := range ts {
		clone[key] = tag
	}

	return clone
}

// Names returns the tag names in deterministic order.
func (ts TagSet) Names() []string {
	names := make([]string, 0, len(ts))
	for _, tag := range ts {
		names = append(names, tag.Name)
	}

	sort.Strings(names)

	return names
}

// Render formats the set as a trailing directive comment. An empty set
// renders as an empty string.
func (ts TagSet) Render(kind TagKind) string {
	if len(ts) == 0 {
		return ""
	}

	entries := make([]string, 0, len(ts))

	for _, name := range ts.Names() {
		tag := ts[strings.ToLower(name)]
		if tag.Explanation != "" {
			entries = append(entries, fmt.Sprintf("%s (%s)", tag.Name, tag.Explanation))
		} else {
			entries = append(entries, tag.Name)
		}
	}

	if kind == TagOptional {
		return "# optional - " + strings.Join(entries, ", ")
	}

	return "# needs " + strings.Join(entries, ", ")
}

// ParseTagComment parses a "# optional - ..." or "# needs ..." directive
// comment. The keyword may be separated from its entries by whitespace, a
// dash or a colon. Entries are comma separated and may carry an explanation
// in trailing parentheses.
func ParseTagComment(comment string) (TagKind, TagSet, bool) {
	s := strings.TrimSpace(comment)
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))

	var kind TagKind

	switch {
	case strings.HasPrefix(s, string(TagOptional)):
		kind = TagOptional
		s = strings.TrimPrefix(s, string(TagOptional))
	case strings.HasPrefix(s, string(TagNeeds)):
		kind = TagNeeds
		s = strings.TrimPrefix(s, string(TagNeeds))
	default:
		return "", nil, false
	}

	if s != "" && !isKeywordBoundary(s[0]) {
		return "", nil, false
	}

	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == '-' || s[0] == ':') {
		s = strings.TrimSpace(s[1:])
	}

	tags := TagSet{}
	if s == "" {
		return kind, tags, true
	}

	for _, part := range strings.Split(s, ",") {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}

		tag := Tag{Name: entry}
		if open := strings.LastIndex(entry, "("); open > 0 && strings.HasSuffix(entry, ")") {
			tag.Name = strings.TrimSpace(entry[:open])
			tag.Explanation = strings.TrimSpace(entry[open+1 : len(entry)-1])
		}

		tags.Add(tag)
	}

	return kind, tags, true
}

func isKeywordBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '-' || b == ':'
}
