package domain

import (
	"fmt"
	"strings"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// FixOptions carries the per-run switches that shape reconciliation.
type FixOptions struct {
	Long           bool
	OnlyTags       bool
	KeepBoth       bool
	FullTracebacks bool
	Probe          []string
	Environment    string
	Venv           string
	Overwrite      bool
	Output         m.Path // explicit output path, used by the legacy call form
	Verbose        bool
}

// blankLineMarker stands for an empty line inside recorded output.
const blankLineMarker = "<BLANKLINE>"

// Tags marking the two copies written in keep-both mode.
const (
	expectedTagName = "EXPECTED"
	gotTagName      = "GOT"
)

// reconciler applies failure blocks to one file's line buffer.
type reconciler struct {
	buf      *lineBuffer
	syntax   m.Syntax
	features m.Features
	opts     FixOptions
	fileTags m.TagSet
	warnings []m.Warning
}

func newReconciler(buf *lineBuffer, syntax m.Syntax, features m.Features, fileTags m.TagSet, opts FixOptions) *reconciler {
	if fileTags == nil {
		fileTags = m.TagSet{}
	}

	return &reconciler{
		buf:      buf,
		syntax:   syntax,
		features: features,
		opts:     opts,
		fileTags: fileTags,
	}
}

// apply reconciles a single failure block against the buffer and reports
// what happened to it.
func (r *reconciler) apply(block m.Block) m.BlockFix {
	fix := m.BlockFix{
		File:    block.File,
		Line:    block.Line,
		Kind:    block.Kind,
		Outcome: m.OutcomeSkipped,
	}

	if block.Line > r.buf.Len() {
		r.warn(block, "failure points outside the file", nil)

		return fix
	}

	if notes := r.applyAdvice(block); len(notes) > 0 {
		fix.Outcome = m.OutcomeTagged
		fix.Detail = strings.Join(notes, "; ")
	}

	switch block.Kind {
	case m.BlockTagAdvice:
		return fix
	case m.BlockException:
		return r.applyException(block, fix)
	default:
		return r.applyOutput(block, fix)
	}
}

// applyOutput splices the observed output over the recorded output for the
// plain mismatch kinds.
func (r *reconciler) applyOutput(block m.Block, fix m.BlockFix) m.BlockFix {
	if r.opts.OnlyTags {
		return fix
	}

	_, exampleEnd := r.exampleSpan(block.Line)

	start := exampleEnd + 1
	end := exampleEnd + len(block.Expected)

	if !r.verifyExpected(block, exampleEnd) {
		return fix
	}

	got := r.renderGot(block, block.Got)

	if r.opts.KeepBoth {
		r.keepBoth(block, end, got)

		fix.Outcome = m.OutcomeUpdated
		fix.Detail = "kept expected and got versions"

		return fix
	}

	switch block.Kind {
	case m.BlockWrongOutput:
		r.spliceRegion(block, start, end, got)
	case m.BlockUnexpectedOutput:
		r.buf.Append(exampleEnd, got...)
	case m.BlockMissingOutput:
		r.spliceRegion(block, start, end, nil)
	}

	fix.Outcome = m.OutcomeUpdated

	return fix
}

// applyException reconciles a block whose example raised. The recorded
// output is not part of the report here, so the region to replace is read
// from the live buffer.
func (r *reconciler) applyException(block m.Block, fix m.BlockFix) m.BlockFix {
	if mod, ok := moduleNotFound(block.Got); ok {
		return r.applyModuleTag(block, fix, mod)
	}

	if name, ok := bareNameError(block.Got, r.features.InternalMarkers); ok {
		return r.applyNameTag(block, fix, name)
	}

	if r.opts.OnlyTags {
		return fix
	}

	got := collapseTraceback(block.Got)
	if r.opts.FullTracebacks {
		got = cleanTraceback(block.Got, r.features.InternalMarkers)
	}

	start, end := r.expectedRegion(block)
	rendered := r.renderGot(block, got)

	if r.opts.KeepBoth {
		r.keepBoth(block, end, rendered)

		fix.Outcome = m.OutcomeUpdated
		fix.Detail = "kept expected and got versions"

		return fix
	}

	r.spliceRegion(block, start, end, rendered)

	fix.Outcome = m.OutcomeUpdated

	return fix
}

// applyModuleTag turns a missing-module failure into a capability tag on
// the example's first line. When the author asked for an explanation the
// traceback is recorded as well.
func (r *reconciler) applyModuleTag(block m.Block, fix m.BlockFix, mod string) m.BlockFix {
	capability := mod
	if mapped, ok := r.features.Modules[mod]; ok {
		capability = mapped
	}

	el, ok := r.exampleFirstLine(block.Line)
	if !ok {
		r.warn(block, "failing line is not a doctest example", nil)

		return fix
	}

	wantsWhy := el.wantsExplanation()

	el.addTag(m.Tag{Name: capability})
	r.replaceFirstLine(block.Line, el)

	fix.Outcome = m.OutcomeTagged
	fix.Detail = fmt.Sprintf("tagged with %s", capability)

	if wantsWhy && !r.opts.OnlyTags {
		start, end := r.expectedRegion(block)
		r.spliceRegion(block, start, end, r.renderGot(block, collapseTraceback(block.Got)))

		fix.Outcome = m.OutcomeUpdated
	}

	return fix
}

// applyNameTag handles a NameError with no surviving user frame. A known
// name maps to its capability tag; an unknown one is recorded literally so
// the failure stays visible, except in tag-only mode where only recognized
// capabilities may be written.
func (r *reconciler) applyNameTag(block m.Block, fix m.BlockFix, name string) m.BlockFix {
	capability, mapped := r.features.Names[name]
	if !mapped {
		if r.opts.OnlyTags {
			return fix
		}

		capability = fmt.Sprintf("NameError: '%s'", name)
	}

	el, ok := r.exampleFirstLine(block.Line)
	if !ok {
		r.warn(block, "failing line is not a doctest example", nil)

		return fix
	}

	el.addTag(m.Tag{Name: capability})
	r.replaceFirstLine(block.Line, el)

	fix.Outcome = m.OutcomeTagged
	fix.Detail = fmt.Sprintf("tagged with %s", capability)

	return fix
}

// applyAdvice performs the tag edits the harness suggested inside a block.
// The suggestions are independent and may all fire on the same block.
func (r *reconciler) applyAdvice(block m.Block) []string {
	var notes []string

	advice := block.Advice

	if advice.InsertBefore != "" {
		if el, ok := r.exampleFirstLine(block.Line); ok {
			r.buf.InsertBefore(block.Line, el.indent+strings.TrimSpace(advice.InsertBefore))
			notes = append(notes, "inserted block-scoped tag")
		}
	}

	if advice.ReplaceFirst != "" {
		if el, ok := r.exampleFirstLine(block.Line); ok {
			r.replaceFirstLineText(block.Line, el.indent+strings.TrimSpace(advice.ReplaceFirst))
			notes = append(notes, "updated block-scoped tag")
		}
	}

	if advice.CrossRef != "" {
		if note, ok := r.applyCrossRef(block, advice.CrossRef); ok {
			notes = append(notes, note)
		}
	}

	for _, name := range advice.Unneeded {
		el, ok := r.exampleFirstLine(block.Line)
		if !ok || !el.tags.Has(name) {
			continue
		}

		el.removeTag(name)
		r.replaceFirstLine(block.Line, el)
		notes = append(notes, fmt.Sprintf("dropped tag %s", name))
	}

	return notes
}

// applyCrossRef copies the tags of the referenced declaration onto the
// example, skipping those the file already declares.
func (r *reconciler) applyCrossRef(block m.Block, directive string) (string, bool) {
	kind, tags, ok := m.ParseTagComment(directive)
	if !ok {
		return "", false
	}

	add := m.TagSet{}

	for key, tag := range tags {
		if r.fileTags.Has(key) {
			continue
		}

		add[key] = tag
	}

	if len(add) == 0 {
		return "", false
	}

	el, ok := r.exampleFirstLine(block.Line)
	if !ok {
		return "", false
	}

	el.mergeTags(kind, add)
	r.replaceFirstLine(block.Line, el)

	return fmt.Sprintf("added tags %s", strings.Join(add.Names(), ", ")), true
}

// keepBoth tags the original example EXPECTED and appends a duplicate
// tagged GOT with the observed output inlined after the recorded region.
func (r *reconciler) keepBoth(block m.Block, regionEnd int, got []string) {
	if el, ok := r.exampleFirstLine(block.Line); ok {
		el.addTag(m.Tag{Name: expectedTagName})
		r.replaceFirstLine(block.Line, el)
	}

	first, last := r.exampleSpan(block.Line)

	dup := make([]string, 0, last-first+1+len(got))

	for i := first; i <= last; i++ {
		line, ok := r.buf.Line(i)
		if !ok {
			continue
		}

		if i == first {
			line = lastPhysicalLine(line)
			if el, ok := parseExampleLine(line, r.syntax); ok {
				el.removeTag(expectedTagName)
				el.addTag(m.Tag{Name: gotTagName})
				line = el.render()
			}
		}

		dup = append(dup, line)
	}

	dup = append(dup, got...)

	anchor := regionEnd
	if anchor < last {
		anchor = last
	}

	if anchor > r.buf.Len() {
		anchor = r.buf.Len()
	}

	r.buf.Append(anchor, dup...)
}

// verifyExpected checks that the recorded output still in the file matches
// what the harness claims it expected. A drifted file is left alone.
func (r *reconciler) verifyExpected(block m.Block, exampleEnd int) bool {
	for i, want := range block.Expected {
		line, ok := r.buf.Line(exampleEnd + 1 + i)
		if ok && outputEquivalent(lastPhysicalLine(line), want) {
			continue
		}

		r.warn(block, "recorded output does not match the harness report", []string{
			fmt.Sprintf("file line %d: %q", exampleEnd+1+i, line),
			fmt.Sprintf("report expected: %q", want),
		})

		return false
	}

	return true
}

// spliceRegion replaces the slots from start through end with the given
// lines. An empty region appends after the example instead; empty lines
// delete the region.
func (r *reconciler) spliceRegion(block m.Block, start, end int, lines []string) {
	if start > end {
		if len(lines) == 0 {
			return
		}

		_, exampleEnd := r.exampleSpan(block.Line)
		r.buf.Append(exampleEnd, lines...)

		return
	}

	if len(lines) == 0 {
		for i := start; i <= end; i++ {
			r.buf.Delete(i)
		}

		return
	}

	r.buf.Replace(start, lines...)

	for i := start + 1; i <= end; i++ {
		r.buf.Delete(i)
	}
}

// exampleSpan returns the first and last physical line of the example
// starting at line n: its prompt line plus any continuation lines.
func (r *reconciler) exampleSpan(n int) (int, int) {
	last := n

	for i := n + 1; i <= r.buf.Len(); i++ {
		line, ok := r.buf.Line(i)
		if !ok {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == r.syntax.Continuation || strings.HasPrefix(trimmed, r.syntax.Continuation+" ") {
			last = i

			continue
		}

		break
	}

	return n, last
}

// expectedRegion finds the recorded-output lines following the example in
// the live buffer. Exception blocks do not carry the expected text, so it
// has to be read from the source itself.
func (r *reconciler) expectedRegion(block m.Block) (int, int) {
	_, exampleEnd := r.exampleSpan(block.Line)

	exampleLine, _ := r.buf.Line(block.Line)
	minIndent := indentOf(lastPhysicalLine(exampleLine))

	start := exampleEnd + 1
	end := exampleEnd

	for i := start; i <= r.buf.Len(); i++ {
		line, ok := r.buf.Line(i)
		if !ok {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}

		if strings.HasPrefix(trimmed, r.syntax.Prompt) {
			break
		}

		if isDocstringDelimiter(trimmed, r.syntax) {
			break
		}

		if indentOf(line) < minIndent {
			break
		}

		end = i
	}

	return start, end
}

// renderGot prepares observed output lines for insertion at the example's
// indentation. Empty lines become the blank line marker.
func (r *reconciler) renderGot(block m.Block, got []string) []string {
	exampleText, _ := r.buf.Line(block.Line)
	shift := indentShift(indentOf(lastPhysicalLine(exampleText)), got)
	pad := strings.Repeat(" ", shift)

	out := make([]string, 0, len(got))

	for _, line := range got {
		if strings.TrimSpace(line) == "" {
			out = append(out, pad+blankLineMarker)

			continue
		}

		out = append(out, pad+line)
	}

	return out
}

// exampleFirstLine parses the example's first physical line in slot n. The
// slot may have grown a spliced prefix, so only its last physical line is
// the example itself.
func (r *reconciler) exampleFirstLine(n int) (exampleLine, bool) {
	text, ok := r.buf.Line(n)
	if !ok {
		return exampleLine{}, false
	}

	return parseExampleLine(lastPhysicalLine(text), r.syntax)
}

// replaceFirstLine writes the re-rendered example line back into slot n,
// preserving any lines spliced in front of it.
func (r *reconciler) replaceFirstLine(n int, el exampleLine) {
	r.replaceFirstLineText(n, el.render())
}

func (r *reconciler) replaceFirstLineText(n int, text string) {
	current, ok := r.buf.Line(n)
	if !ok {
		return
	}

	phys := strings.Split(current, "\n")
	phys[len(phys)-1] = text
	r.buf.Replace(n, phys...)
}

func (r *reconciler) warn(block m.Block, title string, detail []string) {
	r.warnings = append(r.warnings, m.Warning{
		File:   block.File,
		Line:   block.Line,
		Title:  title,
		Detail: detail,
	})
}

// indentShift computes how far got lines move right to sit at the
// example's indentation. Lines never move left.
func indentShift(exampleIndent int, got []string) int {
	minIndent := -1

	for _, line := range got {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if n := indentOf(line); minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}

	if minIndent < 0 {
		minIndent = 0
	}

	shift := exampleIndent - minIndent
	if shift < 0 {
		shift = 0
	}

	return shift
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// lastPhysicalLine returns the final physical line of a slot's text.
func lastPhysicalLine(text string) string {
	if at := strings.LastIndexByte(text, '\n'); at >= 0 {
		return text[at+1:]
	}

	return text
}

// outputEquivalent compares an output line from the file with one from the
// report, ignoring whitespace differences. The blank line marker matches
// an empty line.
func outputEquivalent(fileLine, reportLine string) bool {
	a := squeeze(fileLine)
	b := squeeze(reportLine)

	if a == blankLineMarker {
		a = ""
	}

	if b == blankLineMarker {
		b = ""
	}

	return a == b
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isDocstringDelimiter(trimmed string, syntax m.Syntax) bool {
	for _, delim := range syntax.Docstrings {
		if delim == "" {
			continue
		}

		if strings.HasPrefix(trimmed, delim) || strings.HasSuffix(trimmed, delim) {
			return true
		}
	}

	return false
}
