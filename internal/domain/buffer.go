// Package domain implements the doctest reconciliation engine.
package domain

import "strings"

// lineBuffer holds a file's lines in index-stable slots. Slot n-1 keeps the
// 1-based line n addressable while failure blocks are applied, even after
// earlier slots grow, shrink or disappear. Indices only move when Flatten
// joins the surviving text back together.
type lineBuffer struct {
	slots []bufferSlot
	dirty bool
}

type bufferSlot struct {
	text    string
	deleted bool
}

func newLineBuffer(content string) *lineBuffer {
	lines := strings.Split(content, "\n")
	slots := make([]bufferSlot, len(lines))

	for i, line := range lines {
		slots[i].text = line
	}

	return &lineBuffer{slots: slots}
}

// Len returns the slot count, equal to the original line count.
func (b *lineBuffer) Len() int {
	return len(b.slots)
}

// Line returns the current text of slot n (1-based). Deleted and
// out-of-range slots report ok=false.
func (b *lineBuffer) Line(n int) (string, bool) {
	if n < 1 || n > len(b.slots) || b.slots[n-1].deleted {
		return "", false
	}

	return b.slots[n-1].text, true
}

// Replace swaps the text of slot n for the given lines.
func (b *lineBuffer) Replace(n int, lines ...string) {
	if n < 1 || n > len(b.slots) {
		return
	}

	b.slots[n-1] = bufferSlot{text: strings.Join(lines, "\n")}
	b.dirty = true
}

// Append adds lines after the current content of slot n. Appending to a
// deleted slot revives it with just the new lines.
func (b *lineBuffer) Append(n int, lines ...string) {
	if n < 1 || n > len(b.slots) || len(lines) == 0 {
		return
	}

	slot := &b.slots[n-1]
	if slot.deleted {
		slot.deleted = false
		slot.text = strings.Join(lines, "\n")
	} else {
		slot.text += "\n" + strings.Join(lines, "\n")
	}

	b.dirty = true
}

// InsertBefore splices lines in front of slot n without shifting indices.
func (b *lineBuffer) InsertBefore(n int, lines ...string) {
	if len(lines) == 0 || len(b.slots) == 0 {
		return
	}

	if n <= 1 {
		slot := &b.slots[0]
		if slot.deleted {
			slot.deleted = false
			slot.text = strings.Join(lines, "\n")
		} else {
			slot.text = strings.Join(lines, "\n") + "\n" + slot.text
		}

		b.dirty = true

		return
	}

	b.Append(n-1, lines...)
}

// Delete marks slot n deleted. The slot keeps its position so later line
// numbers stay valid.
func (b *lineBuffer) Delete(n int) {
	if n < 1 || n > len(b.slots) || b.slots[n-1].deleted {
		return
	}

	b.slots[n-1] = bufferSlot{deleted: true}
	b.dirty = true
}

// Dirty reports whether any slot changed since construction.
func (b *lineBuffer) Dirty() bool {
	return b.dirty
}

// Flatten joins the surviving slots back into file content. A buffer that
// was never modified reproduces its input byte for byte.
func (b *lineBuffer) Flatten() string {
	parts := make([]string, 0, len(b.slots))

	for _, slot := range b.slots {
		if slot.deleted {
			continue
		}

		parts = append(parts, slot.text)
	}

	return strings.Join(parts, "\n")
}
