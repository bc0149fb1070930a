package state

import "github.com/glabrego/gallery-cli/internal/gallery"

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func PageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	headerLines := 6
	if hasStatus {
		headerLines += 2
	}
	step := height - headerLines
	if step < 3 {
		step = 3
	}
	return step
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

// MoveGroupCursor moves cursor by delta selectable rows, skipping headings
// and dividers. It stops at the first or last selectable row.
func MoveGroupCursor(groups []gallery.Group, cursor, delta int) int {
	if len(groups) == 0 {
		return 0
	}
	cursor = SnapGroupCursor(groups, cursor)
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for ; delta > 0; delta-- {
		next := cursor + step
		for next >= 0 && next < len(groups) && !groups[next].Selectable() {
			next += step
		}
		if next < 0 || next >= len(groups) {
			break
		}
		cursor = next
	}
	return cursor
}

// SnapGroupCursor returns cursor when it rests on a selectable row, otherwise
// the nearest selectable row below it, then above it.
func SnapGroupCursor(groups []gallery.Group, cursor int) int {
	if len(groups) == 0 {
		return 0
	}
	cursor = ClampCursor(cursor, len(groups))
	if groups[cursor].Selectable() {
		return cursor
	}
	for i := cursor + 1; i < len(groups); i++ {
		if groups[i].Selectable() {
			return i
		}
	}
	for i := cursor - 1; i >= 0; i-- {
		if groups[i].Selectable() {
			return i
		}
	}
	return cursor
}
