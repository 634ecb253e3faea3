// Package diffscan locates unified-diff hunk headers relative to a cursor
// position.
//
// Hunk headers only describe the block that follows them, so the nearest
// header at or above the cursor is the authoritative one for "what file
// region does this diff line correspond to". The scan is line-based and has
// no knowledge of file boundaries: in a multi-file diff a cursor below one
// file's last hunk can match a header belonging to the previous file. That
// is a documented limitation of the scan, not something it tries to fix.
package diffscan

import (
	"regexp"
	"strconv"
	"strings"
)

// hunkHeaderRegex matches the unified diff hunk header form
// "@@ -old_start,old_count +new_start,new_count @@"; any trailing hunk
// label after the closing @@ is ignored. Headers missing a capture group
// (e.g. the single-line "+start @@" shorthand) are treated as non-matches.
var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+),(\d+) \+(\d+),(\d+) @@`)

// Hunk describes the new-file region a hunk header covers.
type Hunk struct {
	// NewStart is the starting line in the new file.
	NewStart int
	// NewCount is the number of lines the hunk spans in the new file.
	NewCount int
}

// Locate scans backward from cursorLine (a zero-based index into lines,
// inclusive) for the nearest hunk header and returns the new-file start and
// count it declares. The second return is false when no header exists at or
// above the cursor.
//
// A cursorLine at or beyond len(lines) clamps to the last line, so callers
// can pass an end-of-buffer cursor without adjustment.
func Locate(lines []string, cursorLine int) (Hunk, bool) {
	if len(lines) == 0 {
		return Hunk{}, false
	}
	if cursorLine >= len(lines) {
		cursorLine = len(lines) - 1
	}

	for i := cursorLine; i >= 0; i-- {
		m := hunkHeaderRegex.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		start, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(m[4])
		if err != nil {
			continue
		}
		return Hunk{NewStart: start, NewCount: count}, true
	}

	return Hunk{}, false
}

// LocateInText is Locate over newline-separated text.
func LocateInText(text string, cursorLine int) (Hunk, bool) {
	return Locate(strings.Split(text, "\n"), cursorLine)
}

// LocateSentinel is the compatibility form of Locate: it returns (0, 0)
// when no hunk header is found. Callers must branch on a zero count rather
// than treat the sentinel as an error; the sentinel is ambiguous with a
// genuine zero-length hunk, which is why Locate exists.
func LocateSentinel(lines []string, cursorLine int) (newStart, newCount int) {
	h, ok := Locate(lines, cursorLine)
	if !ok {
		return 0, 0
	}
	return h.NewStart, h.NewCount
}
