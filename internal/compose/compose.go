// Package compose builds the outbound text block sent to a claude session.
//
// The downstream consumer is a conversational agent parsing free text, so
// there is no strict grammar, but field ordering and the blank-line
// separators are a stable formatting contract: File name, line number,
// optional line count, then the user's message verbatim.
package compose

import (
	"fmt"
	"strings"
)

// Location identifies the file region a message refers to.
type Location struct {
	// FileName is the file the message is about.
	FileName string
	// Line is the line number in the file.
	Line int
	// LineCount is the number of lines the region spans. A zero count
	// omits the "line count" segment entirely; this mirrors the hunk
	// locator's (0, 0) sentinel.
	LineCount int
}

// Message formats a user message with optional location context.
//
// With a location, the output is:
//
//	File name: <file>\n\nline number: <line>\n\n[line count: <count>\n\n]<message>
//
// Without one, the message is returned verbatim.
func Message(loc *Location, message string) string {
	if loc == nil {
		return message
	}

	var b strings.Builder
	fmt.Fprintf(&b, "File name: %s\n\n", loc.FileName)
	fmt.Fprintf(&b, "line number: %d\n\n", loc.Line)
	if loc.LineCount != 0 {
		fmt.Fprintf(&b, "line count: %d\n\n", loc.LineCount)
	}
	b.WriteString(message)
	return b.String()
}
