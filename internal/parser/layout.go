package parser

import (
	"regexp"
	"strings"
)

// columnSeparator matches a run of three or more spaces, or any run
// containing a tab character.
var columnSeparator = regexp.MustCompile(`[ \t]*\t[ \t]*| {3,}`)

const garbageChars = ".-|: "

// NormalizeLayout splits raw OCR text into an ordered sequence of chunks.
// It is pure and restartable: the same input always yields the same
// sequence in the same order.
func NormalizeLayout(text string) []Chunk {
	var chunks []Chunk
	lines := strings.Split(text, "\n")
	for lineIdx, line := range lines {
		fields := splitColumns(line)
		stripped := make([]string, 0, len(fields))
		for _, f := range fields {
			s := stripGarbage(f)
			if s != "" {
				stripped = append(stripped, s)
			}
		}
		if len(stripped) >= 2 {
			last := stripped[len(stripped)-1]
			if len([]rune(last)) == 1 {
				stripped = stripped[:len(stripped)-1]
			}
		}
		for col, s := range stripped {
			chunks = append(chunks, Chunk{Text: s, Line: lineIdx, Col: col})
		}
	}
	return chunks
}

func splitColumns(line string) []string {
	if !strings.Contains(line, "\t") && !hasRunOf3Spaces(line) {
		return []string{line}
	}
	return columnSeparator.Split(line, -1)
}

func hasRunOf3Spaces(s string) bool {
	run := 0
	for _, r := range s {
		if r == ' ' {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

func stripGarbage(s string) string {
	return strings.Trim(s, garbageChars)
}

// DebugParseLayout exposes the column-split of a single input string for
// diagnostic tooling; it mirrors NormalizeLayout but returns plain strings.
func DebugParseLayout(text string) []string {
	chunks := NormalizeLayout(text)
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
