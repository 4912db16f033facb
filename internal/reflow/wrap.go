package reflow

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// fill greedily wraps text to the given column width. The first output line
// is prefixed with initial, every later line with subsequent. Words are
// whitespace-delimited and never broken on hyphens; whitespace runs between
// words are kept as they appear in the source, while whitespace at a chosen
// break point is dropped. A word wider than the available width is emitted
// intact on its own line and may exceed the width.
//
// Note that initial carries no trailing space: the text's own leading space
// (the one that followed the `%` marker) is kept on the first line, so the
// two compose to e.g. "% foo".
func fill(text string, width int, initial, subsequent string) string {
	chunks := splitChunks(normalizeSpace(text))

	var lines []string
	i := 0
	for i < len(chunks) {
		indent := subsequent
		if len(lines) == 0 {
			indent = initial
		}
		avail := width - runewidth.StringWidth(indent)

		// Whitespace left over from the previous break goes away. The first
		// line keeps its leading space, see above.
		if len(lines) > 0 && chunks[i][0] == ' ' {
			i++
			if i == len(chunks) {
				break
			}
		}

		var sb strings.Builder
		cur := 0
		for i < len(chunks) {
			w := runewidth.StringWidth(chunks[i])
			if cur > 0 && cur+w > avail {
				break
			}
			sb.WriteString(chunks[i])
			cur += w
			i++
		}
		line := strings.TrimRight(sb.String(), " ")
		if line == "" {
			// Only whitespace fit in front of an overlong word. Discard it
			// and retry so the word lands right after the prefix instead of
			// leaving a line with nothing but the prefix on it.
			continue
		}
		lines = append(lines, indent+line)
	}
	return strings.Join(lines, "\n")
}

// normalizeSpace maps every whitespace character to a plain space so width
// accounting and chunking only ever deal with ' '.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

// splitChunks slices s into alternating runs of spaces and non-spaces.
// Assumes normalizeSpace has already run.
func splitChunks(s string) []string {
	var chunks []string
	for len(s) > 0 {
		n := 1
		if s[0] == ' ' {
			for n < len(s) && s[n] == ' ' {
				n++
			}
		} else {
			for n < len(s) && s[n] != ' ' {
				n++
			}
		}
		chunks = append(chunks, s[:n])
		s = s[n:]
	}
	return chunks
}
