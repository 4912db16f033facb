// Package reflow rewraps `%` comment blocks in MATLAB source to a fixed
// line width. It walks a file line by line, buffers runs of consecutive
// reflow-eligible comment lines, and emits everything else verbatim.
package reflow

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configure one reflow pass. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// LineLength is the target wrap width in columns.
	LineLength int
	// IgnoreIndented passes comment lines with inner indentation of two or
	// more spaces through unchanged (hand-formatted lists, code examples).
	IgnoreIndented bool
	// AlternateCapitalHandling starts a new comment block whenever a comment
	// line begins with a capital letter.
	AlternateCapitalHandling bool
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{
		LineLength:               78,
		IgnoreIndented:           true,
		AlternateCapitalHandling: false,
	}
}

// Reflow rewraps the comment blocks in src and returns the rewritten
// content. Input lines may end in \n, \r\n or \r; output always uses \n.
func Reflow(src []byte, opts Options) []byte {
	var out bytes.Buffer
	var buffer []string
	indentLevel := 0

	// flush wraps the buffered comment text to the configured width and
	// empties the buffer. The first wrapped line gets indent+"%", later
	// lines indent+"% ".
	flush := func() {
		if len(buffer) == 0 {
			return
		}
		indent := strings.Repeat(" ", indentLevel)
		out.WriteString(fill(strings.Join(buffer, ""), opts.LineLength, indent+"%", indent+"% "))
		out.WriteByte('\n')
		buffer = buffer[:0]
	}

	// writeLine emits one source line verbatim, flushing any buffered
	// comment text first so ordering is preserved.
	writeLine := func(line string) {
		flush()
		out.WriteString(line)
		out.WriteByte('\n')
	}

	for _, line := range splitLines(src) {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		if !strings.HasPrefix(stripped, "%") {
			writeLine(line)
			continue
		}

		if len(buffer) == 0 {
			// New block: the first line's outer indent applies to every
			// wrapped line derived from it.
			indentLevel = utf8.RuneCountInString(line) - utf8.RuneCountInString(stripped)
		}

		// Strip only the first percent sign so inline ones survive.
		uncommented := strings.TrimRightFunc(stripped[1:], unicode.IsSpace)
		trimmed := strings.TrimLeftFunc(uncommented, unicode.IsSpace)
		innerIndent := utf8.RuneCountInString(uncommented) - utf8.RuneCountInString(trimmed)

		if innerIndent == 0 {
			// Blank comment line (a lone "%" included), always a block break.
			writeLine(line)
			continue
		}
		if opts.IgnoreIndented && innerIndent >= 2 {
			writeLine(line)
			continue
		}
		if opts.AlternateCapitalHandling {
			if r, _ := utf8.DecodeRuneInString(trimmed); unicode.IsUpper(r) {
				// Capital letter opens a new block; the indent level of the
				// previous block carries over, matching how the buffer was
				// started.
				flush()
			}
		}
		buffer = append(buffer, uncommented)
	}

	// File may end inside a comment block.
	flush()
	return out.Bytes()
}

// splitLines splits on universal newlines without producing a trailing empty
// line for content that ends in a newline.
func splitLines(src []byte) []string {
	s := string(src)
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
