// Package indent infers the indentation style of a text document.
//
// Detect measures the leading whitespace of every non-empty line and tallies
// the absolute change between consecutive lines. A line that keeps the
// previous indentation counts once more towards the last change seen. The
// most frequent change is the indentation amount, and the character kind is
// whichever of spaces or tabs starts more lines, ties going to spaces.
package indent

import (
	"iter"
	"strings"
)

// Detect returns the dominant indentation of text. It never fails: text
// without indented lines yields the zero Result.
func Detect(text string) Result {
	var (
		spaces, tabs int
		prev         int
		current      int
		usages       = make(map[int]*usage)
	)

	for line := range lines(text) {
		if line == "" {
			continue
		}

		width, ch := leadingRun(line)
		switch ch {
		case ' ':
			spaces++
		case '\t':
			tabs++
		}

		diff := width - prev
		prev = width

		if diff != 0 {
			key := abs(diff)
			current = key
			u, ok := usages[key]
			if !ok {
				u = &usage{}
				usages[key] = u
			}
			u.bump()
		} else if current != 0 {
			usages[current].bump()
		}
	}

	amount := mostUsed(usages)
	if amount == 0 {
		return Result{}
	}
	if spaces >= tabs {
		return newResult(amount, Space)
	}
	return newResult(amount, Tab)
}

// lines yields each line of text without its terminator. "\r\n" counts as a
// single terminator and a final line feed does not start another line.
func lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}

// leadingRun measures the run of identical spaces or tabs that starts line.
// Only the first run counts: "  \tx" has width 2. ch is 0 when the line does
// not start with whitespace.
func leadingRun(line string) (width int, ch byte) {
	if line == "" {
		return 0, 0
	}
	if _, ok := kindOf(line[0]); !ok {
		return 0, 0
	}
	ch = line[0]
	width = 1
	for width < len(line) && line[width] == ch {
		width++
	}
	return width, ch
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
