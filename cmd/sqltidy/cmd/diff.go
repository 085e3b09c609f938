package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	diffHeader  = color.New(color.Bold)
	diffRemoved = color.New(color.FgRed)
	diffAdded   = color.New(color.FgGreen)
)

// printDiff prints a minimal colored diff between the original and formatted
// source: common leading and trailing lines are elided, and the differing
// block is shown as removed/added lines.
func printDiff(w io.Writer, path, before, after string) {
	beforeLines := splitLines(before)
	afterLines := splitLines(after)

	prefix := commonPrefix(beforeLines, afterLines)
	suffix := commonSuffix(beforeLines[prefix:], afterLines[prefix:])

	diffHeader.Fprintf(w, "--- %s\n", path)
	diffHeader.Fprintf(w, "+++ %s (formatted)\n", path)
	fmt.Fprintf(w, "@@ line %d @@\n", prefix+1)

	for _, l := range beforeLines[prefix : len(beforeLines)-suffix] {
		diffRemoved.Fprintf(w, "-%s\n", l)
	}
	for _, l := range afterLines[prefix : len(afterLines)-suffix] {
		diffAdded.Fprintf(w, "+%s\n", l)
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
