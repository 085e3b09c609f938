// Package splitter implements the reflow pass: it takes the lines built by
// the depth engine and re-splits any line whose rendering is too long, using
// the split markers the engine recorded. Splitting never mutates existing
// nodes; new lines are rebuilt by replaying node tokens.
package splitter

import (
	"strings"

	"github.com/sqltidy/sqltidy/pkg/line"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

// Split re-splits l into one or more lines so that, where the split markers
// allow it, each rendered line fits within maxLen characters. A line with no
// usable split point is returned unchanged, however long.
func Split(l *line.Line, maxLen int) ([]*line.Line, error) {
	idx, ok := splitPoint(l)
	if !ok || renderedLen(l) <= maxLen {
		return []*line.Line{l}, nil
	}

	head, tail, err := splitAt(l, idx)
	if err != nil {
		return nil, err
	}

	headLines, err := Split(head, maxLen)
	if err != nil {
		return nil, err
	}
	tailLines, err := Split(tail, maxLen)
	if err != nil {
		return nil, err
	}

	return append(headLines, tailLines...), nil
}

// splitPoint returns the index to split l at: the depth split if usable,
// otherwise the first top-level comma. Indexes at the line's edges are not
// usable (they would produce an empty half).
func splitPoint(l *line.Line) (int, bool) {
	n := contentLen(l)
	for _, idx := range []*int{l.DepthSplit, l.FirstComma} {
		if idx != nil && *idx > 0 && *idx < n {
			return *idx, true
		}
	}
	return 0, false
}

// splitAt divides l's nodes at idx and rebuilds both halves. The head gets a
// synthetic trailing newline; the tail keeps the original one.
func splitAt(l *line.Line, idx int) (*line.Line, *line.Line, error) {
	head, err := line.FromNodes(l.SourceString, l.PreviousNode, l.Nodes[:idx])
	if err != nil {
		return nil, nil, err
	}
	if err := head.AppendNewline(); err != nil {
		return nil, nil, err
	}

	tail, err := line.FromNodes(
		l.SourceString, head.Nodes[len(head.Nodes)-1], l.Nodes[idx:],
	)
	if err != nil {
		return nil, nil, err
	}

	return head, tail, nil
}

// contentLen is the number of nodes excluding a trailing newline.
func contentLen(l *line.Line) int {
	n := len(l.Nodes)
	if n > 0 && l.Nodes[n-1].Token.Type == tokenizer.Newline {
		n--
	}
	return n
}

// renderedLen is the visible width of the line, ignoring the trailing
// newline.
func renderedLen(l *line.Line) int {
	return len(strings.TrimRight(l.String(), "\n"))
}
