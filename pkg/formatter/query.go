package formatter

import (
	"strings"

	"github.com/sqltidy/sqltidy/pkg/line"
	"github.com/sqltidy/sqltidy/pkg/splitter"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

// Query holds the source being formatted and the lines built from its token
// stream. Lines are chained: each line's first node inherits depth and
// bracket state from the last node of the line before it.
type Query struct {
	Source string
	Lines  []*line.Line
}

// NewQuery tokenizes src and accumulates the tokens into lines, one per
// source line. A missing trailing newline is synthesized so every line ends
// with a newline node.
func NewQuery(src string) (*Query, error) {
	tokens, err := tokenizer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	q := &Query{Source: src}
	cur := line.NewLine("", nil)

	for _, tok := range tokens {
		if len(cur.Nodes) == 0 {
			cur.SourceString = tok.Line
		}
		if err := cur.AppendToken(tok); err != nil {
			return nil, err
		}
		if tok.Type == tokenizer.Newline {
			q.Lines = append(q.Lines, cur)
			cur = line.NewLine("", cur.Nodes[len(cur.Nodes)-1])
		}
	}

	if len(cur.Nodes) > 0 {
		if err := cur.AppendNewline(); err != nil {
			return nil, err
		}
		q.Lines = append(q.Lines, cur)
	}

	return q, nil
}

// Reflow re-splits every line that exceeds maxLen at its recorded split
// markers.
func (q *Query) Reflow(maxLen int) error {
	var out []*line.Line
	for _, l := range q.Lines {
		parts, err := splitter.Split(l, maxLen)
		if err != nil {
			return err
		}
		out = append(out, parts...)
	}
	q.Lines = out
	return nil
}

// String renders the query by concatenating its lines.
func (q *Query) String() string {
	var b strings.Builder
	for _, l := range q.Lines {
		b.WriteString(l.String())
	}
	return b.String()
}
