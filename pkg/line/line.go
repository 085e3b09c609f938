package line

import (
	"strings"

	"github.com/sqltidy/sqltidy/pkg/tokenizer"
	"github.com/sqltidy/sqltidy/pkg/utils"
)

// Line is an ordered sequence of Nodes representing one logical line of the
// original source, before any reflow. As tokens are appended it maintains
// aggregate depth statistics and records candidate split positions for the
// reflow pass.
//
// A Line is mutable while it is being built and read-only afterward.
type Line struct {
	// SourceString is the raw source line this Line was built from.
	SourceString string

	// PreviousNode is the last node of the prior line, if any. It supplies
	// the depth and bracket stack inherited by this line's first node.
	PreviousNode *Node

	// Nodes is the line's node sequence.
	Nodes []*Node

	// Depth and ChangeInDepth are the line's starting depth and its
	// cumulative depth delta, maintained as nodes are appended.
	Depth         int
	ChangeInDepth int

	// OpenBrackets is the bracket stack as of the line's start.
	OpenBrackets BracketStack

	// DepthSplit is the preferred index at which to split this line, or nil.
	DepthSplit *int

	// FirstComma is the index of the first comma at the line's own nesting
	// level, or nil.
	FirstComma *int
}

// NewLine creates an empty Line. previous is the last node of the prior
// line, or nil for the first line of a query.
func NewLine(source string, previous *Node) *Line {
	l := &Line{SourceString: source, PreviousNode: previous}
	if previous != nil {
		l.Depth = previous.Depth + previous.ChangeInDepth
	}
	return l
}

// FromNodes builds a new Line by replaying the tokens of an existing node
// sequence. The reflow pass uses this to produce re-split lines without
// mutating the originals.
func FromNodes(source string, previous *Node, nodes []*Node) (*Line, error) {
	l := NewLine(source, previous)
	for _, n := range nodes {
		if err := l.AppendToken(n.Token); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// AppendToken creates a new Node from the token and the context of the
// current line, appends it, and updates the line's depth stats and split
// markers.
func (l *Line) AppendToken(token tokenizer.Token) error {
	previous := l.PreviousNode
	if len(l.Nodes) > 0 {
		previous = l.Nodes[len(l.Nodes)-1]
	}

	node, err := NewNode(token, previous)
	if err != nil {
		return err
	}

	if len(l.Nodes) == 0 {
		l.Depth = node.Depth
		l.ChangeInDepth = node.ChangeInDepth
		l.OpenBrackets = node.OpenBrackets
	} else {
		l.ChangeInDepth = node.Depth - l.Depth + node.ChangeInDepth
	}

	// splits happen outside in: on a line that increases depth, split at the
	// first node that increases it; on a line that decreases depth, split at
	// the last node that decreases it
	changeOverNode := node.Depth - node.InheritedDepth + node.ChangeInDepth
	splitIndex := len(l.Nodes)
	if tokenizer.SplitAfter(token.Type) {
		splitIndex++
	}

	if token.Type == tokenizer.Comment {
		l.DepthSplit = utils.Ptr(splitIndex)
	}
	if l.ChangeInDepth < 0 && changeOverNode < 0 && splitIndex > 0 {
		l.DepthSplit = utils.Ptr(splitIndex)
	} else if l.DepthSplit == nil && node.ChangeInDepth > 0 {
		l.DepthSplit = utils.Ptr(splitIndex)
	}

	if token.Type == tokenizer.Comma &&
		node.OpenBrackets.Equal(l.OpenBrackets) &&
		l.FirstComma == nil {
		l.FirstComma = utils.Ptr(splitIndex)
	}

	l.Nodes = append(l.Nodes, node)
	return nil
}

// AppendNewline creates a synthetic newline token positioned immediately
// after the line's last token and appends it through the normal AppendToken
// path, so newline nodes participate in depth and whitespace computation
// like any other token.
func (l *Line) AppendNewline() error {
	var prev *tokenizer.Token
	if len(l.Nodes) > 0 {
		prev = &l.Nodes[len(l.Nodes)-1].Token
	} else if l.PreviousNode != nil {
		prev = &l.PreviousNode.Token
	}

	nl := tokenizer.Token{Type: tokenizer.Newline, Text: "\n"}
	if prev != nil {
		nl.Start = tokenizer.Pos{Line: prev.End.Line, Col: prev.End.Col + 1}
		nl.End = tokenizer.Pos{Line: prev.End.Line, Col: prev.End.Col + 2}
		nl.Line = prev.Line
	} else {
		nl.Start = tokenizer.Pos{Line: 1, Col: 1}
		nl.End = tokenizer.Pos{Line: 1, Col: 2}
	}

	return l.AppendToken(nl)
}

// Tokens returns the underlying tokens of the line's nodes, in order.
func (l *Line) Tokens() []tokenizer.Token {
	tokens := make([]tokenizer.Token, len(l.Nodes))
	for i, n := range l.Nodes {
		tokens[i] = n.Token
	}
	return tokens
}

// StartsWithTopKeyword reports whether the line's first node is a top
// keyword.
func (l *Line) StartsWithTopKeyword() bool {
	return len(l.Nodes) > 0 && l.Nodes[0].Token.Type == tokenizer.TopKeyword
}

// EndsWithComma reports whether the line ends with a comma, allowing for a
// trailing newline.
func (l *Line) EndsWithComma() bool {
	return l.endsWith(tokenizer.Comma)
}

// EndsWithComment reports whether the line ends with a comment, allowing for
// a trailing newline.
func (l *Line) EndsWithComment() bool {
	return l.endsWith(tokenizer.Comment)
}

func (l *Line) endsWith(typ tokenizer.TokenType) bool {
	switch {
	case len(l.Nodes) == 0:
		return false
	case l.Nodes[len(l.Nodes)-1].Token.Type == typ:
		return true
	case len(l.Nodes) > 1 &&
		l.Nodes[len(l.Nodes)-1].Token.Type == tokenizer.Newline &&
		l.Nodes[len(l.Nodes)-2].Token.Type == typ:
		return true
	default:
		return false
	}
}

// String renders the line by concatenating each node's prefix and value. An
// empty line renders to the empty string.
func (l *Line) String() string {
	var b strings.Builder
	for _, n := range l.Nodes {
		b.WriteString(n.String())
	}
	return b.String()
}

// Len returns the rendered length of the line.
func (l *Line) Len() int {
	return len(l.String())
}
