package line

import (
	"strings"

	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

// indent is one level of indentation in rendered output.
const indent = "    "

// bracketPairs maps each opening bracket to its required closer.
var bracketPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// Node is the formatting record derived from one token. Its depth, prefix,
// and value are resolved when it is created and never change afterward.
//
// Previous is a non-owning back reference to the node's logical predecessor
// in the whole query, which may live on a prior line. OpenBrackets is the
// node's own snapshot of the bracket stack; it is never shared with another
// node.
type Node struct {
	Token          tokenizer.Token
	Previous       *Node
	InheritedDepth int
	Depth          int
	ChangeInDepth  int
	Prefix         string
	Value          string
	OpenBrackets   BracketStack
}

// String renders the node as its prefix followed by its value.
func (n *Node) String() string {
	return n.Prefix + n.Value
}

// NewNode creates a Node from a token and its logical predecessor (nil for
// the first token of a query). Depth, whitespace, and value casing are all
// resolved here; this does most of the formatting of the node.
func NewNode(token tokenizer.Token, previous *Node) (*Node, error) {
	var inherited int
	var brackets BracketStack
	if previous != nil {
		inherited = previous.Depth + previous.ChangeInDepth
		brackets = previous.OpenBrackets.Copy()
	}

	depth, changeAfter, brackets, err := calculateDepth(token, inherited, brackets)
	if err != nil {
		return nil, err
	}

	var prevToken *tokenizer.Token
	firstOnLine := previous == nil || previous.Token.Type == tokenizer.Newline
	if !firstOnLine {
		prevToken = &previous.Token
	}

	return &Node{
		Token:          token,
		Previous:       previous,
		InheritedDepth: inherited,
		Depth:          depth,
		ChangeInDepth:  changeAfter,
		Prefix:         whitespace(token, firstOnLine, depth, prevToken),
		Value:          capitalize(token),
		OpenBrackets:   brackets,
	}, nil
}

// calculateDepth computes a node's resolved depth, the depth change it
// imposes on subsequent tokens, and the resulting bracket stack.
//
// A token can affect its own node's indentation (changeBefore) and/or the
// indentation of the next node (changeAfter), so we start from the inherited
// depth and adjust based on the token's classification.
func calculateDepth(
	token tokenizer.Token, inherited int, brackets BracketStack,
) (int, int, BracketStack, error) {
	changeBefore := 0
	changeAfter := 0

	switch token.Type {
	case tokenizer.TopKeyword:
		if last, ok := brackets.pop(); ok {
			if last.Type == tokenizer.TopKeyword {
				// a keyword like FROM following another top keyword
				// closes it, so we dedent
				changeBefore = -1
			} else {
				// an open bracket that still needs to be closed later
				brackets.push(last)
			}
		}
		brackets.push(token)
		changeAfter = 1

	case tokenizer.BracketOpen:
		brackets.push(token)
		changeAfter = 1

	case tokenizer.BracketClose:
		last, ok := brackets.pop()
		if !ok {
			return 0, 0, nil, &UnmatchedCloserError{Token: token}
		}
		changeBefore = -1
		// if the closer follows a still-open keyword like FROM, the next
		// entry down is the real matching opener
		if last.Type == tokenizer.TopKeyword {
			last, ok = brackets.pop()
			if !ok {
				return 0, 0, nil, &UnmatchedCloserError{Token: token}
			}
			changeBefore--
		}
		if last.Type != tokenizer.BracketOpen || bracketPairs[last.Text] != token.Text {
			return 0, 0, nil, &MismatchedBracketError{Open: last, Close: token}
		}

	case tokenizer.StatementStart:
		changeAfter = 1

	case tokenizer.StatementEnd:
		changeBefore = -1
	}

	return inherited + changeBefore, changeAfter, brackets, nil
}

// whitespace returns the literal whitespace preceding a token, to be set as
// the node's prefix. Most tokens are prefixed by a single space; the cases
// below are checked in order, first match wins.
func whitespace(
	token tokenizer.Token, firstOnLine bool, depth int, prev *tokenizer.Token,
) string {
	switch {
	case firstOnLine:
		if depth <= 0 {
			return ""
		}
		return strings.Repeat(indent, depth)

	// tokens that are never preceded by a space
	case token.Type == tokenizer.BracketClose,
		token.Type == tokenizer.DoubleColon,
		token.Type == tokenizer.Comma,
		token.Type == tokenizer.Dot,
		token.Type == tokenizer.Newline:
		return ""

	// names preceded by dots are namespaced identifiers
	case (token.Type == tokenizer.Name || token.Type == tokenizer.QuotedName) &&
		prev != nil && prev.Type == tokenizer.Dot:
		return ""

	// open brackets that follow names are function calls, unless the name
	// is "as" (declaring a CTE) or "over" (declaring a window partition)
	case token.Type == tokenizer.BracketOpen &&
		prev != nil && prev.Type == tokenizer.Name && !breaksCall(prev.Text):
		return ""

	case token.Type == tokenizer.BracketOpen:
		return " "

	// no space after an open bracket or a cast operator
	case prev != nil &&
		(prev.Type == tokenizer.BracketOpen || prev.Type == tokenizer.DoubleColon):
		return ""

	default:
		return " "
	}
}

func breaksCall(word string) bool {
	switch strings.ToLower(word) {
	case "as", "over":
		return true
	default:
		return false
	}
}

// capitalize returns the token text to render. Keywords, statements, and
// simple names are lowercased; identifiers that can't be lowercased are
// expected to be quoted. This will likely need revisiting for dialects with
// case-sensitive unquoted identifiers.
func capitalize(token tokenizer.Token) string {
	switch token.Type {
	case tokenizer.TopKeyword, tokenizer.Name,
		tokenizer.StatementStart, tokenizer.StatementEnd:
		return strings.ToLower(token.Text)
	default:
		return token.Text
	}
}
