package tokenizer

import "fmt"

// TokenType classifies a lexical token for depth and whitespace handling.
type TokenType int

const (
	// Name is an unquoted identifier or any word that is not a keyword.
	Name TokenType = iota
	// QuotedName is a double-quoted or backticked identifier.
	QuotedName
	// TopKeyword is a clause-introducing keyword (SELECT, FROM, WHERE, ...)
	// that behaves as a self-closing pseudo-bracket for indentation.
	TopKeyword
	// StatementStart opens statement-level nesting (CASE).
	StatementStart
	// StatementEnd closes statement-level nesting (END).
	StatementEnd
	// BracketOpen is one of ( [ {.
	BracketOpen
	// BracketClose is one of ) ] }.
	BracketClose
	// Comma, Dot and DoubleColon are punctuation with special spacing rules.
	Comma
	Dot
	DoubleColon
	// Operator covers comparison and arithmetic operators and semicolons.
	Operator
	// Number is a numeric literal.
	Number
	// Literal is a single-quoted string literal.
	Literal
	// Comment is a -- or /* */ comment.
	Comment
	// Newline is a line break in the source.
	Newline
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Name:
		return "name"
	case QuotedName:
		return "quoted_name"
	case TopKeyword:
		return "top_keyword"
	case StatementStart:
		return "statement_start"
	case StatementEnd:
		return "statement_end"
	case BracketOpen:
		return "bracket_open"
	case BracketClose:
		return "bracket_close"
	case Comma:
		return "comma"
	case Dot:
		return "dot"
	case DoubleColon:
		return "double_colon"
	case Operator:
		return "operator"
	case Number:
		return "number"
	case Literal:
		return "literal"
	case Comment:
		return "comment"
	case Newline:
		return "newline"
	default:
		return fmt.Sprintf("token_type(%d)", int(t))
	}
}

// Pos is a position in the source, with a 1-based line and column.
type Pos struct {
	Line int
	Col  int
}

// String renders the position as line:col.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is an immutable lexical unit produced by Tokenize.
type Token struct {
	// Type is the token's classification.
	Type TokenType

	// Text is the literal token text. Multi-word keywords (e.g. GROUP BY)
	// are merged into a single token with words joined by one space.
	Text string

	// Start and End are the token's source positions.
	Start Pos
	End   Pos

	// Line is the raw source line the token starts on.
	Line string
}

// String returns the token's literal text.
func (t Token) String() string {
	return t.Text
}

// SplitAfter reports whether a line-split boundary conventionally falls
// after tokens of the given type rather than before them. The depth engine
// uses this when recording candidate split positions.
func SplitAfter(t TokenType) bool {
	switch t {
	case Comma, TopKeyword, BracketOpen, StatementStart:
		return true
	default:
		return false
	}
}
