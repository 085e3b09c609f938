package tokenizer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// sqlLexer defines the lexical grammar for SQL source. Whitespace is
	// dropped during classification; newlines survive as Newline tokens so
	// the depth engine can track line structure.
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*|/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "Literal", Pattern: `'([^'\\]|\\.)*'`},
		{Name: "QuotedName", Pattern: `"([^"\\]|\\.)*"|` + "`([^`\\\\]|\\\\.)*`"},
		{Name: "Number", Pattern: `\d+(\.\d*)?`},
		{Name: "Word", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "DoubleColon", Pattern: `::`},
		{Name: "Open", Pattern: `[(\[{]`},
		{Name: "Close", Pattern: `[)\]}]`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Operator", Pattern: `!=|<>|<=|>=|\|\||[;=+\-*/%<>!~&|^]`},
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})

	symbolNames = lexer.SymbolsByRune(sqlLexer)

	// Clause-introducing keywords that act as pseudo-brackets on their own.
	topKeywords = map[string]bool{
		"with":   true,
		"select": true,
		"from":   true,
		"where":  true,
		"having": true,
		"limit":  true,
		"offset": true,
		"join":   true,
		"on":     true,
		"using":  true,
		"union":  true,
		"when":   true,
		"then":   true,
		"else":   true,
		"set":    true,
		"values": true,
	}

	// Words that start a multi-word top keyword when followed by "by".
	byKeywords = map[string]bool{
		"group":     true,
		"order":     true,
		"partition": true,
	}

	// Words that start a join form, optionally with an OUTER in between.
	joinKeywords = map[string]bool{
		"left":  true,
		"right": true,
		"full":  true,
		"inner": true,
		"cross": true,
	}
)

// Tokenize scans SQL source into classified tokens. Whitespace other than
// newlines is discarded; multi-word keywords such as GROUP BY and LEFT OUTER
// JOIN are merged into single tokens. An unrecognized character yields an
// error carrying its source position.
func Tokenize(src string) ([]Token, error) {
	lx, err := sqlLexer.LexString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex source")
	}

	var raw []lexer.Token
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan source")
		}
		if t.EOF() {
			break
		}
		raw = append(raw, t)
	}

	return classify(raw, strings.Split(src, "\n")), nil
}

// classify maps raw lexer tokens onto the formatter's token types, dropping
// whitespace and merging multi-word keywords.
func classify(raw []lexer.Token, srcLines []string) []Token {
	var out []Token

	for i := 0; i < len(raw); i++ {
		t := raw[i]
		name := symbolNames[t.Type]
		switch name {
		case "Whitespace":
			continue
		case "Newline":
			out = append(out, makeToken(Newline, "\n", t.Pos, srcLines))
		case "Comment":
			out = append(out, makeToken(Comment, t.Value, t.Pos, srcLines))
		case "Literal":
			out = append(out, makeToken(Literal, t.Value, t.Pos, srcLines))
		case "QuotedName":
			out = append(out, makeToken(QuotedName, t.Value, t.Pos, srcLines))
		case "Number":
			out = append(out, makeToken(Number, t.Value, t.Pos, srcLines))
		case "DoubleColon":
			out = append(out, makeToken(DoubleColon, t.Value, t.Pos, srcLines))
		case "Open":
			out = append(out, makeToken(BracketOpen, t.Value, t.Pos, srcLines))
		case "Close":
			out = append(out, makeToken(BracketClose, t.Value, t.Pos, srcLines))
		case "Comma":
			out = append(out, makeToken(Comma, t.Value, t.Pos, srcLines))
		case "Dot":
			out = append(out, makeToken(Dot, t.Value, t.Pos, srcLines))
		case "Operator":
			out = append(out, makeToken(Operator, t.Value, t.Pos, srcLines))
		case "Word":
			tok, consumed := classifyWord(raw, i, srcLines)
			out = append(out, tok)
			i += consumed
		}
	}

	return out
}

// classifyWord classifies a word token, merging it with following words when
// they form a multi-word keyword. It returns the token and the number of
// additional raw tokens consumed.
func classifyWord(raw []lexer.Token, i int, srcLines []string) (Token, int) {
	t := raw[i]
	word := strings.ToLower(t.Value)

	switch {
	case word == "case":
		return makeToken(StatementStart, t.Value, t.Pos, srcLines), 0
	case word == "end":
		return makeToken(StatementEnd, t.Value, t.Pos, srcLines), 0

	case byKeywords[word]:
		if j, next, ok := nextWord(raw, i); ok && next == "by" {
			return mergeWords(t, raw[i+1:j+1], srcLines), j - i
		}
		return makeToken(Name, t.Value, t.Pos, srcLines), 0

	case word == "union":
		if j, next, ok := nextWord(raw, i); ok && (next == "all" || next == "distinct") {
			return mergeWords(t, raw[i+1:j+1], srcLines), j - i
		}
		return makeToken(TopKeyword, t.Value, t.Pos, srcLines), 0

	case joinKeywords[word]:
		if j, next, ok := nextWord(raw, i); ok {
			if next == "join" {
				return mergeWords(t, raw[i+1:j+1], srcLines), j - i
			}
			if next == "outer" {
				if k, after, ok := nextWord(raw, j); ok && after == "join" {
					return mergeWords(t, raw[i+1:k+1], srcLines), k - i
				}
			}
		}
		return makeToken(Name, t.Value, t.Pos, srcLines), 0

	case topKeywords[word]:
		return makeToken(TopKeyword, t.Value, t.Pos, srcLines), 0

	default:
		return makeToken(Name, t.Value, t.Pos, srcLines), 0
	}
}

// nextWord returns the index and lowercased value of the word immediately
// following raw[i], allowing a single whitespace run in between.
func nextWord(raw []lexer.Token, i int) (int, string, bool) {
	j := i + 1
	if j < len(raw) && symbolNames[raw[j].Type] == "Whitespace" {
		j++
	}
	if j < len(raw) && symbolNames[raw[j].Type] == "Word" {
		return j, strings.ToLower(raw[j].Value), true
	}
	return 0, "", false
}

// mergeWords builds a single TopKeyword token from a word and its
// continuation tokens, joining the words with single spaces.
func mergeWords(first lexer.Token, rest []lexer.Token, srcLines []string) Token {
	words := []string{first.Value}
	last := first
	for _, t := range rest {
		if symbolNames[t.Type] == "Whitespace" {
			continue
		}
		words = append(words, t.Value)
		last = t
	}

	tok := makeToken(TopKeyword, strings.Join(words, " "), first.Pos, srcLines)
	tok.End = posAfter(Pos{Line: last.Pos.Line, Col: last.Pos.Column}, last.Value)
	return tok
}

func makeToken(typ TokenType, text string, pos lexer.Position, srcLines []string) Token {
	start := Pos{Line: pos.Line, Col: pos.Column}

	var srcLine string
	if pos.Line >= 1 && pos.Line <= len(srcLines) {
		srcLine = srcLines[pos.Line-1]
	}

	return Token{
		Type:  typ,
		Text:  text,
		Start: start,
		End:   posAfter(start, text),
		Line:  srcLine,
	}
}

// posAfter returns the position immediately after text starting at start.
func posAfter(start Pos, text string) Pos {
	line, col := start.Line, start.Col
	for _, r := range text {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Pos{Line: line, Col: col}
}
