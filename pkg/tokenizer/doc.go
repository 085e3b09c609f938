// Package tokenizer scans SQL source into the classified tokens the depth
// engine consumes.
//
// The scanner is built on participle's lexer with a rule table for comments,
// string literals, quoted names, numbers, words, punctuation, and brackets.
// A classification pass then maps words onto the formatter's token types:
// clause-introducing keywords like SELECT and FROM become TopKeyword tokens,
// CASE/END become StatementStart/StatementEnd, and everything else is a
// Name. Multi-word keywords (GROUP BY, LEFT OUTER JOIN, UNION ALL) are
// merged into single tokens.
//
// The package also owns the SplitAfter policy: given a token type, it
// decides whether a line-split boundary falls after tokens of that type.
// This keeps the split policy next to the token classification it depends
// on.
package tokenizer
