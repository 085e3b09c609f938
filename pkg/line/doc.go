// Package line implements the depth-and-layout engine at the heart of the
// formatter. It consumes the tokenizer's token stream one token at a time and
// produces, for each token, a fully resolved indentation depth, leading
// whitespace, and a normalized rendering, plus per-line markers identifying
// where a line may later be split.
//
// Nesting is tracked without a parse tree: parentheses, brackets, and
// clause-introducing keywords (SELECT, FROM, WHERE, ...) all live on a single
// open-bracket stack. A top keyword acts as a self-closing pseudo-bracket: it
// indents everything after it and is popped automatically when the next top
// keyword at the same nesting level appears, which models SQL's implicit
// clause structure.
//
// Basic usage:
//
//	tokens, _ := tokenizer.Tokenize("select a, b from t\n")
//
//	l := line.NewLine("select a, b from t", nil)
//	for _, tok := range tokens {
//		if err := l.AppendToken(tok); err != nil {
//			return err
//		}
//	}
//
//	fmt.Println(l.String())     // the rendered line
//	fmt.Println(l.DepthSplit)   // preferred split index, if any
package line
