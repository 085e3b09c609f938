package line

import (
	"fmt"

	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

// UnmatchedCloserError reports a closing bracket encountered while no bracket
// was open. This is invalid input: the source closes a bracket it never
// opened.
type UnmatchedCloserError struct {
	// Token is the offending closing bracket.
	Token tokenizer.Token
}

func (e *UnmatchedCloserError) Error() string {
	return fmt.Sprintf(
		"closing bracket %q found at %s before bracket was opened",
		e.Token.Text, e.Token.Start,
	)
}

// MismatchedBracketError reports a closing bracket whose character does not
// match the bracket popped off the stack (e.g. ) closing a [). The tokenizer
// is expected to reject such input, so this indicates a scanner gap rather
// than a recoverable user error; it is a distinct type so callers can tell
// the two failure modes apart.
type MismatchedBracketError struct {
	// Open is the bracket that was on top of the stack.
	Open tokenizer.Token
	// Close is the offending closing bracket.
	Close tokenizer.Token
}

func (e *MismatchedBracketError) Error() string {
	return fmt.Sprintf(
		"closing bracket %q found at %s does not match last opened bracket %q found at %s",
		e.Close.Text, e.Close.Start, e.Open.Text, e.Open.Start,
	)
}
