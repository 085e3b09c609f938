package line

import "github.com/sqltidy/sqltidy/pkg/tokenizer"

// BracketStack is the ordered set of currently-unclosed bracket and
// top-keyword markers at a point in the token stream. Each Node stores its
// own copy so that rebuilding a Line from an arbitrary node subsequence never
// aliases another node's state.
type BracketStack []tokenizer.Token

// Copy returns an independent copy of the stack.
func (s BracketStack) Copy() BracketStack {
	if len(s) == 0 {
		return nil
	}
	out := make(BracketStack, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two stacks hold the same tokens in the same order.
func (s BracketStack) Equal(other BracketStack) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s *BracketStack) push(t tokenizer.Token) {
	*s = append(*s, t)
}

func (s *BracketStack) pop() (tokenizer.Token, bool) {
	if len(*s) == 0 {
		return tokenizer.Token{}, false
	}
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t, true
}
