package line_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	. "github.com/sqltidy/sqltidy/pkg/line"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

// chain builds the node chain for a token sequence, returning every node in
// order.
func chain(t *testing.T, src string) []*Node {
	t.Helper()

	tokens, err := tokenizer.Tokenize(src)
	require.NoError(t, err)

	var nodes []*Node
	var prev *Node
	for _, tok := range tokens {
		n, err := NewNode(tok, prev)
		require.NoError(t, err)
		nodes = append(nodes, n)
		prev = n
	}
	return nodes
}

func TestNewNode_DepthEffects(t *testing.T) {
	t.Run("top keyword indents what follows", func(t *testing.T) {
		nodes := chain(t, "select a")
		sel, a := nodes[0], nodes[1]

		require.Equal(t, 0, sel.Depth)
		require.Equal(t, 1, sel.ChangeInDepth)
		require.Equal(t, 1, a.InheritedDepth)
		require.Equal(t, 1, a.Depth)
		require.Equal(t, 0, a.ChangeInDepth)
	})

	t.Run("adjacent top keywords stay at the same depth", func(t *testing.T) {
		nodes := chain(t, "select a from t")
		sel, from := nodes[0], nodes[2]

		// the net dedent and push cancel: FROM sits level with SELECT
		require.Equal(t, sel.Depth, from.Depth)
		require.Equal(t, 1, from.InheritedDepth)
	})

	t.Run("brackets indent and dedent", func(t *testing.T) {
		nodes := chain(t, "(a)")
		open, a, cls := nodes[0], nodes[1], nodes[2]

		require.Equal(t, 0, open.Depth)
		require.Equal(t, 1, open.ChangeInDepth)
		require.Equal(t, 1, a.Depth)
		require.Equal(t, 0, cls.Depth)
		require.Empty(t, cls.OpenBrackets)
	})

	t.Run("closer pops an open top keyword too", func(t *testing.T) {
		// the subquery's FROM is still open when the outer paren closes
		nodes := chain(t, "(select a from t)")
		cls := nodes[len(nodes)-1]

		require.Equal(t, 0, cls.Depth)
		require.Empty(t, cls.OpenBrackets)
	})

	t.Run("case and end nest without the stack", func(t *testing.T) {
		nodes := chain(t, "case x end")
		start, x, end := nodes[0], nodes[1], nodes[2]

		require.Equal(t, 0, start.Depth)
		require.Equal(t, 1, start.ChangeInDepth)
		require.Empty(t, start.OpenBrackets)
		require.Equal(t, 1, x.Depth)
		require.Equal(t, 0, end.Depth)
	})

	t.Run("depth equals inherited depth plus own effect", func(t *testing.T) {
		for _, n := range chain(t, "select f(a, b) from (select c from d)") {
			require.GreaterOrEqual(t, n.Depth, 0, "token %q", n.Token.Text)
			require.LessOrEqual(t, n.Depth-n.InheritedDepth, 0,
				"change before is never positive for token %q", n.Token.Text)
		}
	})

	t.Run("well bracketed input empties the stack", func(t *testing.T) {
		nodes := chain(t, "select a from (select b from c) where d = [1, {2}]")
		last := nodes[len(nodes)-1]

		// only the still-open WHERE pseudo-bracket remains
		require.Len(t, last.OpenBrackets, 1)
		require.Equal(t, tokenizer.TopKeyword, last.OpenBrackets[0].Type)
	})
}

func TestNewNode_UnmatchedCloser(t *testing.T) {
	tokens, err := tokenizer.Tokenize("a)")
	require.NoError(t, err)

	n, err := NewNode(tokens[0], nil)
	require.NoError(t, err)

	_, err = NewNode(tokens[1], n)
	require.Error(t, err)

	var unmatched *UnmatchedCloserError
	require.ErrorAs(t, err, &unmatched)
	require.Equal(t, ")", unmatched.Token.Text)
	require.Equal(t, tokenizer.Pos{Line: 1, Col: 2}, unmatched.Token.Start)
	require.Contains(t, err.Error(), "1:2")

	var mismatched *MismatchedBracketError
	require.False(t, errors.As(err, &mismatched))
}

func TestNewNode_MismatchedBracketPair(t *testing.T) {
	tokens, err := tokenizer.Tokenize("(a]")
	require.NoError(t, err)

	var prev *Node
	var nodeErr error
	for _, tok := range tokens {
		var n *Node
		n, nodeErr = NewNode(tok, prev)
		if nodeErr != nil {
			break
		}
		prev = n
	}

	require.Error(t, nodeErr)

	var mismatched *MismatchedBracketError
	require.ErrorAs(t, nodeErr, &mismatched)
	require.Equal(t, "(", mismatched.Open.Text)
	require.Equal(t, "]", mismatched.Close.Text)
}

func TestNewNode_Whitespace(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		token  string
		prefix string
	}{
		{name: "function call paren", sql: "select foo(", token: "(", prefix: ""},
		{name: "window clause paren", sql: "select x over (", token: "(", prefix: " "},
		{name: "cte paren", sql: "with t as (", token: "(", prefix: " "},
		{name: "namespaced identifier", sql: "select a.b", token: "b", prefix: ""},
		{name: "quoted name after dot", sql: `select a."B"`, token: `"B"`, prefix: ""},
		{name: "comma hugs", sql: "select a, b", token: ",", prefix: ""},
		{name: "closer hugs", sql: "select foo(a)", token: ")", prefix: ""},
		{name: "cast hugs both sides", sql: "select a::int", token: "int", prefix: ""},
		{name: "after open bracket", sql: "select foo(a", token: "a", prefix: ""},
		{name: "plain word", sql: "select a b", token: "b", prefix: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range chain(t, tt.sql) {
				if n.Token.Text == tt.token {
					require.Equal(t, tt.prefix, n.Prefix)
					return
				}
			}
			t.Fatalf("token %q not found in %q", tt.token, tt.sql)
		})
	}
}

func TestNewNode_FirstOnLineIndent(t *testing.T) {
	// x begins a line at depth 2: one level for the open paren, one for the
	// subquery's SELECT
	nodes := chain(t, "(select\nx")
	x := nodes[len(nodes)-1]

	require.Equal(t, 2, x.Depth)
	require.Equal(t, strings.Repeat(" ", 8), x.Prefix)
}

func TestNewNode_Capitalization(t *testing.T) {
	nodes := chain(t, `SELECT Amount, "Foo", 'Bar', CASE WHEN x THEN y END`)

	values := map[string]string{}
	for _, n := range nodes {
		values[n.Token.Text] = n.Value
	}

	require.Equal(t, "select", values["SELECT"])
	require.Equal(t, "amount", values["Amount"])
	require.Equal(t, `"Foo"`, values[`"Foo"`])
	require.Equal(t, "'Bar'", values["'Bar'"])
	require.Equal(t, "case", values["CASE"])
	require.Equal(t, "end", values["END"])
}

func TestNode_SnapshotIsolation(t *testing.T) {
	nodes := chain(t, "select (a")
	open := nodes[1]

	snap := open.OpenBrackets.Copy()
	snap[0] = tokenizer.Token{Type: tokenizer.Name, Text: "clobbered"}

	require.Equal(t, "select", open.OpenBrackets[0].Text)
}
