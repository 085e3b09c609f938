package splitter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqltidy/sqltidy/pkg/line"
	. "github.com/sqltidy/sqltidy/pkg/splitter"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

func buildLine(t *testing.T, src string) *line.Line {
	t.Helper()

	tokens, err := tokenizer.Tokenize(src)
	require.NoError(t, err)

	l := line.NewLine(src, nil)
	for _, tok := range tokens {
		require.NoError(t, l.AppendToken(tok))
	}
	require.NoError(t, l.AppendNewline())
	return l
}

func render(lines []*line.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

func TestSplit_FitsUnchanged(t *testing.T) {
	l := buildLine(t, "select a, b from t")

	lines, err := Split(l, 88)
	require.NoError(t, err)
	require.Equal(t, []string{"select a, b from t\n"}, render(lines))
}

func TestSplit_NoSplitPoint(t *testing.T) {
	l := buildLine(t, "aaaa bbbb cccc")

	lines, err := Split(l, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"aaaa bbbb cccc\n"}, render(lines))
}

func TestSplit_IndentingLine(t *testing.T) {
	l := buildLine(t, "select a, b from t")

	lines, err := Split(l, 15)
	require.NoError(t, err)
	require.Equal(t, []string{
		"select\n",
		"    a, b from t\n",
	}, render(lines))
}

func TestSplit_Recursive(t *testing.T) {
	l := buildLine(t, "select a, b from t")

	lines, err := Split(l, 10)
	require.NoError(t, err)
	require.Equal(t, []string{
		"select\n",
		"    a,\n",
		"    b from\n",
		"    t\n",
	}, render(lines))

	for _, part := range lines[1:] {
		require.Equal(t, 1, part.Depth)
	}
}

func TestSplit_SubqueryIndents(t *testing.T) {
	l := buildLine(t, "select id from (select id from users) u")

	lines, err := Split(l, 20)
	require.NoError(t, err)
	require.Equal(t, []string{
		"select\n",
		"    id from\n",
		"    (\n",
		"        select\n",
		"            id from\n",
		"            users\n",
		"    ) u\n",
	}, render(lines))
}

func TestSplit_PreservesNodeCount(t *testing.T) {
	l := buildLine(t, "select a, b, c from t")

	lines, err := Split(l, 8)
	require.NoError(t, err)

	// every real token survives the split; only newlines are added
	count := 0
	for _, part := range lines {
		for _, n := range part.Nodes {
			if n.Token.Type != tokenizer.Newline {
				count++
			}
		}
	}
	require.Equal(t, 8, count)
}
