package formatter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/sqltidy/sqltidy/pkg/formatter"
	"github.com/sqltidy/sqltidy/pkg/line"
	"github.com/sqltidy/sqltidy/pkg/tokenizer"
)

func TestFormat(t *testing.T) {
	t.Run("normalizes case and spacing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Format(&buf, Defaults, "SELECT A,B   FROM t\n"))
		require.Equal(t, "select a, b from t\n", buf.String())
	})

	t.Run("adds a missing trailing newline", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Format(&buf, Defaults, "select a from t"))
		require.Equal(t, "select a from t\n", buf.String())
	})

	t.Run("splits overlong lines", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{LineLength: 15}
		require.NoError(t, Format(&buf, opts, "select a, b from t\n"))
		require.Equal(t, "select\n    a, b from t\n", buf.String())
	})

	t.Run("reports bracket errors", func(t *testing.T) {
		err := Format(&bytes.Buffer{}, Defaults, "select a)\n")
		require.Error(t, err)

		var unmatched *line.UnmatchedCloserError
		require.ErrorAs(t, err, &unmatched)
	})
}

func TestString_DefaultsLineLength(t *testing.T) {
	out, err := String(Options{}, "select a from t\n")
	require.NoError(t, err)
	require.Equal(t, "select a from t\n", out)
}

func TestCheck(t *testing.T) {
	t.Run("already formatted", func(t *testing.T) {
		_, changed, err := Check(Defaults, "select a from t\n")
		require.NoError(t, err)
		require.False(t, changed)
	})

	t.Run("needs formatting", func(t *testing.T) {
		out, changed, err := Check(Defaults, "SELECT a FROM t\n")
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, "select a from t\n", out)
	})
}

func TestNewQuery(t *testing.T) {
	q, err := NewQuery("select\n    a\nfrom t\n")
	require.NoError(t, err)
	require.Len(t, q.Lines, 3)

	// lines are chained through their predecessor nodes
	require.Nil(t, q.Lines[0].PreviousNode)
	require.NotNil(t, q.Lines[1].PreviousNode)
	require.Equal(t, tokenizer.Newline, q.Lines[1].PreviousNode.Token.Type)

	require.True(t, q.Lines[0].StartsWithTopKeyword())
	require.Equal(t, 1, q.Lines[1].Depth)
	require.True(t, q.Lines[2].StartsWithTopKeyword())
	require.Equal(t, 0, q.Lines[2].Depth)
}

func TestQuery_Idempotent(t *testing.T) {
	const src = "SELECT a, b FROM (SELECT c FROM d) e\n"

	once, err := String(Defaults, src)
	require.NoError(t, err)
	twice, err := String(Defaults, once)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}
