// Package formatter provides the top-level formatting API: it tokenizes SQL
// source, runs the depth engine over the token stream, reflows overlong
// lines, and renders the result.
//
// Example usage:
//
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, formatter.Defaults, "SELECT a, b FROM t\n"); err != nil {
//		return err
//	}
//	fmt.Print(buf.String())
//
// Output:
//
//	select a, b from t
package formatter

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/consts"
)

// Options controls formatting behavior.
type Options struct {
	// LineLength is the maximum rendered line length before the reflow pass
	// tries to split a line.
	LineLength int
}

// Defaults are the standard formatting options.
var Defaults = Options{LineLength: consts.DefaultLineLength}

// Format formats SQL source and writes the result to w.
func Format(w io.Writer, opts Options, src string) error {
	out, err := String(opts, src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return errors.Wrap(err, "failed to write formatted output")
}

// String formats SQL source and returns the result.
func String(opts Options, src string) (string, error) {
	if opts.LineLength <= 0 {
		opts.LineLength = Defaults.LineLength
	}

	q, err := NewQuery(src)
	if err != nil {
		return "", err
	}
	if err := q.Reflow(opts.LineLength); err != nil {
		return "", err
	}

	return q.String(), nil
}

// Check formats SQL source and reports whether formatting would change it.
func Check(opts Options, src string) (string, bool, error) {
	out, err := String(opts, src)
	if err != nil {
		return "", false, err
	}
	return out, out != src, nil
}
