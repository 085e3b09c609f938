package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/config"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/formatter"
	"github.com/urfave/cli/v3"
)

// Run creates and executes the main sqltidy CLI application with the given
// version and command-line arguments.
//
// The root command itself does the formatting: it reads each named file (or
// stdin when no files are given), runs it through the formatter, and then
// either prints the result, rewrites the file (--write), reports files that
// would change (--check), or prints a diff (--diff).
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "sqltidy",
		Usage: "An opinionated SQL source formatter",
		Description: `sqltidy formats SQL source with consistent indentation driven by the
query's own nesting: brackets and clause keywords (SELECT, FROM, WHERE, ...)
determine depth, and lines that grow too long are split at the points that
nesting suggests.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqltidy config file",
				Sources: cli.EnvVars("SQLTIDY_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
			&cli.IntFlag{
				Name:    "line-length",
				Aliases: []string{"l"},
				Usage:   "maximum rendered line length",
				Value:   consts.DefaultLineLength,
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "rewrite files in place instead of printing to stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "exit non-zero if any file would be reformatted",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "print a diff of the changes instead of the formatted output",
			},
		},
		Action: runFormat,
	}

	return app.Run(ctx, args)
}

func runFormat(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return formatStdin(cmd, opts)
	}

	var dirty []string
	for _, path := range files {
		changed, err := formatFile(cmd, opts, path)
		if err != nil {
			return err
		}
		if changed {
			dirty = append(dirty, path)
		}
	}

	if cmd.Bool("check") && len(dirty) > 0 {
		for _, path := range dirty {
			fmt.Fprintln(cmd.Writer, path)
		}
		return errors.Errorf("%d file(s) would be reformatted", len(dirty))
	}

	return nil
}

// loadOptions resolves formatting options from the config file and flags.
// An explicit --line-length wins over the config file.
func loadOptions(cmd *cli.Command) (formatter.Options, error) {
	opts := formatter.Defaults

	path := cmd.String("config")
	cfg, err := config.LoadConfigFile(path)
	switch {
	case err != nil && os.IsNotExist(errors.Cause(err)) && !cmd.IsSet("config"):
		// no config file and none was asked for
	case err != nil:
		return opts, err
	default:
		opts.LineLength = cfg.LineLength
	}

	if cmd.IsSet("line-length") {
		opts.LineLength = int(cmd.Int("line-length"))
	}

	return opts, nil
}

func formatStdin(cmd *cli.Command, opts formatter.Options) error {
	src, err := io.ReadAll(cmd.Reader)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	formatted, changed, err := formatter.Check(opts, string(src))
	if err != nil {
		return err
	}

	switch {
	case cmd.Bool("check"):
		if changed {
			return errors.New("stdin would be reformatted")
		}
		return nil
	case cmd.Bool("diff"):
		if changed {
			printDiff(cmd.Writer, "<stdin>", string(src), formatted)
		}
		return nil
	default:
		_, err = io.WriteString(cmd.Writer, formatted)
		return errors.Wrap(err, "failed to write output")
	}
}

func formatFile(cmd *cli.Command, opts formatter.Options, path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read file %s", path)
	}

	formatted, changed, err := formatter.Check(opts, string(src))
	if err != nil {
		return false, errors.Wrapf(err, "failed to format %s", path)
	}

	switch {
	case cmd.Bool("check"):
		return changed, nil
	case cmd.Bool("diff"):
		if changed {
			printDiff(cmd.Writer, path, string(src), formatted)
		}
		return changed, nil
	case cmd.Bool("write"):
		if changed {
			if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
				return false, errors.Wrapf(err, "failed to write file %s", path)
			}
		}
		return changed, nil
	default:
		_, err = io.WriteString(cmd.Writer, formatted)
		return changed, errors.Wrap(err, "failed to write output")
	}
}
