// Package cmd provides the CLI for the sqltidy formatter.
//
// The root command formats the SQL files named on the command line, or stdin
// when no files are given. Formatted output goes to stdout unless --write
// rewrites files in place. --check reports files that would change without
// writing anything, and --diff prints a colored diff of the changes.
//
// Example usage:
//
//	# Format a file to stdout
//	sqltidy queries/daily_rollup.sql
//
//	# Rewrite files in place
//	sqltidy --write queries/*.sql
//
//	# Fail CI when formatting is needed
//	sqltidy --check queries/*.sql
//
// Configuration is read from .sqltidy.yaml (override with --config); the
// --line-length flag takes precedence over the config file.
package cmd
