// Package utils provides small helpers shared across the sqltidy codebase.
//
// # Ptr
//
// Ptr returns a pointer to any value, which is useful for the optional
// (pointer-typed) fields used throughout the formatter, such as a line's
// split markers:
//
//	l.DepthSplit = utils.Ptr(2)
package utils
