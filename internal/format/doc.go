// Package format formats generated source files before they are written.
// The built-in engine normalizes whitespace and indentation in-process; the
// prettier engine pipes the source through an external prettier binary.
package format
