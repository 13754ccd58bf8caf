// Package literal tokenizes and parses the nested key/value literal
// grammar used by compositing node dumps.
//
// The grammar is a brace-delimited table format: a table holds keyed
// entries (bare identifiers or bracketed quoted keys assigned with "=")
// and positional entries, separated by commas. Scalar values are quoted
// strings, signed numbers (integer or float), and the bare words true
// and false. Tables may carry a constructor tag (an identifier directly
// before the opening brace, e.g. Input { ... }). Line comments start
// with "--" and run to end of line.
//
// Parsing is all-or-nothing: a malformed document never yields a
// partial value. The package has no knowledge of the rendering domain;
// extraction rules live in package saver.
package literal
