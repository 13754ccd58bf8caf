// Package saver extracts render-output configuration from pasted
// compositing node dumps.
//
// A dump is untrusted clipboard text that may be a complete literal
// table or a fragment with surrounding decoration. Extraction locates
// the Saver node marker, discovers the declared output format, and
// collects the properties scoped to that format. Absence of a
// recognizable Saver or format declaration is an expected miss, not an
// error; callers get (nil, false) and treat it as "nothing to apply".
//
// The format table is closed: identifiers not present in it fail
// extraction explicitly instead of defaulting.
package saver
