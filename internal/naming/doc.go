// Package naming builds canonical deliverable file names from pipeline
// metadata and computes frame-padding widths for image sequences.
//
// Name construction is a pure function: identical contexts always yield
// identical names. Components are sanitized for filesystem use before
// joining, including diacritic folding so accented item names produce
// stable ASCII-safe results.
package naming
