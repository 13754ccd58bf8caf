// Package outpath computes final output locations for render
// deliverables. Resolution is pure path arithmetic over supplied
// metadata; it never creates directories or checks for existence.
package outpath
