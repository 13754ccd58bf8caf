// Package fileutil provides the file copy primitives the publish
// pipeline uses when moving working files to their versioned and
// published destinations.
package fileutil
