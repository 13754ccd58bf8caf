package saver

import "sort"

// formatTraits describes what a format identifier implies for output
// resolution: the file extension it produces and whether it renders as
// a per-frame image sequence or a single container file.
type formatTraits struct {
	extension string
	sequence  bool
}

// formatTable is the closed mapping of recognized output format
// identifiers. Movie containers are never sequences; frame-based
// formats always are.
var formatTable = map[string]formatTraits{
	"TiffFormat":      {extension: ".tif", sequence: true},
	"TargaFormat":     {extension: ".tga", sequence: true},
	"OpenEXRFormat":   {extension: ".exr", sequence: true},
	"PNGFormat":       {extension: ".png", sequence: true},
	"JpegFormat":      {extension: ".jpg", sequence: true},
	"SGIFormat":       {extension: ".sgi", sequence: true},
	"DPXFormat":       {extension: ".dpx", sequence: true},
	"CineonFormat":    {extension: ".cin", sequence: true},
	"SoftimageFormat": {extension: ".pic", sequence: true},
	"IFFFormat":       {extension: ".iff", sequence: true},
	"QuickTimeMovies": {extension: ".mov", sequence: false},
	"AVIFormat":       {extension: ".avi", sequence: false},
	"MP4Format":       {extension: ".mp4", sequence: false},
	"WMVFormat":       {extension: ".wmv", sequence: false},
}

// KnownFormat reports whether the identifier is in the closed table.
func KnownFormat(format string) bool {
	_, ok := formatTable[format]
	return ok
}

// FormatExtension returns the file extension for a recognized format.
func FormatExtension(format string) (string, bool) {
	traits, ok := formatTable[format]
	if !ok {
		return "", false
	}
	return traits.extension, true
}

// FormatIsSequence reports whether a recognized format renders as an
// image sequence.
func FormatIsSequence(format string) (bool, bool) {
	traits, ok := formatTable[format]
	if !ok {
		return false, false
	}
	return traits.sequence, true
}

// Formats returns the recognized identifiers in sorted order.
func Formats() []string {
	out := make([]string, 0, len(formatTable))
	for format := range formatTable {
		out = append(out, format)
	}
	sort.Strings(out)
	return out
}
