package verify

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// placeholderPattern matches a fixed-width sequence placeholder between
// dots in a file name: a run of literal zeros or a hash run, e.g.
// ".0000." or ".####.".
var placeholderPattern = regexp.MustCompile(`\.(0{2,}|#{2,})\.`)

// Output reports whether a resolved output path denotes real, non-empty
// render output. Single files must exist with size above zero. Sequence
// paths (containing a placeholder) require the directory to exist and
// at least one non-empty frame matching the placeholder position.
// Never returns an error: a missing or partial render is an expected
// outcome, expressed as false.
func Output(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	name := filepath.Base(path)
	match := placeholderPattern.FindStringIndex(name)
	if match == nil {
		return nonEmptyFile(path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}

	// Replace the placeholder run with a wildcard, keeping the dots on
	// both sides so only the frame-number position varies.
	pattern := name[:match[0]] + ".*." + name[match[1]:]
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(matches) == 0 {
		return false
	}
	for _, candidate := range matches {
		if nonEmptyFile(candidate) {
			return true
		}
	}
	return false
}

func nonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}
