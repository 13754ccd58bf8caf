package naming

import (
	"fmt"
	"strings"
)

// separator joins name components.
const separator = "_"

// itemMarker sits between the project code and the item short name in
// every deliverable name.
const itemMarker = "s"

// minPaddingWidth floors sequence padding so short shots still produce
// conventional four-digit frame numbers.
const minPaddingWidth = 4

// Context carries the metadata a file name is derived from. Build a
// fresh Context per resolution from database lookups; project and step
// state may change between calls.
type Context struct {
	ProjectShort string
	ItemShort    string
	StepShort    string
	// Resource distinguishes secondary outputs; empty for the main one.
	Resource  string
	Extension string
	// Version is rendered as a zero-padded v-number when positive.
	Version int
	// StateShort is appended when non-empty, e.g. a review state code.
	StateShort string
}

// FrameRange describes a shot's frame span. End is Start+FrameCount-1
// whenever FrameCount is positive.
type FrameRange struct {
	Start      int
	FrameCount int
}

// End returns the last frame of the range. Meaningless when FrameCount
// is not positive.
func (r FrameRange) End() int {
	return r.Start + r.FrameCount - 1
}

// BuildBaseName concatenates the non-empty context components in fixed
// order without the extension: project, item marker, item, step,
// resource, version, state.
func BuildBaseName(ctx Context) string {
	parts := make([]string, 0, 7)
	appendPart := func(raw string) {
		if cleaned := SanitizeComponent(raw); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}

	appendPart(ctx.ProjectShort)
	if strings.TrimSpace(ctx.ItemShort) != "" {
		parts = append(parts, itemMarker)
	}
	appendPart(ctx.ItemShort)
	appendPart(ctx.StepShort)
	appendPart(ctx.Resource)
	if ctx.Version > 0 {
		parts = append(parts, fmt.Sprintf("v%03d", ctx.Version))
	}
	appendPart(ctx.StateShort)

	return strings.Join(parts, separator)
}

// BuildFileName returns the base name with the context extension
// appended. A missing leading dot on the extension is supplied.
func BuildFileName(ctx Context) string {
	base := BuildBaseName(ctx)
	ext := strings.TrimSpace(ctx.Extension)
	if ext == "" {
		return base
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return base + ext
}

// PaddingWidth returns the zero-padding width a sequence needs: the
// decimal digit count of the largest absolute frame number in the
// range, never below minPaddingWidth. A non-positive FrameCount leaves
// no range to derive from and defaults to the minimum.
func PaddingWidth(r FrameRange) int {
	if r.FrameCount <= 0 {
		return minPaddingWidth
	}
	largest := absInt(r.Start)
	if end := absInt(r.End()); end > largest {
		largest = end
	}
	width := 1
	for largest >= 10 {
		largest /= 10
		width++
	}
	if width < minPaddingWidth {
		return minPaddingWidth
	}
	return width
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
