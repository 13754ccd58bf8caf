package outpath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"renderpub/internal/naming"
	"renderpub/internal/saver"
)

// StepPathFunc supplies the database-governed versioned publish
// location for a step. Only consulted for the step-published
// destination.
type StepPathFunc func(ctx naming.Context) (string, error)

// Roots bundles the two mutually exclusive destination sources.
type Roots struct {
	ProjectExportRoot string
	StepPublishedPath StepPathFunc
}

// Resolve computes the output path for a render. For the
// step-published destination the provider's result is returned
// verbatim and the export root is never consulted. For the project
// export destination the layout is root/base/base[.padding].ext, with
// a zero-run placeholder of the computed width embedded when the
// config renders an image sequence.
func Resolve(cfg *saver.Config, ctx naming.Context, r naming.FrameRange, roots Roots) (string, error) {
	if cfg == nil {
		return "", errors.New("resolve output path: nil saver config")
	}

	if cfg.Destination == saver.DestinationStepPublished {
		if roots.StepPublishedPath == nil {
			return "", errors.New("resolve output path: no step published path provider")
		}
		path, err := roots.StepPublishedPath(ctx)
		if err != nil {
			return "", fmt.Errorf("resolve step published path: %w", err)
		}
		return path, nil
	}

	root := strings.TrimSpace(roots.ProjectExportRoot)
	if root == "" {
		return "", errors.New("resolve output path: project export root is empty")
	}

	base := naming.BuildBaseName(ctx)
	if base == "" {
		return "", errors.New("resolve output path: naming context produced an empty base name")
	}

	ext := strings.TrimSpace(ctx.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	name := base + ext
	if cfg.ImageSequence {
		width := naming.PaddingWidth(r)
		name = base + "." + strings.Repeat("0", width) + ext
	}
	return filepath.Join(root, base, name), nil
}
