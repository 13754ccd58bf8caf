package publish

import (
	"context"

	"renderpub/internal/fileutil"
)

// Renderer triggers a render of the currently armed output nodes in
// the host application. The selector names which outputs to arm.
type Renderer interface {
	Render(ctx context.Context, selector string) error
}

// WorkfileSaver persists the current working file to a versioned
// location before any render is attempted.
type WorkfileSaver interface {
	Save(ctx context.Context, path string) error
}

// FileCopier copies the backing working file to its published or
// backup destination, creating missing directories as needed.
type FileCopier interface {
	Copy(ctx context.Context, src, dst string) error
}

// StatusCommitter writes the new state, version, and comment through
// to the pipeline database. It must only be invoked after every
// artifact-producing stage has succeeded.
type StatusCommitter interface {
	Commit(ctx context.Context, state string, version int, comment string) error
}

// DiskCopier is the default FileCopier backed by the local filesystem.
type DiskCopier struct {
	// Verified enables SHA256 + size integrity checks on each copy.
	Verified bool
}

func (c DiskCopier) Copy(_ context.Context, src, dst string) error {
	if c.Verified {
		return fileutil.CopyFileVerified(src, dst)
	}
	return fileutil.CopyFile(src, dst)
}
