package verify

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSized(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOutputSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prj_s_010_comp_v003.mov")

	if Output(path) {
		t.Fatal("missing file must not verify")
	}

	writeSized(t, path, 0)
	if Output(path) {
		t.Fatal("zero-byte file must not verify")
	}

	writeSized(t, path, 2048)
	if !Output(path) {
		t.Fatal("non-empty file must verify")
	}
}

func TestOutputSequenceWithHashPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, filepath.Join(dir, "shot.0001.exr"), 1024)

	if !Output(filepath.Join(dir, "shot.####.exr")) {
		t.Fatal("sequence with one non-empty frame must verify")
	}
}

func TestOutputSequenceWithZeroPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, filepath.Join(dir, "shot.101250.exr"), 512)

	if !Output(filepath.Join(dir, "shot.000000.exr")) {
		t.Fatal("zero-run placeholder must expand over rendered frames")
	}
}

func TestOutputSequenceEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if Output(filepath.Join(dir, "shot.####.exr")) {
		t.Fatal("no frames on disk must not verify")
	}
}

func TestOutputSequenceAllFramesEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, filepath.Join(dir, "shot.0001.exr"), 0)
	writeSized(t, filepath.Join(dir, "shot.0002.exr"), 0)

	if Output(filepath.Join(dir, "shot.####.exr")) {
		t.Fatal("zero-sized frames must not verify")
	}
}

func TestOutputSequenceMissingDirectory(t *testing.T) {
	if Output(filepath.Join(t.TempDir(), "absent", "shot.0000.exr")) {
		t.Fatal("missing directory must not verify")
	}
}

func TestOutputMixedFramesVerify(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, filepath.Join(dir, "shot.1001.exr"), 0)
	writeSized(t, filepath.Join(dir, "shot.1002.exr"), 4096)

	if !Output(filepath.Join(dir, "shot.0000.exr")) {
		t.Fatal("one usable frame is enough to verify the sequence")
	}
}

func TestOutputRejectsBlankAndDirectories(t *testing.T) {
	if Output("") {
		t.Fatal("blank path must not verify")
	}
	if Output("   ") {
		t.Fatal("whitespace path must not verify")
	}
	dir := t.TempDir()
	if Output(dir) {
		t.Fatal("a directory must not verify as a single file")
	}
}
