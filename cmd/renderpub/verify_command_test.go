package main

import (
	"path/filepath"
	"testing"

	"renderpub/internal/testsupport"
)

func TestVerifyCommand(t *testing.T) {
	base := t.TempDir()
	good := filepath.Join(base, "out.mov")
	testsupport.WriteSized(t, good, 64)

	out, _, err := runCLI(t, []string{"verify", good}, "", "")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	requireContains(t, out, "ok")

	missing := filepath.Join(base, "absent.mov")
	out, _, err = runCLI(t, []string{"verify", good, missing}, "", "")
	if err == nil {
		t.Fatal("expected verification failure")
	}
	requireContains(t, out, "missing")
	requireContains(t, err.Error(), "1 of 2 outputs failed verification")
}

func TestVerifyCommandSequencePlaceholder(t *testing.T) {
	base := t.TempDir()
	testsupport.WriteSized(t, filepath.Join(base, "shot.1001.exr"), 128)

	placeholder := filepath.Join(base, "shot.0000.exr")
	if _, _, err := runCLI(t, []string{"verify", placeholder}, "", ""); err != nil {
		t.Fatalf("verify sequence: %v", err)
	}
}
