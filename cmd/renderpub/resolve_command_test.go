package main

import (
	"path/filepath"
	"testing"
)

func TestResolveCommandSequence(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"resolve",
		"--project", "prj",
		"--item", "010",
		"--step", "comp",
		"--format", "OpenEXRFormat",
		"--version", "7",
		"--start-frame", "1001",
		"--frame-count", "100",
	}, env.configPath, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := filepath.Join(env.cfg.Paths.ProjectExportRoot, "prj_s_010_comp_v007", "prj_s_010_comp_v007.0000.exr")
	requireContains(t, out, want)
}

func TestResolveCommandSingleFile(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"resolve",
		"--project", "prj",
		"--item", "010",
		"--step", "edit",
		"--format", "QuickTimeMovies",
		"--version", "2",
	}, env.configPath, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, filepath.Join("prj_s_010_edit_v002", "prj_s_010_edit_v002.mov"))
}

func TestResolveCommandUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{
		"resolve",
		"--project", "prj",
		"--format", "NotAFormat",
	}, env.configPath, "")
	if err == nil {
		t.Fatal("expected unknown format error")
	}
	requireContains(t, err.Error(), "unknown output format")
}
