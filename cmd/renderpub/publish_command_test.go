package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"renderpub/internal/testsupport"
)

func setupPublishEnv(t *testing.T, renderBody string) (*cliTestEnv, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("hook scripts require a POSIX shell")
	}

	scratch := t.TempDir()
	renderScript := filepath.Join(scratch, "render.sh")
	testsupport.WriteScript(t, renderScript, renderBody)
	statusScript := filepath.Join(scratch, "status.sh")
	statusLog := filepath.Join(scratch, "status.txt")
	testsupport.WriteScript(t, statusScript, `echo "$@" > `+statusLog+"\n")

	env := setupCLITestEnv(t,
		testsupport.WithRenderCommand(renderScript),
		testsupport.WithStatusCommand(statusScript),
	)
	return env, statusLog
}

func TestPublishCommandSuccess(t *testing.T) {
	env, statusLog := setupPublishEnv(t, "exit 0\n")
	scratch := t.TempDir()

	workfile := filepath.Join(scratch, "shot.comp")
	testsupport.WriteSized(t, workfile, 64)
	output := filepath.Join(scratch, "shot_v007.mov")
	testsupport.WriteSized(t, output, 256)
	versioned := filepath.Join(scratch, "versions", "shot_v007.comp")
	published := filepath.Join(scratch, "published", "shot.comp")

	out, _, err := runCLI(t, []string{
		"publish",
		"--workfile", workfile,
		"--versioned-workfile", versioned,
		"--published-workfile", published,
		"--output", output,
		"--selector", "Saver1",
		"--state", "rev",
		"--version", "7",
		"--comment", "first pass",
		"--project", "prj",
		"--item", "010",
		"--step", "comp",
	}, env.configPath, "")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	requireContains(t, out, "Publish succeeded")
	requireContains(t, out, output)

	for _, path := range []string{versioned, published} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}

	commit, err := os.ReadFile(statusLog)
	if err != nil {
		t.Fatalf("read status log: %v", err)
	}
	requireContains(t, string(commit), "rev 7 first pass")

	histOut, _, err := runCLI(t, []string{"history"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, histOut, "prj")
	requireContains(t, histOut, "v007")
	requireContains(t, histOut, "ok")
	requireContains(t, histOut, "rev")
}

func TestPublishCommandRenderFailure(t *testing.T) {
	env, statusLog := setupPublishEnv(t, "exit 3\n")
	scratch := t.TempDir()

	workfile := filepath.Join(scratch, "shot.comp")
	testsupport.WriteSized(t, workfile, 64)
	output := filepath.Join(scratch, "shot_v008.mov")
	versioned := filepath.Join(scratch, "versions", "shot_v008.comp")

	_, _, err := runCLI(t, []string{
		"publish",
		"--workfile", workfile,
		"--versioned-workfile", versioned,
		"--output", output,
		"--state", "rev",
		"--version", "8",
		"--item", "010",
		"--step", "comp",
	}, env.configPath, "")
	if err == nil {
		t.Fatal("expected publish to fail")
	}
	requireContains(t, err.Error(), "rendering")

	// an aborted transaction never commits status
	if _, statErr := os.Stat(statusLog); !os.IsNotExist(statErr) {
		t.Fatalf("status hook should not have run, stat err: %v", statErr)
	}

	// the working file save precedes the render and survives the abort
	if _, statErr := os.Stat(versioned); statErr != nil {
		t.Fatalf("versioned workfile should exist after render failure: %v", statErr)
	}

	histOut, _, err := runCLI(t, []string{"history", "--item", "010", "--step", "comp"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, histOut, "failed (rendering)")
}

func TestPublishCommandVerifyFailure(t *testing.T) {
	env, _ := setupPublishEnv(t, "exit 0\n")
	scratch := t.TempDir()

	workfile := filepath.Join(scratch, "shot.comp")
	testsupport.WriteSized(t, workfile, 64)
	// render "succeeds" but never writes the output
	output := filepath.Join(scratch, "shot_v009.mov")
	versioned := filepath.Join(scratch, "versions", "shot_v009.comp")

	_, _, err := runCLI(t, []string{
		"publish",
		"--workfile", workfile,
		"--versioned-workfile", versioned,
		"--output", output,
		"--state", "rev",
		"--version", "9",
	}, env.configPath, "")
	if err == nil {
		t.Fatal("expected publish to fail verification")
	}
	requireContains(t, err.Error(), "verifying")
}

func TestPublishCommandRequiresRenderCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	scratch := t.TempDir()
	workfile := filepath.Join(scratch, "shot.comp")
	testsupport.WriteSized(t, workfile, 16)

	_, _, err := runCLI(t, []string{
		"publish",
		"--workfile", workfile,
		"--versioned-workfile", filepath.Join(scratch, "v.comp"),
		"--output", filepath.Join(scratch, "out.mov"),
	}, env.configPath, "")
	if err == nil {
		t.Fatal("expected missing render command error")
	}
	requireContains(t, err.Error(), "no render command configured")
}
