//go:build integration

package itest

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI compiles the deckbuild binary once per test binary.
func buildCLI(t *testing.T) string {
	t.Helper()
	repoRoot, err := findRepoRoot()
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}
	bin := filepath.Join(t.TempDir(), "deckbuild")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/deckbuild")
	cmd.Dir = repoRoot
	if b, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build: %v\n%s", err, b)
	}
	return bin
}

// runCLI executes the binary with an empty PATH so no transcription engine
// can be found; every key degrades to its fallback transcript.
func runCLI(t *testing.T, bin string, args ...string) (int, string) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Env = []string{"PATH=" + t.TempDir()}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("run cli: %v\n%s", err, out.String())
		}
		code = exitErr.ExitCode()
	}
	return code, out.String()
}

func TestE2E_FallbackBuild(t *testing.T) {
	bin := buildCLI(t)

	parent := t.TempDir()
	root := filepath.Join(parent, "deck")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	videoName := "Morales2026THRIVE-Belize_final.mp4"
	if err := os.WriteFile(filepath.Join(parent, videoName), []byte("x"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}

	code, out := runCLI(t, bin, root)
	if code != 0 {
		t.Fatalf("exit code %d:\n%s", code, out)
	}
	if !strings.Contains(out, "engine: not found") {
		t.Fatalf("expected engine-not-found log:\n%s", out)
	}

	gen := filepath.Join(root, "assets", "generated")
	for _, key := range []string{"v1", "v2", "v3"} {
		for _, rel := range []string{
			filepath.Join("transcripts", key+".txt"),
			filepath.Join("summaries", key+"_summary.md"),
		} {
			if _, err := os.Stat(filepath.Join(gen, rel)); err != nil {
				t.Fatalf("missing artifact %s: %v", rel, err)
			}
		}
	}

	deckBytes, err := os.ReadFile(filepath.Join(gen, "deck_data.json"))
	if err != nil {
		t.Fatalf("read deck data: %v", err)
	}
	var doc struct {
		Videos map[string]struct {
			Filename *string `json:"filename"`
		} `json:"videos"`
	}
	if err := json.Unmarshal(deckBytes, &doc); err != nil {
		t.Fatalf("deck data invalid: %v", err)
	}
	if got := doc.Videos["v2"].Filename; got == nil || *got != "../"+videoName {
		t.Fatalf("v2 filename = %v, want ../%s", got, videoName)
	}
	if doc.Videos["v1"].Filename != nil {
		t.Fatalf("v1 filename should be null")
	}

	// A second identical run must not change any artifact.
	sumPath := filepath.Join(gen, "summaries", "v2_summary.md")
	firstSum, err := os.ReadFile(sumPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if code, out := runCLI(t, bin, root); code != 0 {
		t.Fatalf("second run exit code %d:\n%s", code, out)
	}
	secondDeck, err := os.ReadFile(filepath.Join(gen, "deck_data.json"))
	if err != nil {
		t.Fatalf("read deck data: %v", err)
	}
	if !bytes.Equal(deckBytes, secondDeck) {
		t.Fatalf("deck data changed between identical runs")
	}
	secondSum, err := os.ReadFile(sumPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !bytes.Equal(firstSum, secondSum) {
		t.Fatalf("summary changed between identical runs")
	}
}

func TestE2E_ArgsValidation(t *testing.T) {
	bin := buildCLI(t)

	cases := []struct {
		name         string
		args         []string
		wantContains string
	}{
		{
			name:         "no args",
			args:         nil,
			wantContains: "accepts between 1 and 2 arg(s), received 0",
		},
		{
			name:         "too many args",
			args:         []string{"a", "b", "c"},
			wantContains: "accepts between 1 and 2 arg(s), received 3",
		},
		{
			name:         "unknown flag",
			args:         []string{"a", "--wat"},
			wantContains: "unknown flag: --wat",
		},
		{
			name:         "missing project root",
			args:         []string{filepath.Join(t.TempDir(), "nope")},
			wantContains: "config: stat project root",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out := runCLI(t, bin, tc.args...)
			if code == 0 {
				t.Fatalf("expected non-zero exit:\n%s", out)
			}
			if !strings.Contains(out, tc.wantContains) {
				t.Fatalf("output missing %q:\n%s", tc.wantContains, out)
			}
		})
	}
}
