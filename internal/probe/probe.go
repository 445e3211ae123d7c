package probe

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"
)

// NativeName identifies the local whisper.cpp engine in probe results.
const NativeName = "whisper.cpp"

// Engine identifies an available transcription capability. For CLI engines
// Name is the executable; for the native engine Bin and Model carry the
// whisper.cpp binary and model paths.
type Engine struct {
	Name  string
	Bin   string
	Model string
}

type Options struct {
	// CLICandidates are tried in order; defaults to whisper then
	// faster-whisper.
	CLICandidates []string
	// HelpTimeout bounds each CLI availability check. Defaults to 10s.
	HelpTimeout time.Duration
	// NativeBin and NativeModel, when both point at existing files, make
	// the whisper.cpp engine the last-resort candidate.
	NativeBin   string
	NativeModel string
}

// Detect returns the first available transcription engine, trying the CLI
// candidates first and the native whisper.cpp binary last. A CLI candidate
// counts as available when invoking it with --help completes before the
// deadline and the executable exists; the exit code is irrelevant. Detect
// runs once per process and its result is passed explicitly through the
// pipeline.
func Detect(ctx context.Context, opts Options) (Engine, bool) {
	cands := opts.CLICandidates
	if cands == nil {
		cands = []string{"whisper", "faster-whisper"}
	}
	timeout := opts.HelpTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	for _, name := range cands {
		if cliResponds(ctx, name, timeout) {
			return Engine{Name: name}, true
		}
	}

	if opts.NativeBin != "" && opts.NativeModel != "" {
		if fileExists(opts.NativeBin) && fileExists(opts.NativeModel) {
			return Engine{Name: NativeName, Bin: opts.NativeBin, Model: opts.NativeModel}, true
		}
	}
	return Engine{}, false
}

func cliResponds(ctx context.Context, name string, timeout time.Duration) bool {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, name, "--help")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	err := cmd.Run()
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The command ran; a non-zero exit still counts as a response
		// unless the deadline killed it.
		return cctx.Err() == nil
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
