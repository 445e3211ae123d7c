package whispercpp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Adapter drives a local whisper.cpp binary with a ggml model file. Used
// when no openai-whisper CLI is on the path.
type Adapter struct {
	bin     string
	model   string
	timeout time.Duration
}

func New(binPath, modelPath string, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 600 * time.Second
	}
	return &Adapter{bin: binPath, model: modelPath, timeout: timeout}
}

func (a *Adapter) Transcribe(ctx context.Context, wavPath, outDir string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	stem := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	outPrefix := filepath.Join(outDir, stem)
	args := []string{
		"-m", a.model,
		"-f", wavPath,
		"-otxt",
		"-of", outPrefix,
	}
	cmd := exec.CommandContext(cctx, a.bin, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("whisper.cpp failed: %w\n%s", err, string(b))
	}

	tb, err := os.ReadFile(outPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper.cpp output: %w", err)
	}
	text := strings.TrimSpace(string(tb))
	if text == "" {
		return "", fmt.Errorf("whisper.cpp produced an empty transcript for %s", filepath.Base(wavPath))
	}
	return text, nil
}
