package whisper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Adapter drives an openai-whisper compatible CLI (whisper or
// faster-whisper). The CLI writes <stem>.txt into the output directory; the
// adapter reads it back after a zero exit.
type Adapter struct {
	bin     string
	model   string
	timeout time.Duration
}

func New(binName string, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 600 * time.Second
	}
	return &Adapter{bin: binName, model: "base", timeout: timeout}
}

func (a *Adapter) Transcribe(ctx context.Context, wavPath, outDir string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, a.bin, wavPath,
		"--model", a.model,
		"--output_format", "txt",
		"--output_dir", outDir,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w\n%s", a.bin, err, string(b))
	}

	stem := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	tb, err := os.ReadFile(filepath.Join(outDir, stem+".txt"))
	if err != nil {
		return "", fmt.Errorf("read %s output: %w", a.bin, err)
	}
	text := strings.TrimSpace(string(tb))
	if text == "" {
		return "", fmt.Errorf("%s produced an empty transcript for %s", a.bin, filepath.Base(wavPath))
	}
	return text, nil
}
