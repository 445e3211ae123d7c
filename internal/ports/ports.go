package ports

import "context"

// Transcriber converts a WAV file to plain text. Implementations may write
// intermediate files under outDir; the returned text is trimmed and
// guaranteed non-empty on success.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath, outDir string) (string, error)
}
