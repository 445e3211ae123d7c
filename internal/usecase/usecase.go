package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/thrive-belize/deckbuild/internal/ports"
	"github.com/thrive-belize/deckbuild/internal/types"
)

type Deps struct {
	// ASR is nil when the probe found no transcription engine.
	ASR  ports.Transcriber
	Logf func(format string, args ...any)
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Logf == nil {
		d.Logf = func(string, ...any) {}
	}
	return Usecase{d: d}
}

type Input struct {
	Videos        []types.VideoSpec
	Fallbacks     map[string]string
	AudioDir      string
	TranscriptDir string
}

type Result struct {
	Transcripts []types.Transcript
}

// AcquireTranscripts resolves a transcript for every video key, fully
// processing one key before the next. Per key, in order: reuse a non-empty
// cached <key>.txt; else run the engine against <key>.wav and persist the
// result; else persist and use the fixed fallback. Engine errors are logged
// and demoted to the fallback path, never propagated. Write failures abort
// the run.
func (u Usecase) AcquireTranscripts(ctx context.Context, in Input) (Result, error) {
	var res Result
	for _, v := range in.Videos {
		txtPath := filepath.Join(in.TranscriptDir, v.Key+".txt")

		if text, ok := readCached(txtPath); ok {
			u.d.Logf("%s: using existing transcript", v.Key)
			res.Transcripts = append(res.Transcripts, types.Transcript{Key: v.Key, Text: text, Source: types.SourceCache})
			continue
		}

		if text, ok := u.transcribe(ctx, v.Key, in); ok {
			if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
				return Result{}, err
			}
			res.Transcripts = append(res.Transcripts, types.Transcript{Key: v.Key, Text: text, Source: types.SourceEngine})
			continue
		}

		u.d.Logf("%s: using fallback transcript", v.Key)
		text := in.Fallbacks[v.Key]
		if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
			return Result{}, err
		}
		res.Transcripts = append(res.Transcripts, types.Transcript{Key: v.Key, Text: text, Source: types.SourceFallback})
	}
	return res, nil
}

func (u Usecase) transcribe(ctx context.Context, key string, in Input) (string, bool) {
	if u.d.ASR == nil {
		return "", false
	}
	wav := filepath.Join(in.AudioDir, key+".wav")
	if _, err := os.Stat(wav); err != nil {
		return "", false
	}

	u.d.Logf("%s: transcribing...", key)
	text, err := u.d.ASR.Transcribe(ctx, wav, in.TranscriptDir)
	if err != nil {
		u.d.Logf("%s: transcription failed: %v", key, err)
		return "", false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		u.d.Logf("%s: transcription produced no text", key)
		return "", false
	}
	u.d.Logf("%s: transcribed", key)
	return text, true
}

// readCached reports a reusable transcript: the file exists and its trimmed
// content is non-empty.
func readCached(path string) (string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(string(b))
	return text, text != ""
}
