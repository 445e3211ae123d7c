package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thrive-belize/deckbuild/internal/locate"
	"github.com/thrive-belize/deckbuild/internal/manifest"
	"github.com/thrive-belize/deckbuild/internal/ports"
	"github.com/thrive-belize/deckbuild/internal/ports/adapters/whisper"
	"github.com/thrive-belize/deckbuild/internal/ports/adapters/whispercpp"
	"github.com/thrive-belize/deckbuild/internal/probe"
	"github.com/thrive-belize/deckbuild/internal/summary"
	"github.com/thrive-belize/deckbuild/internal/types"
	"github.com/thrive-belize/deckbuild/internal/usecase"
)

type Config struct {
	// ProjectRoot holds the deck; artifacts land under
	// <ProjectRoot>/assets/generated.
	ProjectRoot string
	// ParentDir is scanned for the video files. Defaults to the project
	// root's parent.
	ParentDir string
	// SummaryDir optionally overrides the built-in summary data files,
	// one <key>.yaml per video.
	SummaryDir string
	Logf       func(format string, args ...any)

	// Videos and Fallbacks default to the built-in set.
	Videos    []types.VideoSpec
	Fallbacks map[string]string

	// Engine probe knobs. Zero values select whisper/faster-whisper on
	// the path with a 10s help timeout, then a local whisper.cpp build.
	ProbeCandidates []string
	ProbeTimeout    time.Duration
	WhisperCppBin   string
	WhisperCppModel string
	// TranscribeTimeout bounds a single engine invocation. Defaults to
	// 600s.
	TranscribeTimeout time.Duration
}

func (c Config) Validate() error {
	if c.ProjectRoot == "" {
		return errors.New("project root is empty")
	}
	if _, err := os.Stat(c.ProjectRoot); err != nil {
		return fmt.Errorf("stat project root: %w", err)
	}
	return nil
}

// Run executes one linear build: create the generated directories, probe for
// a transcription engine once, acquire every transcript sequentially, render
// all summaries, then overwrite the deck manifest. Missing videos and failed
// transcriptions degrade per key; anything else aborts the run.
func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	videos := cfg.Videos
	if videos == nil {
		videos = DefaultVideos()
	}
	fallbacks := cfg.Fallbacks
	if fallbacks == nil {
		fallbacks = DefaultFallbacks()
	}
	parent := cfg.ParentDir
	if parent == "" {
		parent = filepath.Dir(cfg.ProjectRoot)
	}

	genDir := GeneratedDir(cfg.ProjectRoot)
	audioDir := filepath.Join(genDir, "audio")
	transcriptDir := filepath.Join(genDir, "transcripts")
	summaryDir := filepath.Join(genDir, "summaries")
	for _, dir := range []string{audioDir, transcriptDir, summaryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	eng, found := probe.Detect(ctx, probe.Options{
		CLICandidates: cfg.ProbeCandidates,
		HelpTimeout:   cfg.ProbeTimeout,
		NativeBin:     cfg.WhisperCppBin,
		NativeModel:   cfg.WhisperCppModel,
	})
	if found {
		logf("engine: %s", eng.Name)
	} else {
		logf("engine: not found (will use fallback transcripts)")
	}

	var asr ports.Transcriber
	if found {
		if eng.Name == probe.NativeName {
			asr = whispercpp.New(eng.Bin, eng.Model, cfg.TranscribeTimeout)
		} else {
			asr = whisper.New(eng.Name, cfg.TranscribeTimeout)
		}
	}

	uc := usecase.New(usecase.Deps{ASR: asr, Logf: logf})
	if _, err := uc.AcquireTranscripts(ctx, usecase.Input{
		Videos:        videos,
		Fallbacks:     fallbacks,
		AudioDir:      audioDir,
		TranscriptDir: transcriptDir,
	}); err != nil {
		return err
	}

	store := summary.NewStore(cfg.SummaryDir)
	records := make(map[string]summary.Record, len(videos))
	for _, v := range videos {
		rec, err := store.Record(v.Key)
		if err != nil {
			return err
		}
		records[v.Key] = rec
		mdPath := filepath.Join(summaryDir, v.Key+"_summary.md")
		if err := os.WriteFile(mdPath, []byte(summary.Markdown(rec)), 0o644); err != nil {
			return fmt.Errorf("write summary %s: %w", v.Key, err)
		}
		logf("%s: summary written", v.Key)
	}

	deck := manifest.Deck{}
	for _, v := range videos {
		name, ok, err := locate.Video(parent, v.Pattern, v.Ext)
		if err != nil {
			return fmt.Errorf("locate %s: %w", v.Key, err)
		}
		entry := manifest.Entry{
			Key:      v.Key,
			Duration: "Unknown",
			Summary:  records[v.Key],
		}
		if ok {
			// Deck-relative reference; forward slash regardless
			// of platform.
			entry.Filename = "../" + name
		}
		deck.Videos = append(deck.Videos, entry)
	}

	deckPath := filepath.Join(genDir, manifest.Filename)
	if err := manifest.Write(deckPath, deck); err != nil {
		return fmt.Errorf("write deck data: %w", err)
	}
	logf("deck data written: %s", deckPath)
	return nil
}

// GeneratedDir is where all build artifacts live under a project root.
func GeneratedDir(projectRoot string) string {
	return filepath.Join(projectRoot, "assets", "generated")
}
