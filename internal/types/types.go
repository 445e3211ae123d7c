package types

// VideoSpec describes one tracked training video. The set is fixed at
// process start; Key names every generated artifact for the video
// (<key>.wav, <key>.txt, <key>_summary.md).
type VideoSpec struct {
	Key     string
	Pattern string
	Ext     string
}

// TranscriptSource records which acquisition step produced a transcript.
type TranscriptSource string

const (
	SourceCache    TranscriptSource = "cache"
	SourceEngine   TranscriptSource = "engine"
	SourceFallback TranscriptSource = "fallback"
)

// Transcript is the resolved plain-text transcript for one video key.
type Transcript struct {
	Key    string
	Text   string
	Source TranscriptSource
}
