package pipeline

import "github.com/thrive-belize/deckbuild/internal/types"

// DefaultVideos is the tracked video set, in manifest order. Keys are the
// stable ids every generated artifact is named after.
func DefaultVideos() []types.VideoSpec {
	return []types.VideoSpec{
		{Key: "v1", Pattern: "Jewkes2021ElemOf_Video", Ext: ".mp4"},
		{Key: "v2", Pattern: "Morales2026THRIVE-Belize", Ext: ".mp4"},
		{Key: "v3", Pattern: "Morales2026TheManBox", Ext: ".mp4"},
	}
}

// DefaultFallbacks returns the per-key transcript used when neither a cached
// file nor a transcription engine is available.
func DefaultFallbacks() map[string]string {
	return map[string]string{
		"v1": "Design: context, gender-transformative, skill sequencing, multiple drivers. " +
			"Implementation: facilitator quality, adaptive fidelity. " +
			"Toolkit: session plans, safe facilitation, monitoring, referrals.",
		"v2": "THRIVE modules include communication and emotion regulation, masculinities " +
			"and boys' health, sexual and reproductive health, healthy relationships and " +
			"assertiveness, mental and physical health, substance use and refusal skills, " +
			"environmental health.",
		"v3": "Session 1 define man box. Session 2 discuss harms and costs. " +
			"Session 3 connect norms to violence and power. " +
			"Session 4 build alternative actions. " +
			"Facilitation includes ground rules, scenarios, emotional validation, action planning.",
	}
}
