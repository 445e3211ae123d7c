package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "deckbuild <project-root> [parent-dir]",
		Short:        "Build transcripts, summaries, and deck data for the training videos",
		Long: "deckbuild prepares presentation assets for the tracked training videos:\n" +
			"plain-text transcripts (cached, transcribed, or fallback), curated markdown\n" +
			"summaries, and the deck_data.json manifest the slide layer consumes.\n\n" +
			"parent-dir is scanned for the video files and defaults to the parent of\n" +
			"project-root.",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("summaries", "", "Directory of summary data files overriding the built-in set")
	root.Flags().Bool("watch", false, "Keep running and rebuild when audio or summary data changes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
