package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thrive-belize/deckbuild/internal/pipeline"
	"github.com/thrive-belize/deckbuild/internal/watch"
)

func run(cmd *cobra.Command, args []string) error {
	summariesDir, _ := cmd.Flags().GetString("summaries")
	watchMode, _ := cmd.Flags().GetBool("watch")

	projectRoot, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	parent := filepath.Dir(projectRoot)
	if len(args) == 2 {
		if parent, err = filepath.Abs(args[1]); err != nil {
			return err
		}
	}

	cfg := pipeline.Config{
		ProjectRoot: projectRoot,
		ParentDir:   parent,
		SummaryDir:  summariesDir,
		Logf: func(format string, a ...any) {
			fmt.Fprintf(cmd.OutOrStdout(), format+"\n", a...)
		},
		WhisperCppBin:   getenvDefault("DECKBUILD_WHISPERCPP_BIN", ".cache/bin/whisper.cpp"),
		WhisperCppModel: getenvDefault("DECKBUILD_WHISPERCPP_MODEL", ".cache/models/ggml-base.bin"),
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()
	if err := pipeline.Run(ctx, cfg); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watch.Rebuild(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
