package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cueburn/internal/logging"
	"cueburn/internal/pipeline"
	"cueburn/internal/timedtext"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <transcript.json>",
		Short: "Validate a transcript and the configured style without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			source, _ = filepath.Abs(source)

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if err := cfg.ASSStyle().Validate(); err != nil {
				return err
			}

			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			cues, err := timedtext.ParseTranscript(data)
			if err != nil {
				return err
			}

			result, err := pipeline.Assemble(cues, cfg.LayoutOptions(), logging.NewNop())
			if err != nil {
				return err
			}

			var dialogue float64
			for _, cue := range result.Cues {
				dialogue += cue.Duration()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d cues, %d display events, %d warnings, %.1fs of dialogue\n",
				len(cues), len(result.Events), len(result.Warnings), dialogue)
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", warning.String())
			}
			return nil
		},
	}
	return cmd
}
