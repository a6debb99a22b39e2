package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cueburn/internal/history"
	"cueburn/internal/logging"
	"cueburn/internal/pipeline"
	"cueburn/internal/timedtext"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render <transcript.json>",
		Short: "Render a transcript into a styled ASS subtitle document",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to the transcript JSON. Example: cueburn render talk.json")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			if source == "" {
				return fmt.Errorf("transcript path is required")
			}
			source, _ = filepath.Abs(source)

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			runID := uuid.NewString()
			logger = logger.With(logging.String(logging.FieldRunID, runID))

			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			cues, err := timedtext.ParseTranscript(data)
			if err != nil {
				return err
			}

			doc, result, err := pipeline.Render(cues, cfg.LayoutOptions(), cfg.ASSStyle(), logger)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = strings.TrimSuffix(source, filepath.Ext(source)) + ".ass"
			}
			if err := os.WriteFile(target, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}

			logger.Info("render complete",
				logging.String(logging.FieldSource, source),
				logging.String("output", target),
				logging.Int("cues", len(cues)),
				logging.Int("events", len(result.Events)),
				logging.Int("warnings", len(result.Warnings)))

			if cfg.History.Enabled {
				if err := recordRender(cmd, cfg.History.Dir, history.Render{
					RunID:        runID,
					Source:       source,
					Output:       target,
					CueCount:     len(cues),
					EventCount:   len(result.Events),
					WarningCount: len(result.Warnings),
				}); err != nil {
					// The document is already on disk; a ledger failure
					// should not fail the render.
					logger.Warn("record history failed", logging.Error(err))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(source, target, result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for the .ass document (default: alongside the transcript)")
	return cmd
}

func recordRender(cmd *cobra.Command, dir string, render history.Render) error {
	store, err := history.Open(cmd.Context(), dir)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(cmd.Context(), render)
	return err
}

func renderSummary(source, target string, result *pipeline.Result) string {
	var b strings.Builder
	b.WriteString(renderTable(
		[]string{"Source", "Output", "Events", "Warnings"},
		[][]string{{
			filepath.Base(source),
			filepath.Base(target),
			fmt.Sprintf("%d", len(result.Events)),
			fmt.Sprintf("%d", len(result.Warnings)),
		}},
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	))
	for _, warning := range result.Warnings {
		b.WriteString("\nwarning: ")
		b.WriteString(warning.String())
	}
	return b.String()
}
