package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vtt2md/internal/hints"
	"github.com/pdiddy/vtt2md/internal/segment"
	"github.com/pdiddy/vtt2md/internal/vtt"
	"github.com/pdiddy/vtt2md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <captions.vtt>",
	Short: "Convert VTT captions to sentence-per-line Markdown",
	Long: `Convert parses a WebVTT captions file with word-level timing tags,
detects sentence boundaries and paragraph pauses, and writes
sentence-per-line Markdown with [M:SS] timestamp markers. When an
info.json is supplied, chapter headings are inserted by timestamp and
the video metadata is printed to stdout for downstream hint
generation.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output .md path (default: stdout)")
	convertCmd.Flags().Float64("pause", types.DefaultPauseThreshold, "pause in seconds that starts a new paragraph")
	convertCmd.Flags().Bool("no-timestamps", false, "omit [M:SS] timestamp markers")
	convertCmd.Flags().String("info-json", "", "downloader info.json with title and chapters")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig().Segment
	if cmd.Flags().Changed("pause") {
		cfg.PauseThreshold, _ = cmd.Flags().GetFloat64("pause")
	}
	if noTS, _ := cmd.Flags().GetBool("no-timestamps"); noTS {
		cfg.Timestamps = false
	}

	words, err := vtt.ParseFile(args[0])
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no word-level timestamps found in captions")
	}

	var info types.VideoInfo
	infoPath, _ := cmd.Flags().GetString("info-json")
	if infoPath != "" {
		info, err = hints.LoadVideoInfo(infoPath)
		if err != nil {
			return err
		}
	}

	units := segment.Sentences(words, cfg)
	md := segment.RenderMarkdown(units, info.Chapters)

	outPath, _ := cmd.Flags().GetString("output")
	if err := writeOutput(outPath, md); err != nil {
		return err
	}

	// With the transcript written to a file, stdout carries the video
	// metadata for whoever generates the structure hints.
	if infoPath != "" && outPath != "" {
		fmt.Printf("TITLE: %s\n", info.Title)
		if len(info.Chapters) > 0 {
			fmt.Println("CHAPTERS: yes")
		} else {
			fmt.Println("CHAPTERS: no")
		}
		if info.Description != "" {
			fmt.Println("---")
			fmt.Println(info.Description)
		}
	}

	return nil
}
