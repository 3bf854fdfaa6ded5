package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/vtt2md/internal/enrich"
)

var linkifyCmd = &cobra.Command{
	Use:   "linkify <transcript.md>",
	Short: "Turn leading [M:SS] markers into time-coded video links",
	Long: `Linkify rewrites every line-leading [M:SS] timestamp marker into a
clickable link to that moment in the video, followed by a separator
glyph. Markers appearing mid-line are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkify,
}

func init() {
	linkifyCmd.Flags().String("video-id", "", "video ID for timestamp link targets")
	linkifyCmd.Flags().StringP("output", "o", "", "output .md path (default: stdout)")
	cobra.CheckErr(linkifyCmd.MarkFlagRequired("video-id"))

	rootCmd.AddCommand(linkifyCmd)
}

func runLinkify(cmd *cobra.Command, args []string) error {
	markdown, err := readText(args[0])
	if err != nil {
		return err
	}

	videoID, _ := cmd.Flags().GetString("video-id")
	result := enrich.Timestamps(markdown, videoID, pipelineConfig().Enrich)

	outPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outPath, result)
}
