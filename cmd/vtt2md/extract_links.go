package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vtt2md/internal/hints"
	"github.com/pdiddy/vtt2md/internal/links"
)

var extractLinksCmd = &cobra.Command{
	Use:   "extract-links <video.info.json>",
	Short: "Extract labelled links from a video description",
	Long: `Extract-links parses the description field of a downloader info.json
for URLs together with their surrounding labels and writes a JSON array
of {"url", "title"} pairs. Labels come from "Label: URL", "Label - URL",
and "URL - Label" patterns, from text preceding the URL on the same
line, or from the nearest non-empty line above.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractLinks,
}

func init() {
	extractLinksCmd.Flags().StringP("output", "o", "", "output .json path (default: stdout)")

	rootCmd.AddCommand(extractLinksCmd)
}

func runExtractLinks(cmd *cobra.Command, args []string) error {
	info, err := hints.LoadVideoInfo(args[0])
	if err != nil {
		return err
	}

	extracted := links.Extract(info.Description)

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		return hints.WriteLinksJSON(os.Stdout, extracted)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := hints.WriteLinksJSON(f, extracted); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d links to %s\n", len(extracted), outPath)
	return nil
}
