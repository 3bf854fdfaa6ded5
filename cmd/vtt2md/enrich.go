package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vtt2md/internal/enrich"
	"github.com/pdiddy/vtt2md/internal/hints"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <structured.md>",
	Short: "Turn known phrases into Markdown hyperlinks",
	Long: `Enrich replaces the first case-insensitive occurrence of each mapped
phrase with a Markdown hyperlink. Phrases are matched longest-first so
multi-word phrases win over their substrings, and each phrase links at
most once. Existing links, [M:SS] timestamp markers, and heading lines
are never touched. Phrases with no occurrence are dropped silently
unless --warn-unmatched is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().String("links", "", `link map JSON: [{"phrase": ..., "url": ...}, ...]`)
	enrichCmd.Flags().StringP("output", "o", "", "output .md path (default: stdout)")
	enrichCmd.Flags().Bool("warn-unmatched", false, "report link phrases with no match to stderr")
	cobra.CheckErr(enrichCmd.MarkFlagRequired("links"))

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	markdown, err := readText(args[0])
	if err != nil {
		return err
	}

	linksPath, _ := cmd.Flags().GetString("links")
	linkMap, err := hints.LoadLinkMap(linksPath)
	if err != nil {
		return err
	}

	cfg := pipelineConfig().Enrich
	if warn, _ := cmd.Flags().GetBool("warn-unmatched"); warn {
		cfg.WarnUnmatched = true
	}

	result := enrich.Links(markdown, linkMap, cfg, os.Stderr)

	outPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outPath, result)
}
