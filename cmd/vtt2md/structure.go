package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vtt2md/internal/enrich"
	"github.com/pdiddy/vtt2md/internal/hints"
	"github.com/pdiddy/vtt2md/internal/structure"
)

var structureCmd = &cobra.Command{
	Use:   "structure <transcript.md>",
	Short: "Apply title, sections, and paragraphs to a transcript",
	Long: `Structure restructures sentence-per-line Markdown using a hints file:
it inserts a title, section headings, and paragraph breaks, and strips
redundant in-paragraph timestamp markers. Hints may carry a link map,
applied after restructuring. When an info.json with chapters is
supplied, chapter-derived sections take priority over hint-supplied
ones. With --video-id, leading timestamp markers become clickable
video links.

After a successful write to a different path, the intermediate input
file is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runStructure,
}

func init() {
	structureCmd.Flags().String("hints", "", "hints file (JSON or YAML) with title, sections, paragraphs, links")
	structureCmd.Flags().StringP("output", "o", "", "output .md path (default: stdout)")
	structureCmd.Flags().String("video-id", "", "video ID for timestamp links (default: id from info.json)")
	structureCmd.Flags().String("info-json", "", "downloader info.json; chapters override hint sections")
	structureCmd.Flags().Bool("warn-unmatched", false, "report link phrases with no match to stderr")
	structureCmd.Flags().Bool("keep-input", false, "do not delete the intermediate input file")
	cobra.CheckErr(structureCmd.MarkFlagRequired("hints"))

	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	lines, err := readLines(inputPath)
	if err != nil {
		return err
	}

	hintsPath, _ := cmd.Flags().GetString("hints")
	h, err := hints.LoadHints(hintsPath)
	if err != nil {
		return err
	}

	videoID, _ := cmd.Flags().GetString("video-id")

	infoPath, _ := cmd.Flags().GetString("info-json")
	if infoPath != "" {
		info, err := hints.LoadVideoInfo(infoPath)
		if err != nil {
			return err
		}
		if h.Title == "" {
			h.Title = info.Title
		}
		if videoID == "" {
			videoID = info.ID
		}
		if derived := structure.SectionsFromChapters(lines, info.Chapters); len(derived) > 0 {
			h.Sections = derived
		}
	}

	result := structure.Apply(lines, h)

	ecfg := pipelineConfig().Enrich
	if warn, _ := cmd.Flags().GetBool("warn-unmatched"); warn {
		ecfg.WarnUnmatched = true
	}

	if len(h.Links) > 0 {
		result = enrich.Links(result, h.Links, ecfg, os.Stderr)
	}
	if videoID != "" {
		result = enrich.Timestamps(result, videoID, ecfg)
	}

	outPath, _ := cmd.Flags().GetString("output")
	if err := writeOutput(outPath, result); err != nil {
		return err
	}

	if keep, _ := cmd.Flags().GetBool("keep-input"); !keep && outPath != "" {
		if !samePath(inputPath, outPath) {
			if err := os.Remove(inputPath); err != nil {
				return fmt.Errorf("removing intermediate %s: %w", inputPath, err)
			}
			fmt.Fprintf(os.Stderr, "Deleted %s\n", inputPath)
		}
	}

	return nil
}

// samePath reports whether two paths resolve to the same file.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
