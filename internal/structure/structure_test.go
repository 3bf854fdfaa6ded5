package structure

import (
	"strings"
	"testing"

	"github.com/pdiddy/vtt2md/pkg/types"
)

func TestApplyTitleAndSection(t *testing.T) {
	lines := []string{
		"[0:00] First sentence.",
		"[0:05] Second sentence.",
		"[0:09] Third sentence.",
	}
	hints := types.StructureHints{
		Title:    "T",
		Sections: []types.SectionHint{{Line: 2, Title: "S"}},
	}

	got := Apply(lines, hints)
	want := "# T\n\n[0:00] First sentence.\n\n## S\n\n[0:05] Second sentence. Third sentence.\n"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApplyParagraphBreaks(t *testing.T) {
	lines := []string{
		"[0:00] One.",
		"[0:04] Two.",
		"[0:08] Three.",
	}
	hints := types.StructureHints{Paragraphs: []int{3}}

	got := Apply(lines, hints)
	want := "[0:00] One. Two.\n\n[0:08] Three.\n"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApplyStripsTimestampsInsideParagraphs(t *testing.T) {
	lines := []string{
		"[0:00] Start.",
		"[0:03] Continues.",
	}

	got := Apply(lines, types.StructureHints{})
	if got != "[0:00] Start. Continues.\n" {
		t.Errorf("Apply = %q", got)
	}
}

func TestApplyKeepsExistingHeadings(t *testing.T) {
	lines := []string{
		"[0:00] Before.",
		"## Existing Heading",
		"[0:10] After.",
	}

	got := Apply(lines, types.StructureHints{})
	want := "[0:00] Before.\n\n## Existing Heading\n\n[0:10] After.\n"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApplyDropsBlankLines(t *testing.T) {
	lines := []string{
		"[0:00] One.",
		"",
		"[0:06] Two.",
	}

	got := Apply(lines, types.StructureHints{})
	// The blank line vanishes and the sentences join into one
	// paragraph; the hint line numbers still refer to the raw input.
	if got != "[0:00] One. Two.\n" {
		t.Errorf("Apply = %q", got)
	}
}

func TestApplyNoTitle(t *testing.T) {
	got := Apply([]string{"[0:00] Text."}, types.StructureHints{})
	if strings.HasPrefix(got, "#") {
		t.Errorf("unexpected title heading: %q", got)
	}
}

func TestSectionsFromChapters(t *testing.T) {
	lines := []string{
		"[0:00] Intro sentence.",
		"[0:05] Topic begins here.",
		"[0:12] And continues.",
	}
	chapters := []types.Chapter{
		{StartTime: 0, Title: "Intro"},
		{StartTime: 4, Title: "Topic"},
		{StartTime: 30, Title: "Past the end"},
		{StartTime: 8, Title: ""},
	}

	got := SectionsFromChapters(lines, chapters)

	want := []types.SectionHint{
		{Line: 1, Title: "Intro"},
		{Line: 2, Title: "Topic"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSectionsFromChaptersSkipUntimedLines(t *testing.T) {
	lines := []string{
		"No timestamp here",
		"[0:30] Timed line.",
	}
	chapters := []types.Chapter{{StartTime: 10, Title: "Ch"}}

	got := SectionsFromChapters(lines, chapters)
	if len(got) != 1 || got[0].Line != 2 {
		t.Errorf("SectionsFromChapters = %v, want section at line 2", got)
	}
}

func TestSectionsFromChaptersSameLine(t *testing.T) {
	// Two chapters resolving to the same line keep only the first.
	lines := []string{"[1:00] Only timed line."}
	chapters := []types.Chapter{
		{StartTime: 10, Title: "First"},
		{StartTime: 20, Title: "Second"},
	}

	got := SectionsFromChapters(lines, chapters)
	if len(got) != 1 || got[0].Title != "First" {
		t.Errorf("SectionsFromChapters = %v, want single section 'First'", got)
	}
}
