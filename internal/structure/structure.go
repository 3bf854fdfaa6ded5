// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure restructures sentence-per-line Markdown into titled,
// sectioned, paragraph-grouped Markdown using an externally supplied
// hints instruction set or chapter metadata.
package structure

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// timestampRE matches a leading [M:SS] marker and its trailing space.
var timestampRE = regexp.MustCompile(`^\[(\d+):(\d{2})\]\s*`)

// stripTimestamp removes a leading [M:SS] marker from line.
func stripTimestamp(line string) string {
	return timestampRE.ReplaceAllString(line, "")
}

// lineSeconds returns the line's leading timestamp in seconds, or false
// when the line carries none.
func lineSeconds(line string) (float64, bool) {
	m := timestampRE.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	return float64(minutes*60 + seconds), true
}

// Apply restructures the input lines (1-based, from the intermediate
// sentence-per-line Markdown) according to hints. Blank input lines are
// dropped. Pre-existing heading lines are kept verbatim; hint sections
// become "## Title" headings; paragraph-break lines start a new
// paragraph. Leading [M:SS] markers survive only on the first line of
// each paragraph.
func Apply(lines []string, hints types.StructureHints) string {
	sections := make(map[int]string, len(hints.Sections))
	for _, s := range hints.Sections {
		sections[s.Line] = s.Title
	}
	breaks := make(map[int]bool, len(hints.Paragraphs))
	for _, n := range hints.Paragraphs {
		breaks[n] = true
	}

	var out []string
	var para []string

	flushPara := func() {
		if len(para) > 0 {
			out = append(out, strings.Join(para, " "))
			para = para[:0:0]
		}
	}
	blankUnlessBlank := func() {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
	}

	if hints.Title != "" {
		out = append(out, "# "+hints.Title, "")
	}

	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t\r\n")
		if line == "" {
			continue
		}

		// Pre-existing headings pass through verbatim.
		if strings.HasPrefix(line, "#") {
			flushPara()
			blankUnlessBlank()
			out = append(out, line, "")
			continue
		}

		if title, ok := sections[i+1]; ok {
			flushPara()
			blankUnlessBlank()
			out = append(out, "## "+title, "")
		} else if breaks[i+1] {
			flushPara()
			blankUnlessBlank()
		}

		if len(para) > 0 {
			line = stripTimestamp(line)
		}
		para = append(para, line)
	}

	flushPara()

	return strings.Join(out, "\n") + "\n"
}

// SectionsFromChapters derives section hints from chapter metadata by
// matching each chapter's start time against the nearest subsequent
// timed line. Chapter-derived sections take priority over hint-supplied
// ones; the caller replaces hints.Sections with the result. Chapters
// with empty titles and chapters past the last timed line are dropped.
func SectionsFromChapters(lines []string, chapters []types.Chapter) []types.SectionHint {
	sorted := make([]types.Chapter, len(chapters))
	copy(sorted, chapters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	var out []types.SectionHint
	taken := make(map[int]bool)

	for _, ch := range sorted {
		if ch.Title == "" {
			continue
		}
		for i, line := range lines {
			secs, ok := lineSeconds(strings.TrimSpace(line))
			if !ok || secs < ch.StartTime {
				continue
			}
			if !taken[i+1] {
				taken[i+1] = true
				out = append(out, types.SectionHint{Line: i + 1, Title: ch.Title})
			}
			break
		}
	}

	return out
}
