// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// RenderMarkdown serializes sentence units into sentence-per-line
// Markdown. Chapters, when supplied, are consumed as a queue sorted by
// start time: a "## Title" heading is inserted before the first
// sentence at or past each chapter's start. Chapters with empty titles
// are skipped silently. Consecutive paragraph breaks collapse to a
// single blank line and the output always ends with exactly one
// trailing newline.
func RenderMarkdown(units []types.SentenceUnit, chapters []types.Chapter) string {
	queue := make([]types.Chapter, len(chapters))
	copy(queue, chapters)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].StartTime < queue[j].StartTime
	})

	var out []string

	blankUnlessBlank := func() {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
	}

	for _, u := range units {
		if u.Kind == types.UnitParagraphBreak {
			blankUnlessBlank()
			continue
		}

		for len(queue) > 0 && u.Start >= queue[0].StartTime {
			ch := queue[0]
			queue = queue[1:]
			if ch.Title == "" {
				continue
			}
			blankUnlessBlank()
			out = append(out, fmt.Sprintf("## %s", ch.Title), "")
		}

		out = append(out, u.Text)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n") + "\n"
}
