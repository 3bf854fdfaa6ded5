// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment groups a timed word stream into sentences and
// paragraphs, and renders the result as sentence-per-line Markdown.
//
// Sentences end at terminal punctuation; paragraphs begin wherever the
// gap between consecutive words exceeds the configured pause threshold.
package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// sentenceEndRE matches a word that terminates a sentence: ., ! or ?,
// optionally followed by closing quotes or brackets.
var sentenceEndRE = regexp.MustCompile(`[.!?]["'` + "’”" + `)]*$`)

// FormatTimestamp renders seconds as M:SS with zero-padded seconds.
// Minutes are not wrapped at 60, so inputs past the hour render as
// e.g. 72:10.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Sentences converts the sorted word stream into sentence units and
// paragraph breaks. Each sentence carries the timestamp of its first
// word and, when cfg.Timestamps is set, a leading [M:SS] marker.
func Sentences(words []types.TimedWord, cfg types.SegmentConfig) []types.SentenceUnit {
	if len(words) == 0 {
		return nil
	}

	flush := func(buf []string, start float64) types.SentenceUnit {
		text := strings.Join(buf, " ")
		if cfg.Timestamps {
			text = fmt.Sprintf("[%s] %s", FormatTimestamp(start), text)
		}
		return types.Sentence(start, text)
	}

	var units []types.SentenceUnit
	var buf []string
	prev := words[0].Seconds
	pending := words[0].Seconds

	for _, w := range words {
		gap := w.Seconds - prev

		// A long pause ends the current paragraph, unless nothing has
		// accumulated yet.
		if gap > cfg.PauseThreshold && (len(buf) > 0 || len(units) > 0) {
			if len(buf) > 0 {
				units = append(units, flush(buf, pending))
				buf = buf[:0:0]
			}
			units = append(units, types.ParagraphBreak())
			pending = w.Seconds
		}

		if len(buf) == 0 {
			pending = w.Seconds
		}
		buf = append(buf, w.Text)
		prev = w.Seconds

		if sentenceEndRE.MatchString(w.Text) {
			units = append(units, flush(buf, pending))
			buf = buf[:0:0]
		}
	}

	if len(buf) > 0 {
		units = append(units, flush(buf, pending))
	}

	return units
}
