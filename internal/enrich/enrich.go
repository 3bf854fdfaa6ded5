// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich rewrites finished Markdown: it turns known phrases
// into hyperlinks and leading [M:SS] markers into time-coded video
// links. Existing links, timestamp markers, and heading lines are
// protected spans that phrase matching never touches.
package enrich

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// protectedRE matches existing Markdown links [text](url) and
// timestamp markers [M:SS].
var protectedRE = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)|\[\d+:\d{2}\]`)

// replaceFirst links the first case-insensitive occurrence of phrase in
// text, skipping protected spans. It reports whether a replacement
// happened.
func replaceFirst(text, phrase, url string) (string, bool) {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(phrase))
	if err != nil {
		return text, false
	}

	protected := protectedRE.FindAllStringIndex(text, -1)
	inProtected := func(start, end int) bool {
		for _, p := range protected {
			if (p[0] <= start && start < p[1]) || (p[0] < end && end <= p[1]) {
				return true
			}
		}
		return false
	}

	for _, m := range pattern.FindAllStringIndex(text, -1) {
		if inProtected(m[0], m[1]) {
			continue
		}
		matched := text[m[0]:m[1]]
		return text[:m[0]] + "[" + matched + "](" + url + ")" + text[m[1]:], true
	}

	return text, false
}

// Links replaces the first occurrence of each mapped phrase with a
// Markdown hyperlink. Phrases are processed longest-first (stable for
// equal lengths) so multi-word phrases win over their substrings, and
// each phrase links at most once across the document. Heading lines
// are skipped wholesale. Phrases with no match are dropped; when
// cfg.WarnUnmatched is set each one is reported to w instead.
func Links(markdown string, linkMap []types.LinkEntry, cfg types.EnrichConfig, w io.Writer) string {
	ordered := make([]types.LinkEntry, len(linkMap))
	copy(ordered, linkMap)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Phrase) > len(ordered[j].Phrase)
	})

	lines := strings.SplitAfter(markdown, "\n")
	used := make(map[string]bool)

	for _, entry := range ordered {
		lower := strings.ToLower(entry.Phrase)
		if used[lower] {
			continue
		}

		linked := false
		for i, line := range lines {
			if strings.HasPrefix(line, "#") {
				continue
			}
			newLine, replaced := replaceFirst(line, entry.Phrase, entry.URL)
			if replaced {
				lines[i] = newLine
				used[lower] = true
				linked = true
				break
			}
		}

		if !linked && cfg.WarnUnmatched {
			fmt.Fprintf(w, "warning: link phrase %q not found in document\n", entry.Phrase)
		}
	}

	return strings.Join(lines, "")
}
