// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links mines labelled URLs out of a video description.
//
// Supported patterns, in priority order:
//
//	Label: https://example.com
//	Label - https://example.com
//	https://example.com - Label
//	Some descriptive sentence https://example.com
//
// When no inline label is found, the nearest non-empty line above the
// URL serves as a fallback title. Links without any discernible title
// are kept with an empty title.
package links

import (
	"regexp"
	"strings"

	"github.com/pdiddy/vtt2md/pkg/types"
)

var (
	urlRE  = regexp.MustCompile(`https?://[^\s)>\]]+`)
	httpRE = regexp.MustCompile(`^https?://`)

	// "Label: URL" or "Label - URL"; the label must not itself be a URL.
	labelBeforeRE = regexp.MustCompile(`^(?P<label>[^:\n]{2,80})\s*[-:]\s*(?P<url>https?://[^\s)>\]]+)`)

	// "URL - Label" with the label after the URL.
	labelAfterRE = regexp.MustCompile(`^(?P<url>https?://[^\s)>\]]+)\s+[-–—]\s+(?P<label>.{2,80}?)$`)

	// Emoji and variation-selector prefixes commonly decorating
	// description lines.
	emojiPrefixRE = regexp.MustCompile(`^[\x{1F300}-\x{1FAD6}\x{2600}-\x{27BF}\x{FE00}-\x{FEFF}\s]+`)
)

// cleanTitle strips whitespace, trailing colons, and emoji-heavy
// prefixes from a candidate title.
func cleanTitle(title string) string {
	title = strings.TrimRight(strings.TrimSpace(title), ":")
	title = emojiPrefixRE.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// Extract parses links and their titles from a description string.
// URLs are deduplicated; the first occurrence wins.
func Extract(description string) []types.DescriptionLink {
	if description == "" {
		return nil
	}

	lines := strings.Split(description, "\n")
	var results []types.DescriptionLink
	seen := make(map[string]bool)

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if m := labelBeforeRE.FindStringSubmatch(stripped); m != nil {
			label, url := m[1], m[2]
			if !httpRE.MatchString(strings.TrimSpace(label)) {
				if !seen[url] {
					seen[url] = true
					results = append(results, types.DescriptionLink{URL: url, Title: cleanTitle(label)})
				}
				continue
			}
		}

		if m := labelAfterRE.FindStringSubmatch(stripped); m != nil {
			url, label := m[1], m[2]
			if !seen[url] {
				seen[url] = true
				results = append(results, types.DescriptionLink{URL: url, Title: cleanTitle(label)})
			}
			continue
		}

		urls := urlRE.FindAllString(stripped, -1)
		if len(urls) == 0 {
			continue
		}

		for _, url := range urls {
			if seen[url] {
				continue
			}
			seen[url] = true

			// Text before the URL on the same line.
			before := strings.TrimSpace(stripped[:strings.Index(stripped, url)])
			before = strings.TrimRight(before, ":-")
			if before != "" && !httpRE.MatchString(before) {
				results = append(results, types.DescriptionLink{URL: url, Title: cleanTitle(before)})
				continue
			}

			// Fall back to the preceding non-empty line.
			title := ""
			for j := i - 1; j >= 0; j-- {
				prev := strings.TrimSpace(lines[j])
				if prev != "" && !urlRE.MatchString(prev) {
					title = cleanTitle(prev)
					break
				}
			}
			results = append(results, types.DescriptionLink{URL: url, Title: title})
		}
	}

	return results
}
