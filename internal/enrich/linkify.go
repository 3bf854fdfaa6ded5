// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// lineTimestampRE matches a [M:SS] marker anchored to a line start,
// including trailing whitespace.
var lineTimestampRE = regexp.MustCompile(`(?m)^\[(\d+):(\d{2})\]\s*`)

// Timestamps rewrites every line-leading [M:SS] marker into a clickable
// time-coded video link followed by the separator glyph:
//
//	[3:07] text  ->  [3:07](https://youtu.be/ID?t=187) ▸ text
//
// Markers that appear mid-line are left untouched.
func Timestamps(markdown, videoID string, cfg types.EnrichConfig) string {
	template := cfg.VideoURLTemplate
	if template == "" {
		template = types.DefaultVideoURLTemplate
	}
	separator := cfg.Separator
	if separator == "" {
		separator = types.DefaultSeparator
	}

	return lineTimestampRE.ReplaceAllStringFunc(markdown, func(match string) string {
		sub := lineTimestampRE.FindStringSubmatch(match)
		minutes, _ := strconv.Atoi(sub[1])
		seconds, _ := strconv.Atoi(sub[2])
		total := minutes*60 + seconds
		url := fmt.Sprintf(template, videoID, total)
		return fmt.Sprintf("[%d:%02d](%s) %s ", minutes, seconds, url, separator)
	})
}
