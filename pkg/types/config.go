// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults for the tunable pipeline settings. Flags override config
// file values, which override these.
const (
	// DefaultPauseThreshold is the pause length in seconds that
	// triggers a paragraph break during segmentation.
	DefaultPauseThreshold = 2.0

	// DefaultVideoURLTemplate renders a timestamp link target from a
	// video ID and a total-seconds offset.
	DefaultVideoURLTemplate = "https://youtu.be/%s?t=%d"

	// DefaultSeparator is the glyph inserted after a linkified
	// timestamp marker.
	DefaultSeparator = "▸"
)

// SegmentConfig holds settings for the convert stage's segmenter.
type SegmentConfig struct {
	// PauseThreshold is the gap in seconds between consecutive words
	// that starts a new paragraph (default 2.0).
	PauseThreshold float64 `json:"pause_threshold" yaml:"pause_threshold"`

	// Timestamps controls whether sentences carry a leading [M:SS]
	// marker.
	Timestamps bool `json:"timestamps" yaml:"timestamps"`
}

// EnrichConfig holds settings for link enrichment and timestamp
// linkification.
type EnrichConfig struct {
	// WarnUnmatched reports link phrases with no occurrence in the
	// document to stderr instead of dropping them silently.
	WarnUnmatched bool `json:"warn_unmatched" yaml:"warn_unmatched"`

	// VideoURLTemplate is the fmt template for timestamp link targets;
	// it receives the video ID and the offset in whole seconds.
	VideoURLTemplate string `json:"video_url_template" yaml:"video_url_template"`

	// Separator is the glyph emitted after a linkified timestamp.
	Separator string `json:"separator" yaml:"separator"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Segment SegmentConfig `json:"segment" yaml:"segment"`
	Enrich  EnrichConfig  `json:"enrich" yaml:"enrich"`
}

// DefaultConfig returns the pipeline configuration with all defaults
// applied.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Segment: SegmentConfig{
			PauseThreshold: DefaultPauseThreshold,
			Timestamps:     true,
		},
		Enrich: EnrichConfig{
			VideoURLTemplate: DefaultVideoURLTemplate,
			Separator:        DefaultSeparator,
		},
	}
}
