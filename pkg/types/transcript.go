// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the vtt2md pipeline.
// Every value here is constructed by one stage, handed to the next, and
// discarded; nothing is mutated after construction.
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

// TimedWord is a single caption word paired with its absolute position
// in the video. Produced by the VTT extractor in non-decreasing
// timestamp order after deduplication.
type TimedWord struct {
	// Seconds is the word's timestamp from the start of the video.
	Seconds float64 `json:"seconds" yaml:"seconds"`

	// Text is the word itself, whitespace-trimmed, never empty.
	Text string `json:"text" yaml:"text"`
}

// UnitKind distinguishes the two kinds of segmenter output.
type UnitKind int

const (
	// UnitSentence is a completed sentence with a start timestamp.
	UnitSentence UnitKind = iota

	// UnitParagraphBreak marks a long pause between sentences. It
	// carries no timestamp and no text.
	UnitParagraphBreak
)

// SentenceUnit is one unit of segmenter output: either a sentence or a
// paragraph break.
type SentenceUnit struct {
	// Kind selects between a sentence and a paragraph break.
	Kind UnitKind `json:"kind" yaml:"kind"`

	// Start is the timestamp of the sentence's first word, in seconds.
	// Meaningful only when Kind is UnitSentence.
	Start float64 `json:"start" yaml:"start"`

	// Text is the formatted sentence, including the leading [M:SS]
	// marker when timestamps are enabled. Empty for paragraph breaks.
	Text string `json:"text" yaml:"text"`
}

// Sentence constructs a sentence unit.
func Sentence(start float64, text string) SentenceUnit {
	return SentenceUnit{Kind: UnitSentence, Start: start, Text: text}
}

// ParagraphBreak constructs a paragraph-break unit.
func ParagraphBreak() SentenceUnit {
	return SentenceUnit{Kind: UnitParagraphBreak}
}

// Chapter is a named video timestamp marker supplied by external
// metadata (the downloader's info.json).
type Chapter struct {
	// StartTime is the chapter start in seconds from the video start.
	StartTime float64 `json:"start_time" yaml:"start_time"`

	// Title is the chapter name. Chapters with empty titles are
	// skipped silently by the renderer.
	Title string `json:"title" yaml:"title"`
}

// VideoInfo holds the subset of the downloader's info.json the pipeline
// consumes. Unknown fields are ignored on load.
type VideoInfo struct {
	// ID is the video identifier used for timestamp links.
	ID string `json:"id" yaml:"id"`

	// Title is the video title, used as the document title.
	Title string `json:"title" yaml:"title"`

	// Description is the raw video description, mined for labelled
	// links by the extract-links stage.
	Description string `json:"description" yaml:"description"`

	// Chapters lists the video's chapter markers, possibly empty.
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
}
