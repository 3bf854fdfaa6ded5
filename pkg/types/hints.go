// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SectionHint names a section heading to insert before a specific line
// of the intermediate sentence-per-line Markdown. Lines are 1-based.
type SectionHint struct {
	Line  int    `json:"line" yaml:"line"`
	Title string `json:"title" yaml:"title"`
}

// LinkEntry maps a phrase to a URL for link enrichment. Entries are
// consumed longest-phrase-first; each phrase links at most once across
// the whole document.
type LinkEntry struct {
	Phrase string `json:"phrase" yaml:"phrase"`
	URL    string `json:"url" yaml:"url"`
}

// StructureHints is the externally supplied instruction set for the
// structure stage: a document title, section headings and paragraph
// breaks keyed by 1-based line number into the intermediate Markdown,
// and an optional link map. Consumed once, never persisted.
type StructureHints struct {
	// Title, when non-empty, is emitted as a level-one heading at the
	// top of the document.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Sections lists headings to insert, keyed by line number.
	Sections []SectionHint `json:"sections" yaml:"sections"`

	// Paragraphs lists line numbers that start a new paragraph.
	Paragraphs []int `json:"paragraphs" yaml:"paragraphs"`

	// Links is an optional phrase-to-URL map applied after
	// restructuring.
	Links []LinkEntry `json:"links,omitempty" yaml:"links,omitempty"`
}

// DescriptionLink is one labelled URL mined from a video description by
// the extract-links stage.
type DescriptionLink struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
}
