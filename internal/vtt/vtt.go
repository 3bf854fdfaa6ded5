// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vtt parses WebVTT caption files with YouTube-style inline
// per-word timing tags into a chronological stream of timed words.
//
// YouTube auto-captions arrive as "rolling" cues: each cue repeats the
// previous line as plain text on its first payload line and carries the
// new words on its second line, tagged as
//
//	leading_word<HH:MM:SS.mmm><c> word2</c><HH:MM:SS.mmm><c> word3</c>
//
// Only cues with inline tags are processed; untagged cues repeat text
// that a tagged cue already covers.
package vtt

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/vtt2md/pkg/types"
)

var (
	// cueTimeRE matches a cue timing line, e.g.
	// "00:00:01.234 --> 00:00:03.456 align:start position:0%".
	cueTimeRE = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}\.\d{3})\s+-->\s+(\d{2}:\d{2}:\d{2}\.\d{3})`)

	// wordTagRE matches one inline-tagged word: <timestamp><c> word</c>.
	wordTagRE = regexp.MustCompile(`<(\d{2}:\d{2}:\d{2}\.\d{3})><c>\s*(.*?)</c>`)

	// leadingWordRE matches text preceding the first inline timestamp
	// tag on a rolling cue's second line. That word inherits the cue's
	// own start time.
	leadingWordRE = regexp.MustCompile(`^([^<\n]+?)<\d{2}:\d{2}:\d{2}\.\d{3}>`)
)

// Cue is a single timed caption entry. Lines holds the payload lines
// with inline tags preserved.
type Cue struct {
	Start float64
	Lines []string
}

// parseTimestamp converts "HH:MM:SS.mmm" to seconds.
func parseTimestamp(ts string) (float64, error) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
}

// ScanCues reads a WebVTT stream and returns its cues in file order.
// Header blocks (WEBVTT, NOTE, STYLE) and cue identifiers are skipped;
// inline tags in payload lines are kept verbatim.
func ScanCues(r *bufio.Scanner) ([]Cue, error) {
	var cues []Cue

	for r.Scan() {
		line := strings.TrimSpace(r.Text())

		m := cueTimeRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		start, err := parseTimestamp(m[1])
		if err != nil {
			return nil, err
		}

		// A cue's payload runs to the next empty line. Lines holding
		// only whitespace are real payload in rolling cues (the first
		// cue's "previous text" line is a single space), so only a
		// truly empty line terminates the cue.
		cue := Cue{Start: start}
		for r.Scan() {
			payload := strings.TrimRight(r.Text(), "\r")
			if payload == "" {
				break
			}
			cue.Lines = append(cue.Lines, payload)
		}
		if len(cue.Lines) > 0 {
			cues = append(cues, cue)
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("scanning captions: %w", err)
	}
	return cues, nil
}

// extractCueWords pulls (timestamp, word) pairs out of one rolling cue.
// The first payload line repeats already-covered text and is ignored;
// the second line carries the leading word plus the tagged words.
func extractCueWords(cue Cue) []types.TimedWord {
	if len(cue.Lines) < 2 {
		return nil
	}

	second := cue.Lines[1]
	var words []types.TimedWord

	if m := leadingWordRE.FindStringSubmatch(second); m != nil {
		if w := strings.TrimSpace(m[1]); w != "" {
			words = append(words, types.TimedWord{Seconds: cue.Start, Text: w})
		}
	}

	for _, m := range wordTagRE.FindAllStringSubmatch(second, -1) {
		ts, err := parseTimestamp(m[1])
		if err != nil {
			continue
		}
		if w := strings.TrimSpace(m[2]); w != "" {
			words = append(words, types.TimedWord{Seconds: ts, Text: w})
		}
	}

	return words
}

// ExtractWords converts cues into a deduplicated, chronologically
// sorted word stream. Cues without inline tags are skipped. Duplicate
// (timestamp, word) pairs from overlapping rolling cues keep their
// earliest occurrence. An empty result is not an error; the caller
// decides whether to warn.
func ExtractWords(cues []Cue) []types.TimedWord {
	var all []types.TimedWord
	seen := make(map[types.TimedWord]struct{})

	for _, cue := range cues {
		if !strings.Contains(strings.Join(cue.Lines, "\n"), "<c>") {
			continue
		}
		for _, w := range extractCueWords(cue) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			all = append(all, w)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Seconds < all[j].Seconds
	})
	return all
}

// ParseFile reads a WebVTT file and returns its deduplicated word
// stream.
func ParseFile(path string) ([]types.TimedWord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening captions file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	cues, err := ScanCues(scanner)
	if err != nil {
		return nil, err
	}
	return ExtractWords(cues), nil
}
