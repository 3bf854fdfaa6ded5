package segment

import (
	"testing"

	"github.com/pdiddy/vtt2md/pkg/types"
)

func cfg(pause float64, timestamps bool) types.SegmentConfig {
	return types.SegmentConfig{PauseThreshold: pause, Timestamps: timestamps}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{3.9, "0:03"},
		{59, "0:59"},
		{65.5, "1:05"},
		{4330, "72:10"}, // minutes are not wrapped at the hour
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%f) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSentencesPauseBreak(t *testing.T) {
	words := []types.TimedWord{
		{Seconds: 0.0, Text: "Hello"},
		{Seconds: 0.5, Text: "world."},
		{Seconds: 3.0, Text: "Next"},
		{Seconds: 3.4, Text: "sentence."},
	}

	units := Sentences(words, cfg(2.0, true))

	want := []types.SentenceUnit{
		types.Sentence(0.0, "[0:00] Hello world."),
		types.ParagraphBreak(),
		types.Sentence(3.0, "[0:03] Next sentence."),
	}
	if len(units) != len(want) {
		t.Fatalf("len(units) = %d, want %d: %v", len(units), len(want), units)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Errorf("units[%d] = %+v, want %+v", i, units[i], want[i])
		}
	}
}

func TestSentencesNoTimestamps(t *testing.T) {
	words := []types.TimedWord{
		{Seconds: 1.0, Text: "Just"},
		{Seconds: 1.2, Text: "one."},
	}
	units := Sentences(words, cfg(2.0, false))
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	if units[0].Text != "Just one." {
		t.Errorf("text = %q, want %q", units[0].Text, "Just one.")
	}
	if units[0].Start != 1.0 {
		t.Errorf("start = %f, want 1.0", units[0].Start)
	}
}

func TestSentencesTerminalPunctuation(t *testing.T) {
	tests := []struct {
		name string
		word string
		ends bool
	}{
		{"period", "done.", true},
		{"question", "really?", true},
		{"exclamation", "wow!", true},
		{"period and closing quote", `done."`, true},
		{"period and curly quote", "done.”", true},
		{"period and paren", "done.)", true},
		{"no punctuation", "done", false},
		{"mid-word period", "e.g", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := []types.TimedWord{
				{Seconds: 0, Text: tt.word},
				{Seconds: 0.5, Text: "more."},
			}
			units := Sentences(words, cfg(2.0, false))
			wantUnits := 1
			if tt.ends {
				wantUnits = 2
			}
			if len(units) != wantUnits {
				t.Errorf("len(units) = %d, want %d: %v", len(units), wantUnits, units)
			}
		})
	}
}

func TestSentencesFlushesTrailingWords(t *testing.T) {
	words := []types.TimedWord{
		{Seconds: 0, Text: "trailing"},
		{Seconds: 0.3, Text: "words"},
	}
	units := Sentences(words, cfg(2.0, true))
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	if units[0].Text != "[0:00] trailing words" {
		t.Errorf("text = %q", units[0].Text)
	}
}

func TestSentencesNoLeadingParagraphBreak(t *testing.T) {
	// A gap before any accumulated content must not open with a break,
	// even if the first word sits far from zero.
	words := []types.TimedWord{
		{Seconds: 30.0, Text: "Late"},
		{Seconds: 30.4, Text: "start."},
	}
	units := Sentences(words, cfg(2.0, true))
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1: %v", len(units), units)
	}
	if units[0].Kind != types.UnitSentence {
		t.Errorf("units[0].Kind = %v, want sentence", units[0].Kind)
	}
	if units[0].Text != "[0:30] Late start." {
		t.Errorf("text = %q", units[0].Text)
	}
}

func TestSentencesSecondSentenceTimestamp(t *testing.T) {
	// The sentence after a mid-paragraph boundary starts at its own
	// first word, not at the paragraph's.
	words := []types.TimedWord{
		{Seconds: 0.0, Text: "One."},
		{Seconds: 1.0, Text: "Two."},
	}
	units := Sentences(words, cfg(5.0, true))
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
	if units[1].Text != "[0:01] Two." {
		t.Errorf("units[1].Text = %q, want %q", units[1].Text, "[0:01] Two.")
	}
}

func TestSentencesEmptyInput(t *testing.T) {
	if units := Sentences(nil, cfg(2.0, true)); units != nil {
		t.Errorf("Sentences(nil) = %v, want nil", units)
	}
}
