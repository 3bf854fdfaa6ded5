package enrich

import (
	"strings"
	"testing"

	"github.com/pdiddy/vtt2md/pkg/types"
)

func TestTimestampsLineStart(t *testing.T) {
	md := "[3:07] something happens\n"

	got := Timestamps(md, "abc123", enrichCfg(false))
	want := "[3:07](https://youtu.be/abc123?t=187) ▸ something happens\n"
	if got != want {
		t.Errorf("Timestamps = %q, want %q", got, want)
	}
}

func TestTimestampsMidLineUntouched(t *testing.T) {
	md := "see [3:00] for details\n"

	got := Timestamps(md, "abc123", enrichCfg(false))
	if got != md {
		t.Errorf("mid-line marker rewritten: %q", got)
	}
}

func TestTimestampsMultipleLines(t *testing.T) {
	md := "[0:00] intro\n[1:05] middle\nplain line\n"

	got := Timestamps(md, "vid", enrichCfg(false))

	if !strings.Contains(got, "[0:00](https://youtu.be/vid?t=0)") {
		t.Errorf("first marker not linkified: %q", got)
	}
	if !strings.Contains(got, "[1:05](https://youtu.be/vid?t=65)") {
		t.Errorf("second marker not linkified: %q", got)
	}
	if !strings.Contains(got, "plain line\n") {
		t.Errorf("plain line altered: %q", got)
	}
}

func TestTimestampsMinuteOverflow(t *testing.T) {
	md := "[72:10] long video\n"

	got := Timestamps(md, "vid", enrichCfg(false))
	if !strings.Contains(got, "?t=4330)") {
		t.Errorf("total seconds wrong: %q", got)
	}
}

func TestTimestampsCustomTemplateAndSeparator(t *testing.T) {
	cfg := types.EnrichConfig{
		VideoURLTemplate: "https://video.example/%s#%d",
		Separator:        "|",
	}

	got := Timestamps("[0:30] text\n", "id9", cfg)
	want := "[0:30](https://video.example/id9#30) | text\n"
	if got != want {
		t.Errorf("Timestamps = %q, want %q", got, want)
	}
}
