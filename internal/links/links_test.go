package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/vtt2md/pkg/types"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []types.DescriptionLink
	}{
		{
			name:        "label before colon",
			description: "My blog: https://example.com/blog",
			want: []types.DescriptionLink{
				{URL: "https://example.com/blog", Title: "My blog"},
			},
		},
		{
			name:        "label before dash",
			description: "Free course - https://example.com/course",
			want: []types.DescriptionLink{
				{URL: "https://example.com/course", Title: "Free course"},
			},
		},
		{
			name:        "label after url",
			description: "https://example.com/nn - Neural networks explained",
			want: []types.DescriptionLink{
				{URL: "https://example.com/nn", Title: "Neural networks explained"},
			},
		},
		{
			name:        "inline text before url",
			description: "Support the channel here https://example.com/donate",
			want: []types.DescriptionLink{
				{URL: "https://example.com/donate", Title: "Support the channel here"},
			},
		},
		{
			name:        "fallback to preceding line",
			description: "Check out the paper:\nhttps://example.com/paper",
			want: []types.DescriptionLink{
				{URL: "https://example.com/paper", Title: "Check out the paper"},
			},
		},
		{
			name:        "bare url with no context",
			description: "https://example.com/bare",
			want: []types.DescriptionLink{
				{URL: "https://example.com/bare", Title: ""},
			},
		},
		{
			name:        "empty description",
			description: "",
			want:        nil,
		},
		{
			name:        "no urls",
			description: "Just some text\nacross two lines",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.description)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDeduplicatesURLs(t *testing.T) {
	description := "First: https://example.com/x\nSecond: https://example.com/x"

	got := Extract(description)
	require.Len(t, got, 1)
	assert.Equal(t, "First", got[0].Title)
}

func TestExtractMultipleLinks(t *testing.T) {
	description := "Blog: https://example.com/a\n\nCourse - https://example.com/b"

	got := Extract(description)
	require.Len(t, got, 2)
	assert.Equal(t, "https://example.com/a", got[0].URL)
	assert.Equal(t, "https://example.com/b", got[1].URL)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  My blog:  ", "My blog"},
		{"\U0001F517 Links", "Links"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanTitle(tt.in))
	}
}
