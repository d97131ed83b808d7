package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFreshness(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		published time.Time
		days      int
		want      Freshness
	}{
		{"earlier today", time.Date(2025, 5, 20, 0, 1, 0, 0, time.UTC), 2, Today},
		{"later today", time.Date(2025, 5, 20, 23, 0, 0, 0, time.UTC), 2, Today},
		{"yesterday", time.Date(2025, 5, 19, 23, 59, 0, 0, time.UTC), 2, Recent},
		{"boundary day", time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC), 2, Recent},
		{"day before boundary", time.Date(2025, 5, 17, 23, 59, 0, 0, time.UTC), 2, Old},
		{"zero window", time.Date(2025, 5, 19, 12, 0, 0, 0, time.UTC), 0, Old},
		{"long ago", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2, Old},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFreshness(now, tt.published, tt.days)
			if got != tt.want {
				t.Errorf("ClassifyFreshness() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyFreshnessUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	now := time.Date(2025, 5, 20, 8, 0, 0, 0, loc)
	// 2025-05-19 23:00 UTC is already 2025-05-20 in UTC+10.
	published := time.Date(2025, 5, 19, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, Today, ClassifyFreshness(now, published, 2))
}

func TestChannelLabel(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	ch := Channel{
		Name: "Charm",
		Videos: []Video{
			{ID: "1", PublishedAt: now.Add(-time.Hour)},
			{ID: "2", PublishedAt: now.AddDate(0, 0, -1)},
			{ID: "3", PublishedAt: now.AddDate(0, 0, -10)},
		},
	}

	assert.Equal(t, 2, ch.NewCount(now, 2))
	assert.Equal(t, "Charm (2)", ch.Label(now, 2))
	assert.Equal(t, "Charm", ch.Label(now.AddDate(0, 1, 0), 2))
	assert.Equal(t, "Empty", Channel{Name: "Empty"}.Label(now, 2))
}

func TestVideoNormalize(t *testing.T) {
	v := Video{Title: "x"}.Normalize()
	assert.Equal(t, NotAvailable, v.URL)
	assert.Equal(t, NotAvailable, v.Duration)

	v = Video{URL: "u", Duration: "PT1M"}.Normalize()
	assert.Equal(t, "u", v.URL)
	assert.Equal(t, "PT1M", v.Duration)
}

func TestDetailsMarkdown(t *testing.T) {
	ch := Channel{
		Name: "GopherCon",
		Videos: []Video{
			{
				Title:       "Understanding Channels",
				VideoID:     "abc123",
				PublishedAt: time.Date(2025, 5, 19, 15, 0, 0, 0, time.UTC),
				Duration:    "PT41M",
			},
			{Title: "No duration", VideoID: "def456", PublishedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	md := DetailsMarkdown(ch, "https://www.youtube.com/watch?v=")
	lines := strings.Split(strings.TrimSpace(md), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "# GopherCon", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "- 2025-05-19 [Understanding Channels](https://www.youtube.com/watch?v=abc123) **Duration:** PT41M", lines[2])
	assert.Equal(t, "- 2025-05-01 [No duration](https://www.youtube.com/watch?v=def456) **Duration:** N/A", lines[3])
}

func TestDetailsMarkdownEmpty(t *testing.T) {
	md := DetailsMarkdown(Channel{Name: "Quiet"}, "base/")
	assert.Equal(t, "# Quiet\n\nNo videos found for this channel.", md)
}

func TestDetailsMarkdownEscapesBrackets(t *testing.T) {
	ch := Channel{Name: "c", Videos: []Video{{Title: "[LIVE] talk", VideoID: "x"}}}
	md := DetailsMarkdown(ch, "b/")
	assert.Contains(t, md, `[\[LIVE\] talk](b/x)`)
	assert.Contains(t, md, "- N/A ")
}

func TestFindAndSeen(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	channels := SampleChannels(now)

	ch, ok := Find(channels, "Charm")
	require.True(t, ok)
	require.NotEmpty(t, ch.Videos)

	_, ok = Find(channels, "missing")
	assert.False(t, ok)

	id := ch.Videos[0].ID
	seen, ok := ToggleSeen(channels, "Charm", id)
	require.True(t, ok)
	assert.True(t, seen)

	ch, _ = Find(channels, "Charm")
	assert.True(t, ch.Videos[0].Seen)

	_, ok = ToggleSeen(channels, "GopherCon", id)
	assert.False(t, ok, "video belongs to another channel")

	assert.True(t, SetSeen(channels, id, false))
	assert.False(t, SetSeen(channels, "nope", true))
	ch, _ = Find(channels, "Charm")
	assert.False(t, ch.Videos[0].Seen)
}

func TestSampleChannelsCoverFreshness(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	got := map[Freshness]bool{}
	for _, c := range SampleChannels(now) {
		for _, v := range c.Videos {
			got[ClassifyFreshness(now, v.PublishedAt, 2)] = true
			assert.NotEmpty(t, v.ID)
		}
	}
	assert.True(t, got[Today])
	assert.True(t, got[Recent])
	assert.True(t, got[Old])
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://y/watch?v=abc", WatchURL("https://y/watch?v=", "abc"))
	assert.Equal(t, "base/N/A", WatchURL("base/", ""))
}
