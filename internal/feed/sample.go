package feed

import (
	"fmt"
	"time"
)

// SampleChannels returns a small fixed data set with publication dates
// relative to now, so every freshness class is represented.
func SampleChannels(now time.Time) []Channel {
	day := 24 * time.Hour
	mk := func(n int, channel, title string, age time.Duration, duration string, seen bool) Video {
		return Video{
			ID:          fmt.Sprintf("sample%018d", n),
			Title:       title,
			VideoID:     fmt.Sprintf("%s-%02d", channel[:3], n),
			PublishedAt: now.Add(-age),
			Duration:    duration,
			Seen:        seen,
		}.Normalize()
	}

	return []Channel{
		{
			Name: "GopherCon",
			Videos: []Video{
				mk(1, "GopherCon", "Understanding Channels", 2*time.Hour, "PT41M", false),
				mk(2, "GopherCon", "Profiling in Production", day, "PT35M", false),
				mk(3, "GopherCon", "Generics, One Year Later", 9*day, "PT28M", true),
			},
		},
		{
			Name: "Charm",
			Videos: []Video{
				mk(4, "Charm", "Building TUIs with Bubble Tea", 3*day+time.Hour, "PT12M", false),
				mk(5, "Charm", "Lip Gloss Layouts", 20*day, "PT8M", false),
			},
		},
		{
			Name:   "Quiet Channel",
			Videos: nil,
		},
	}
}
