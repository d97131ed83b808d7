package feed

import (
	"fmt"
	"strings"
	"time"
)

// NotAvailable is shown for optional video fields the store left empty.
const NotAvailable = "N/A"

// Video is one upload inside a channel's latest-videos list.
type Video struct {
	// ID is the document id in the videos collection (hex ObjectID for Mongo).
	ID          string
	Title       string
	VideoID     string
	PublishedAt time.Time
	URL         string
	Duration    string
	Seen        bool
}

// Normalize fills optional fields with NotAvailable.
func (v Video) Normalize() Video {
	if v.URL == "" {
		v.URL = NotAvailable
	}
	if v.Duration == "" {
		v.Duration = NotAvailable
	}
	return v
}

// Channel groups the latest videos of a single channel.
type Channel struct {
	Name   string
	Videos []Video
}

// Freshness classifies how recently a video was published.
type Freshness int

const (
	Old Freshness = iota
	Recent
	Today
)

// String returns the lowercase name of the freshness class.
func (f Freshness) String() string {
	switch f {
	case Today:
		return "today"
	case Recent:
		return "recent"
	default:
		return "old"
	}
}

// ClassifyFreshness compares calendar dates in now's location: a video from
// today is Today, one from the last days calendar days is Recent.
func ClassifyFreshness(now, published time.Time, days int) Freshness {
	pub := startOfDay(published.In(now.Location()))
	today := startOfDay(now)

	if pub.Equal(today) {
		return Today
	}
	if !pub.Before(today.AddDate(0, 0, -days)) {
		return Recent
	}
	return Old
}

// IsNew reports whether published falls within the last days calendar days,
// today included.
func IsNew(now, published time.Time, days int) bool {
	return ClassifyFreshness(now, published, days) != Old
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NewCount counts the channel's videos that are new as of now.
func (c Channel) NewCount(now time.Time, days int) int {
	n := 0
	for _, v := range c.Videos {
		if IsNew(now, v.PublishedAt, days) {
			n++
		}
	}
	return n
}

// Label is the list entry for the channel: "name" or "name (N)".
func (c Channel) Label(now time.Time, days int) string {
	if n := c.NewCount(now, days); n > 0 {
		return fmt.Sprintf("%s (%d)", c.Name, n)
	}
	return c.Name
}

// Find returns the channel with the given name.
func Find(channels []Channel, name string) (Channel, bool) {
	for _, c := range channels {
		if c.Name == name {
			return c, true
		}
	}
	return Channel{}, false
}

// SetSeen sets the seen flag of the video with document id videoID, in place.
// It reports whether the video was found.
func SetSeen(channels []Channel, videoID string, seen bool) bool {
	found := false
	for ci := range channels {
		for vi := range channels[ci].Videos {
			if channels[ci].Videos[vi].ID == videoID {
				channels[ci].Videos[vi].Seen = seen
				found = true
			}
		}
	}
	return found
}

// ToggleSeen flips the seen flag of videoID inside the named channel and
// returns the new value.
func ToggleSeen(channels []Channel, channel, videoID string) (bool, bool) {
	for ci := range channels {
		if channels[ci].Name != channel {
			continue
		}
		for vi := range channels[ci].Videos {
			v := &channels[ci].Videos[vi]
			if v.ID == videoID {
				v.Seen = !v.Seen
				return v.Seen, true
			}
		}
	}
	return false, false
}

// WatchURL joins a watch-page base and a video id.
func WatchURL(base, videoID string) string {
	if videoID == "" {
		videoID = NotAvailable
	}
	return base + videoID
}

// DetailsMarkdown renders the details pane for one channel.
func DetailsMarkdown(c Channel, watchBase string) string {
	var b strings.Builder

	name := c.Name
	if name == "" {
		name = "Unknown Channel"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)

	if len(c.Videos) == 0 {
		b.WriteString("No videos found for this channel.")
		return b.String()
	}

	for _, raw := range c.Videos {
		v := raw.Normalize()
		title := v.Title
		if title == "" {
			title = "No Title"
		}
		published := NotAvailable
		if !v.PublishedAt.IsZero() {
			published = v.PublishedAt.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "- %s [%s](%s) **Duration:** %s\n",
			published, escapeLinkText(title), WatchURL(watchBase, v.VideoID), v.Duration)
	}
	return b.String()
}

var linkTextEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)

func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}
