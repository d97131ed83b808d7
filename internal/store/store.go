package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/urls"
)

// Store is a source of channels and their latest videos.
type Store interface {
	// Channels returns every channel in source order.
	Channels(ctx context.Context) ([]feed.Channel, error)
	// SetSeen persists the seen flag of the video with the given document id.
	SetSeen(ctx context.Context, videoObjectID string, seen bool) error
	Close() error
}

// Source names a Store implementation.
type Source string

const (
	SourceMongo    Source = "mongo"
	SourceSnapshot Source = "snapshot"
	SourceSample   Source = "sample"
)

// Sources lists the accepted --source values.
func Sources() []Source {
	return []Source{SourceMongo, SourceSnapshot, SourceSample}
}

// ParseSource validates a --source value.
func ParseSource(s string) (Source, error) {
	src := Source(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Sources() {
		if src == known {
			return src, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want mongo, snapshot or sample)", ErrUnknownSource, s)
}

var (
	// ErrNotFound is returned when a video id does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when the backing store cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
	// ErrUnknownSource is returned by Open and ParseSource for bad source names.
	ErrUnknownSource = errors.New("unknown source")
)

// StoreError records which operation against which source failed.
type StoreError struct {
	Op     string
	Source Source
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrap(src Source, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Source: src, Err: err}
}

// Troubleshooting returns hints for an error returned by a Store.
func Troubleshooting(err error) []string {
	var se *StoreError
	src := Source("")
	if errors.As(err, &se) {
		src = se.Source
	}

	switch {
	case errors.Is(err, ErrUnknownSource):
		return []string{"Use --source mongo, --source snapshot or --source sample"}
	case errors.Is(err, ErrNotFound):
		return []string{"The video may have been removed; press r to reload"}
	case errors.Is(err, ErrUnavailable) && src == SourceSnapshot:
		return []string{
			"Create a snapshot first: tuibox snapshot",
			"Or point TUIBOX_SNAPSHOT_PATH at an existing snapshot file",
		}
	case errors.Is(err, ErrUnavailable), src == SourceMongo:
		return []string{
			"Check that MONGO_URI is set (environment or .env file)",
			"Verify the cluster allows connections from this host: " + urls.MongoNetworkAccess,
			"Connection string format: " + urls.MongoConnectionString,
			"Run: tuibox doctor",
		}
	default:
		return nil
	}
}

// Open returns the Store for the given source.
func Open(ctx context.Context, cfg *config.Config, src Source) (Store, error) {
	switch src {
	case SourceMongo:
		return OpenMongo(ctx, cfg.Mongo)
	case SourceSnapshot:
		if _, err := os.Stat(cfg.Snapshot.Path); err != nil {
			return nil, wrap(SourceSnapshot, "open", fmt.Errorf("%w: %v", ErrUnavailable, err))
		}
		return OpenSnapshot(ctx, cfg.Snapshot.Path)
	case SourceSample:
		return NewMemory(feed.SampleChannels(time.Now())), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src)
	}
}

func cloneChannels(in []feed.Channel) []feed.Channel {
	if in == nil {
		return nil
	}
	out := make([]feed.Channel, len(in))
	for i, c := range in {
		out[i] = feed.Channel{Name: c.Name}
		if c.Videos != nil {
			out[i].Videos = append([]feed.Video(nil), c.Videos...)
		}
	}
	return out
}
