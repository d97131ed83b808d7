package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/feed"
)

func openTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := OpenSnapshot(context.Background(), filepath.Join(t.TempDir(), "nested", "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestSnapshot(t)

	empty, err := s.Channels(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = s.SavedAt(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	want := testChannels()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Channels(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		require.Len(t, got[i].Videos, len(want[i].Videos))
		for j, v := range want[i].Videos {
			assert.Equal(t, v.Normalize(), got[i].Videos[j])
		}
	}

	savedAt, err := s.SavedAt(ctx)
	require.NoError(t, err)
	assert.False(t, savedAt.IsZero())
}

func TestSnapshotSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestSnapshot(t)

	require.NoError(t, s.Save(ctx, testChannels()))
	require.NoError(t, s.Save(ctx, []feed.Channel{{Name: "Only", Videos: []feed.Video{{ID: "x", Title: "X"}}}}))

	got, err := s.Channels(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Only", got[0].Name)
	assert.Equal(t, feed.NotAvailable, got[0].Videos[0].Duration)
}

func TestSnapshotSetSeen(t *testing.T) {
	ctx := context.Background()
	s := openTestSnapshot(t)
	require.NoError(t, s.Save(ctx, testChannels()))

	require.NoError(t, s.SetSeen(ctx, "b1", true))
	require.NoError(t, s.SetSeen(ctx, "a2", false))

	got, err := s.Channels(ctx)
	require.NoError(t, err)
	assert.False(t, got[0].Videos[1].Seen)
	assert.True(t, got[2].Videos[0].Seen)

	assert.ErrorIs(t, s.SetSeen(ctx, "unknown", true), ErrNotFound)
}

func TestOpenExistingSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.db")

	s, err := OpenSnapshot(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, testChannels()))
	require.NoError(t, s.Close())

	cfg := config.New()
	cfg.Snapshot.Path = path
	opened, err := Open(ctx, cfg, SourceSnapshot)
	require.NoError(t, err)
	defer opened.Close()

	got, err := opened.Channels(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
