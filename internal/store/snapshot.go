package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/logging"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS channels (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS videos (
	channel_position INTEGER NOT NULL REFERENCES channels(position),
	position         INTEGER NOT NULL,
	id               TEXT NOT NULL,
	title            TEXT NOT NULL,
	video_id         TEXT NOT NULL,
	published_at     INTEGER,
	url              TEXT NOT NULL,
	duration         TEXT NOT NULL,
	seen             INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (channel_position, position)
);
CREATE INDEX IF NOT EXISTS idx_videos_id ON videos(id);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Snapshot is an offline copy of a view stored in a sqlite file.
type Snapshot struct {
	db   *sql.DB
	path string
}

// OpenSnapshot opens (creating if needed) the snapshot database at path.
func OpenSnapshot(ctx context.Context, path string) (*Snapshot, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, wrap(SourceSnapshot, "open", fmt.Errorf("failed to create directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrap(SourceSnapshot, "open", fmt.Errorf("failed to open database: %w", err))
	}
	// One connection keeps writers from tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, snapshotSchema); err != nil {
		db.Close()
		return nil, wrap(SourceSnapshot, "open", fmt.Errorf("failed to create schema: %w", err))
	}

	return &Snapshot{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *Snapshot) Path() string {
	return s.path
}

// Save replaces the snapshot content with channels, keeping their order.
func (s *Snapshot) Save(ctx context.Context, channels []feed.Channel) error {
	start := time.Now()
	err := s.save(ctx, channels, start)
	logging.LogStoreOp("save", string(SourceSnapshot), time.Since(start), err)
	return err
}

func (s *Snapshot) save(ctx context.Context, channels []feed.Channel, savedAt time.Time) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrap(SourceSnapshot, "save", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{"DELETE FROM videos", "DELETE FROM channels"} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return wrap(SourceSnapshot, "save", err)
		}
	}

	for ci, ch := range channels {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO channels (position, name) VALUES (?, ?)", ci, ch.Name); err != nil {
			return wrap(SourceSnapshot, "save", err)
		}
		for vi, v := range ch.Videos {
			v = v.Normalize()
			var published sql.NullInt64
			if !v.PublishedAt.IsZero() {
				published = sql.NullInt64{Int64: v.PublishedAt.UnixNano(), Valid: true}
			}
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO videos
				(channel_position, position, id, title, video_id, published_at, url, duration, seen)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				ci, vi, v.ID, v.Title, v.VideoID, published, v.URL, v.Duration, v.Seen); err != nil {
				return wrap(SourceSnapshot, "save", err)
			}
		}
	}

	if _, err = tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES ('saved_at', ?)",
		savedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return wrap(SourceSnapshot, "save", err)
	}

	if err = tx.Commit(); err != nil {
		return wrap(SourceSnapshot, "save", err)
	}
	return nil
}

// SavedAt returns when Save last completed. It returns ErrNotFound for a
// snapshot that was never written.
func (s *Snapshot) SavedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'saved_at'").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, wrap(SourceSnapshot, "saved at", ErrNotFound)
	}
	if err != nil {
		return time.Time{}, wrap(SourceSnapshot, "saved at", err)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, wrap(SourceSnapshot, "saved at", err)
	}
	return t, nil
}

func (s *Snapshot) Channels(ctx context.Context) ([]feed.Channel, error) {
	start := time.Now()
	channels, err := s.channels(ctx)
	logging.LogStoreOp("channels", string(SourceSnapshot), time.Since(start), err)
	return channels, err
}

func (s *Snapshot) channels(ctx context.Context) ([]feed.Channel, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT position, name FROM channels ORDER BY position")
	if err != nil {
		return nil, wrap(SourceSnapshot, "channels", err)
	}

	var channels []feed.Channel
	index := map[int]int{}
	for rows.Next() {
		var pos int
		var name string
		if err := rows.Scan(&pos, &name); err != nil {
			rows.Close()
			return nil, wrap(SourceSnapshot, "channels", err)
		}
		index[pos] = len(channels)
		channels = append(channels, feed.Channel{Name: name, Videos: []feed.Video{}})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, wrap(SourceSnapshot, "channels", err)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `
		SELECT channel_position, id, title, video_id, published_at, url, duration, seen
		FROM videos ORDER BY channel_position, position`)
	if err != nil {
		return nil, wrap(SourceSnapshot, "channels", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pos       int
			v         feed.Video
			published sql.NullInt64
		)
		if err := rows.Scan(&pos, &v.ID, &v.Title, &v.VideoID, &published, &v.URL, &v.Duration, &v.Seen); err != nil {
			return nil, wrap(SourceSnapshot, "channels", err)
		}
		if published.Valid {
			v.PublishedAt = time.Unix(0, published.Int64).UTC()
		}
		i, ok := index[pos]
		if !ok {
			continue
		}
		channels[i].Videos = append(channels[i].Videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(SourceSnapshot, "channels", err)
	}
	return channels, nil
}

func (s *Snapshot) SetSeen(ctx context.Context, videoObjectID string, seen bool) error {
	start := time.Now()
	err := s.setSeen(ctx, videoObjectID, seen)
	logging.LogStoreOp("set seen", string(SourceSnapshot), time.Since(start), err)
	return err
}

func (s *Snapshot) setSeen(ctx context.Context, videoObjectID string, seen bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE videos SET seen = ? WHERE id = ?", seen, videoObjectID)
	if err != nil {
		return wrap(SourceSnapshot, "set seen", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap(SourceSnapshot, "set seen", err)
	}
	if n == 0 {
		return wrap(SourceSnapshot, "set seen", fmt.Errorf("video %s: %w", videoObjectID, ErrNotFound))
	}
	return nil
}

func (s *Snapshot) Close() error {
	return wrap(SourceSnapshot, "close", s.db.Close())
}
