package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/muurk/tuibox/internal/feed"
)

// Memory is an in-process Store. It backs --source sample and tests.
type Memory struct {
	mu       sync.RWMutex
	channels []feed.Channel
	closed   bool
}

// NewMemory returns a Memory seeded with a copy of channels.
func NewMemory(channels []feed.Channel) *Memory {
	return &Memory{channels: cloneChannels(channels)}
}

func (m *Memory) Channels(ctx context.Context) ([]feed.Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap(SourceSample, "channels", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, wrap(SourceSample, "channels", ErrUnavailable)
	}
	return cloneChannels(m.channels), nil
}

func (m *Memory) SetSeen(ctx context.Context, videoObjectID string, seen bool) error {
	if err := ctx.Err(); err != nil {
		return wrap(SourceSample, "set seen", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return wrap(SourceSample, "set seen", ErrUnavailable)
	}
	if !feed.SetSeen(m.channels, videoObjectID, seen) {
		return wrap(SourceSample, "set seen", fmt.Errorf("video %s: %w", videoObjectID, ErrNotFound))
	}
	return nil
}

// Replace swaps the stored channels.
func (m *Memory) Replace(channels []feed.Channel) {
	m.mu.Lock()
	m.channels = cloneChannels(channels)
	m.mu.Unlock()
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
