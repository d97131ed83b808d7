package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/muurk/tuibox/internal/feed"
)

// Refresher loads channels from a Store, running at most one load at a time.
// Callers that arrive while a load is in flight share its result.
type Refresher struct {
	store Store
	group singleflight.Group
	now   func() time.Time

	mu   sync.RWMutex
	last time.Time
}

// NewRefresher wraps s.
func NewRefresher(s Store) *Refresher {
	return &Refresher{store: s, now: time.Now}
}

// Store returns the wrapped store.
func (r *Refresher) Store() Store {
	return r.store
}

// Refresh loads the current channels.
func (r *Refresher) Refresh(ctx context.Context) ([]feed.Channel, error) {
	v, err, _ := r.group.Do("channels", func() (any, error) {
		channels, err := r.store.Channels(ctx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.last = r.now()
		r.mu.Unlock()
		return channels, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneChannels(v.([]feed.Channel)), nil
}

// LastRefreshed returns the time of the last successful refresh, or the zero
// time if none has succeeded.
func (r *Refresher) LastRefreshed() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}
