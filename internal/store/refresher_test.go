package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/tuibox/internal/feed"
)

// gatedStore blocks Channels until release is closed.
type gatedStore struct {
	*Memory
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedStore) Channels(ctx context.Context) ([]feed.Channel, error) {
	g.calls.Add(1)
	g.once.Do(func() { close(g.entered) })
	<-g.release
	return g.Memory.Channels(ctx)
}

type failingStore struct{ *Memory }

func (failingStore) Channels(context.Context) ([]feed.Channel, error) {
	return nil, wrap(SourceMongo, "channels", ErrUnavailable)
}

func TestRefresherCoalesces(t *testing.T) {
	g := &gatedStore{
		Memory:  NewMemory(testChannels()),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	r := NewRefresher(g)

	var wg sync.WaitGroup
	results := make([][]feed.Channel, 5)
	errs := make([]error, 5)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = r.Refresh(context.Background())
	}()
	<-g.entered

	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.Refresh(context.Background())
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(g.release)
	wg.Wait()

	assert.Equal(t, int32(1), g.calls.Load())
	for i := range results {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 3)
	}

	// Each caller gets its own copy.
	results[0][0].Name = "mutated"
	assert.Equal(t, "GopherCon", results[1][0].Name)
}

func TestRefresherLastRefreshed(t *testing.T) {
	fixed := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	r := NewRefresher(NewMemory(testChannels()))
	r.now = func() time.Time { return fixed }

	assert.True(t, r.LastRefreshed().IsZero())
	_, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixed, r.LastRefreshed())
}

func TestRefresherError(t *testing.T) {
	r := NewRefresher(failingStore{NewMemory(nil)})

	_, err := r.Refresh(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, r.LastRefreshed().IsZero())
}
