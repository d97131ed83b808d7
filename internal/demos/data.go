package demos

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/store"
)

const loadTimeout = 30 * time.Second

const noDataMessage = "Failed to load data or no data available."

type storeOpenedMsg struct {
	id    int
	store store.Store
	err   error
}

type channelsLoadedMsg struct {
	id       int
	gen      int
	channels []feed.Channel
	err      error
}

// dataEvent tells a screen what a message did to its channels.
type dataEvent int

const (
	dataIgnored dataEvent = iota
	dataOpened
	dataLoaded
	dataFailed
)

// channelData owns the store behind a data-backed screen. Loads go through a
// store.Refresher and only one runs at a time; results of superseded loads
// are dropped. A reload asked for mid-load runs once that load finishes.
type channelData struct {
	id        int
	source    store.Source
	open      func(ctx context.Context) (store.Store, error)
	refresher *store.Refresher

	channels []feed.Channel
	err      error
	loading  bool
	pending  bool
	loaded   bool
	closed   bool
	gen      int
}

func newChannelData(env Env) *channelData {
	return &channelData{id: nextID(), source: env.Source, open: env.OpenStore}
}

// Store returns the open store, or nil.
func (d *channelData) Store() store.Store {
	if d.refresher == nil {
		return nil
	}
	return d.refresher.Store()
}

// Start opens the store and loads it. It is also the retry path after a
// failed open.
func (d *channelData) Start() tea.Cmd {
	if d.loading || d.closed {
		return nil
	}
	if d.refresher != nil {
		return d.Reload()
	}
	if d.open == nil {
		d.err = store.ErrUnavailable
		return nil
	}
	d.loading = true
	id, open := d.id, d.open
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		s, err := open(ctx)
		return storeOpenedMsg{id: id, store: s, err: err}
	}
}

// Reload fetches the channels again. While a load is running it only marks
// one more load to follow it.
func (d *channelData) Reload() tea.Cmd {
	if d.refresher == nil {
		return d.Start()
	}
	if d.closed {
		return nil
	}
	if d.loading {
		d.pending = true
		return nil
	}
	d.loading = true
	d.gen++
	id, gen, r := d.id, d.gen, d.refresher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		channels, err := r.Refresh(ctx)
		return channelsLoadedMsg{id: id, gen: gen, channels: channels, err: err}
	}
}

// Handle applies store messages addressed to d.
func (d *channelData) Handle(msg tea.Msg) (dataEvent, tea.Cmd) {
	switch msg := msg.(type) {
	case storeOpenedMsg:
		if msg.id != d.id {
			return dataIgnored, nil
		}
		d.loading = false
		if d.closed {
			if msg.store != nil {
				_ = msg.store.Close()
			}
			return dataIgnored, nil
		}
		if msg.err != nil {
			d.err = msg.err
			logging.Warn("Failed to open store", zap.String("source", string(d.source)), zap.Error(msg.err))
			return dataFailed, nil
		}
		d.refresher = store.NewRefresher(msg.store)
		return dataOpened, d.Reload()

	case channelsLoadedMsg:
		if msg.id != d.id || msg.gen != d.gen {
			return dataIgnored, nil
		}
		d.loading = false
		var next tea.Cmd
		if d.pending {
			d.pending = false
			next = d.Reload()
		}
		if msg.err != nil {
			d.err = msg.err
			return dataFailed, next
		}
		d.err = nil
		d.loaded = true
		d.channels = msg.channels
		return dataLoaded, next
	}
	return dataIgnored, nil
}

// Empty reports a finished load that returned no channels.
func (d *channelData) Empty() bool {
	return d.loaded && d.err == nil && len(d.channels) == 0
}

// Close releases the store. Later results are discarded.
func (d *channelData) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if s := d.Store(); s != nil {
		return s.Close()
	}
	return nil
}
