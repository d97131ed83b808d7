// Package feed is the data model shared by the feed-backed demos: channels,
// their latest videos, and the presentation rules applied to them (what counts
// as new, how a channel is labelled, what the details pane shows).
//
// The package knows nothing about storage; internal/store converts documents
// into these types.
package feed
