// Package store loads channels and their latest videos from one of three
// sources: a live MongoDB view, a local sqlite snapshot of that view, or a
// built-in sample set.
//
// All sources satisfy Store. Failures are returned as *StoreError and can be
// tested with errors.Is against ErrNotFound, ErrUnavailable and
// ErrUnknownSource. Refresher coalesces concurrent loads; Watcher reports
// changes to a snapshot file written by another process.
package store
