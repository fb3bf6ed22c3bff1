// Package scan walks a share and reports empty directories and oversized files.
//
// The walk is a single-goroutine depth-first traversal driven by an explicit
// stack of directory frames. Per-entry failures are logged and skipped; only a
// failure to list the root aborts the walk.
package scan
