package share

import (
	"context"
	"io/fs"
)

// Metadata is the per-entry information returned by a Stat call.
type Metadata struct {
	// Mode holds the entry type and permission bits.
	Mode fs.FileMode
	// Size is the size in bytes.
	Size int64
}

// IsDir reports whether the directory type bit is set.
func (m Metadata) IsDir() bool {
	return m.Mode.IsDir()
}

// Client is the read-only view of a share needed to walk it.
// Paths are absolute share paths, e.g. \\server\share\dir\file.txt.
type Client interface {
	// Stat returns the metadata of the entry at path.
	Stat(ctx context.Context, path string) (Metadata, error)
	// ListDirectory returns the names of the immediate children of path.
	ListDirectory(ctx context.Context, path string) ([]string, error)
}
