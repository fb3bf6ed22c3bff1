package scan

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idelchi/smbscan/internal/share"
)

// Kind is the classification of a single entry.
type Kind int

const (
	// KindUnknown means the entry metadata could not be queried.
	KindUnknown Kind = iota
	// KindFile is any entry without the directory bit.
	KindFile
	// KindDirectory is a directory.
	KindDirectory
)

// UnknownPolicy decides how the walker treats entries of KindUnknown.
type UnknownPolicy int

const (
	// UnknownAsFile treats unclassifiable entries as files: they are size
	// checked with the metadata already obtained and never descended into.
	UnknownAsFile UnknownPolicy = iota
	// UnknownAsSkipped ignores unclassifiable entries entirely.
	UnknownAsSkipped
)

// String returns the configuration name of the policy.
func (p UnknownPolicy) String() string {
	switch p {
	case UnknownAsFile:
		return "file"
	case UnknownAsSkipped:
		return "skip"
	default:
		return fmt.Sprintf("UnknownPolicy(%d)", int(p))
	}
}

// ParseUnknownPolicy parses "file" or "skip".
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "file":
		return UnknownAsFile, nil
	case "skip":
		return UnknownAsSkipped, nil
	default:
		return 0, fmt.Errorf("invalid unknown-entry policy %q: must be one of [file skip]", s)
	}
}

// Classifier determines whether share entries are directories.
type Classifier struct {
	client share.Client
	policy UnknownPolicy
	log    *zap.Logger
}

// NewClassifier returns a Classifier querying client.
func NewClassifier(client share.Client, policy UnknownPolicy, log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}

	return &Classifier{client: client, policy: policy, log: log}
}

// Policy returns the policy applied to unknown entries.
func (c *Classifier) Policy() UnknownPolicy {
	return c.policy
}

// Classify queries the metadata of path. Query failures are logged, not returned.
func (c *Classifier) Classify(ctx context.Context, path string) Kind {
	if path == "" {
		c.log.Warn("cannot classify entry", zap.Error(ErrEmptyPath))

		return KindUnknown
	}

	md, err := c.client.Stat(ctx, path)
	if err != nil {
		c.log.Warn("cannot classify entry", zap.String("path", path), zap.Error(err))

		return KindUnknown
	}

	if md.IsDir() {
		return KindDirectory
	}

	return KindFile
}

// IsDirectory reports whether path is a directory. Entries that cannot be
// classified are reported as not being directories.
func (c *Classifier) IsDirectory(ctx context.Context, path string) bool {
	return c.Classify(ctx, path) == KindDirectory
}
