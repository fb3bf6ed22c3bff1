package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/idelchi/smbscan/internal/share"
)

// DefaultThreshold is the size above which a file is reported (500 MiB).
const DefaultThreshold int64 = 500 * 1024 * 1024

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrEmptyPath is returned when a walk or classification is asked for "".
var ErrEmptyPath = errors.New("empty path")

// Options configures a Walker.
type Options struct {
	// Threshold is the exclusive size limit in bytes (0 = DefaultThreshold).
	Threshold int64
	// Unknown is the policy for entries that cannot be classified.
	Unknown UnknownPolicy
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// Walker traverses a share and collects findings.
type Walker struct {
	client     share.Client
	classifier *Classifier
	threshold  int64
	log        *zap.Logger

	progress     func(Summary)
	interval     time.Duration
	lastProgress time.Time

	start   time.Time
	summary Summary
}

// frame is a directory whose children are being visited.
type frame struct {
	dir      string
	children []string
	next     int
}

// NewWalker creates a Walker reading from client.
func NewWalker(client share.Client, opt Options, log *zap.Logger) *Walker {
	if log == nil {
		log = zap.NewNop()
	}

	if opt.Threshold <= 0 {
		opt.Threshold = DefaultThreshold
	}

	if opt.ProgressInterval <= 0 {
		opt.ProgressInterval = DefaultProgressInterval
	}

	return &Walker{
		client:     client,
		classifier: NewClassifier(client, opt.Unknown, log.Named("classifier")),
		threshold:  opt.Threshold,
		log:        log.Named("walker"),
		interval:   opt.ProgressInterval,
	}
}

// OnProgress registers hook to be called with the running summary at most
// once per progress interval. The hook runs on the walking goroutine.
func (w *Walker) OnProgress(hook func(Summary)) {
	w.progress = hook
}

// Summary returns the counters accumulated by the last walks.
func (w *Walker) Summary() Summary {
	return w.summary
}

// Walk traverses the tree rooted at root depth-first and appends findings to
// results in visiting order.
//
// Failing to list root is returned. Every other failure (stat of an entry,
// listing of a nested directory) is logged, counted and the entry skipped.
// Walk stops with the context error when ctx is done.
func (w *Walker) Walk(ctx context.Context, root string, results *Results) error {
	if root == "" {
		return ErrEmptyPath
	}

	w.start = time.Now()

	defer func() {
		w.summary.Elapsed += time.Since(w.start)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	children, err := w.list(ctx, root)
	if err != nil {
		return fmt.Errorf("listing root: %w", err)
	}

	stack := w.enter(nil, root, children, results)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			stack = stack[:len(stack)-1]

			continue
		}

		name := top.children[top.next]
		top.next++

		childPath := share.Join(top.dir, name)

		md, err := w.client.Stat(ctx, childPath)
		if err != nil {
			w.log.Warn("skipping entry", zap.String("path", childPath), zap.Error(err))
			w.summary.Errors++

			continue
		}

		w.summary.Entries++

		switch kind := w.classifier.Classify(ctx, childPath); {
		case kind == KindDirectory:
			if err := ctx.Err(); err != nil {
				return err
			}

			children, err := w.list(ctx, childPath)
			if err != nil {
				w.log.Warn("skipping directory", zap.String("path", childPath), zap.Error(err))
				w.summary.Errors++

				continue
			}

			stack = w.enter(stack, childPath, children, results)
		case kind == KindUnknown && w.classifier.Policy() == UnknownAsSkipped:
			w.summary.Errors++
		default:
			if kind == KindUnknown {
				w.summary.Errors++
			}

			w.check(childPath, name, md, results)
		}

		w.tick()
	}

	w.tick()

	return nil
}

// list lists dir and counts it.
func (w *Walker) list(ctx context.Context, dir string) ([]string, error) {
	children, err := w.client.ListDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	w.summary.Directories++
	w.log.Debug("listed directory", zap.String("path", dir), zap.Int("entries", len(children)))

	return children, nil
}

// enter reports dir as EMPTY when it has no children, or pushes it onto stack.
func (w *Walker) enter(stack []frame, dir string, children []string, results *Results) []frame {
	if len(children) == 0 {
		*results = append(*results, Finding{Path: dir, Name: share.BaseName(dir), Flag: FlagEmpty})
		w.summary.Empty++
		w.log.Debug("empty directory", zap.String("path", dir))

		return stack
	}

	return append(stack, frame{dir: dir, children: children})
}

// check reports a file whose size strictly exceeds the threshold.
func (w *Walker) check(path, name string, md share.Metadata, results *Results) {
	w.summary.Files++
	w.summary.Bytes += md.Size

	if md.Size <= w.threshold {
		return
	}

	*results = append(*results, Finding{Path: path, Name: name, Flag: FlagExceeded})
	w.summary.Exceeded++
	w.log.Debug("file exceeds threshold",
		zap.String("path", path),
		zap.String("size", humanize.IBytes(uint64(md.Size))), //nolint:gosec // Size is never negative
	)
}

// tick calls the progress hook when the interval has elapsed.
func (w *Walker) tick() {
	if w.progress == nil {
		return
	}

	now := time.Now()
	if now.Sub(w.lastProgress) < w.interval {
		return
	}

	w.lastProgress = now

	s := w.summary
	s.Elapsed += now.Sub(w.start)
	w.progress(s)
}
