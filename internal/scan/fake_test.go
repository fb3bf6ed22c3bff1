package scan_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/idelchi/smbscan/internal/share"
)

var errAccessDenied = errors.New("access denied")

type node struct {
	dir      bool
	size     int64
	children []string
}

// fakeShare is an in-memory share. Children keep insertion order.
type fakeShare struct {
	nodes    map[string]*node
	statErr  map[string]error
	listErr  map[string]error
	statOK   map[string]int // number of successful stats before statErr applies
	statSeen map[string]int
}

func newFakeShare(root string) *fakeShare {
	return &fakeShare{
		nodes:    map[string]*node{root: {dir: true}},
		statErr:  map[string]error{},
		listErr:  map[string]error{},
		statOK:   map[string]int{},
		statSeen: map[string]int{},
	}
}

func (f *fakeShare) add(parent, name string, n *node) string {
	path := share.Join(parent, name)
	f.nodes[path] = n
	f.nodes[parent].children = append(f.nodes[parent].children, name)

	return path
}

func (f *fakeShare) dir(parent, name string) string {
	return f.add(parent, name, &node{dir: true})
}

func (f *fakeShare) file(parent, name string, size int64) string {
	return f.add(parent, name, &node{size: size})
}

func (f *fakeShare) Stat(_ context.Context, path string) (share.Metadata, error) {
	f.statSeen[path]++

	if err, ok := f.statErr[path]; ok && f.statSeen[path] > f.statOK[path] {
		return share.Metadata{}, err
	}

	n, ok := f.nodes[path]
	if !ok {
		return share.Metadata{}, fmt.Errorf("stat %s: %w", path, fs.ErrNotExist)
	}

	if n.dir {
		return share.Metadata{Mode: fs.ModeDir | 0o755}, nil
	}

	return share.Metadata{Mode: 0o644, Size: n.size}, nil
}

func (f *fakeShare) ListDirectory(_ context.Context, path string) ([]string, error) {
	if err, ok := f.listErr[path]; ok {
		return nil, err
	}

	n, ok := f.nodes[path]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", path, fs.ErrNotExist)
	}

	if !n.dir {
		return nil, fmt.Errorf("listing %s: not a directory", path)
	}

	return append([]string(nil), n.children...), nil
}
