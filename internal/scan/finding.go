package scan

import (
	"cmp"
	"slices"
)

// Flag classifies a Finding.
type Flag string

const (
	// FlagEmpty marks a directory with no entries.
	FlagEmpty Flag = "EMPTY"
	// FlagExceeded marks a file larger than the threshold.
	FlagExceeded Flag = "EXCEEDED"
)

// Finding is one reported anomaly.
type Finding struct {
	// Path is the full share path of the entry.
	Path string `json:"path"`
	// Name is the leaf name of the entry.
	Name string `json:"name"`
	// Flag is the anomaly class.
	Flag Flag `json:"flag"`
}

// Results accumulates findings in traversal order.
type Results []Finding

// SortByFlag stably sorts findings by flag, EMPTY before EXCEEDED.
func SortByFlag(results Results) {
	slices.SortStableFunc(results, func(a, b Finding) int {
		return cmp.Compare(a.Flag, b.Flag)
	})
}
