package scan

import "time"

// Summary holds counters for a walk.
type Summary struct {
	// Directories is the number of directories listed.
	Directories int64 `json:"directories"`
	// Entries is the number of entries whose metadata was read.
	Entries int64 `json:"entries"`
	// Files is the number of entries size checked.
	Files int64 `json:"files"`
	// Bytes is the cumulative size of all size checked entries.
	Bytes int64 `json:"bytes"`
	// Empty is the number of EMPTY findings.
	Empty int64 `json:"empty"`
	// Exceeded is the number of EXCEEDED findings.
	Exceeded int64 `json:"exceeded"`
	// Errors is the number of skipped entries and directories.
	Errors int64 `json:"errors"`
	// Elapsed is the time spent walking.
	Elapsed time.Duration `json:"elapsed"`
}

// Findings returns the total number of findings.
func (s Summary) Findings() int64 {
	return s.Empty + s.Exceeded
}
