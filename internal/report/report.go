// Package report serializes scan findings to CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/idelchi/smbscan/internal/scan"
)

// DefaultPath is the default report location.
const DefaultPath = "static/output.csv"

// Header is the CSV header row.
var Header = []string{"Path", "Name", "Flag"} //nolint:gochecknoglobals // Fixed schema

// Write writes findings to path, replacing any existing file.
// The parent directory is created when missing.
func Write(findings scan.Results, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd // Standard directory permissions
			return fmt.Errorf("creating report directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}

	if err := WriteTo(file, findings); err != nil {
		_ = file.Close()

		return fmt.Errorf("writing report %q: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report %q: %w", path, err)
	}

	return nil
}

// WriteTo writes the header and one row per finding to w.
// Lines end with CRLF on Windows and LF elsewhere.
func WriteTo(w io.Writer, findings scan.Results) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = runtime.GOOS == "windows"

	if err := writer.Write(Header); err != nil {
		return err
	}

	for _, f := range findings {
		if err := writer.Write([]string{f.Path, f.Name, string(f.Flag)}); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}
