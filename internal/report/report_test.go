package report_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/smbscan/internal/report"
	"github.com/idelchi/smbscan/internal/scan"
)

func TestWriteRoundTrip(t *testing.T) {
	findings := scan.Results{
		{Path: `\\srv\share\a`, Name: "a", Flag: scan.FlagEmpty},
		{Path: `\\srv\share\b, c.iso`, Name: "b, c.iso", Flag: scan.FlagExceeded},
		{Path: `\\srv\share\"quoted".bin`, Name: `"quoted".bin`, Flag: scan.FlagExceeded},
		{Path: `\\srv\share\žluťoučký`, Name: "žluťoučký", Flag: scan.FlagEmpty},
	}

	path := filepath.Join(t.TempDir(), "static", "output.csv")
	require.NoError(t, report.Write(findings, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\n")
	assert.Len(t, lines, len(findings)+1)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(findings)+1)
	assert.Equal(t, report.Header, rows[0])

	for i, f := range findings {
		assert.Equal(t, []string{f.Path, f.Name, string(f.Flag)}, rows[i+1])
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale,data,here\n", 50)), 0o600))

	require.NoError(t, report.Write(scan.Results{{Path: "p", Name: "n", Flag: scan.FlagEmpty}}, path))

	rows, err := readRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{report.Header, {"p", "n", "EMPTY"}}, rows)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTo(&buf, nil))
	assert.Equal(t, "Path,Name,Flag", strings.TrimRight(buf.String(), "\r\n"))
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()

	// A directory cannot be opened for writing.
	err := report.Write(nil, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating report")
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return csv.NewReader(f).ReadAll()
}
