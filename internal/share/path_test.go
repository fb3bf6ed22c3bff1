package share_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/smbscan/internal/share"
)

func TestRoot(t *testing.T) {
	assert.Equal(t, `\\srv\pkv_share`, share.Root("srv", "pkv_share"))
}

func TestJoin(t *testing.T) {
	tests := []struct {
		dir, name, want string
	}{
		{`\\srv\share`, "a", `\\srv\share\a`},
		{`\\srv\share\`, "a", `\\srv\share\a`},
		{`\\srv\share/sub`, "b.txt", `\\srv\share\sub\b.txt`},
		{`\\srv\share`, "x/y", `\\srv\share\x\y`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, share.Join(tt.dir, tt.name), "Join(%q, %q)", tt.dir, tt.name)
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		`\\srv\share\empty`:   "empty",
		`\\srv\share\empty\`:  "empty",
		`\\srv\share`:         "share",
		`\\srv\share/a/b.iso`: "b.iso",
		"plain":               "plain",
	}

	for in, want := range tests {
		assert.Equal(t, want, share.BaseName(in), in)
	}
}

func TestRelPath(t *testing.T) {
	root := `\\srv\pkv_share`

	rel, err := share.RelPath(root, root)
	require.NoError(t, err)
	assert.Empty(t, rel)

	rel, err = share.RelPath(root, `\\SRV\pkv_share\Dir\file.bin`)
	require.NoError(t, err)
	assert.Equal(t, `Dir\file.bin`, rel)

	rel, err = share.RelPath(root, share.Join(root, "a/b"))
	require.NoError(t, err)
	assert.Equal(t, `a\b`, rel)

	_, err = share.RelPath(root, `\\srv\pkv_share2\x`)
	require.ErrorIs(t, err, share.ErrOutsideShare)

	_, err = share.RelPath(root, `\\other\pkv_share\x`)
	require.ErrorIs(t, err, share.ErrOutsideShare)
}

func TestMetadataIsDir(t *testing.T) {
	assert.True(t, share.Metadata{Mode: fs.ModeDir | 0o755}.IsDir())
	assert.False(t, share.Metadata{Mode: 0o644, Size: 10}.IsDir())
}
