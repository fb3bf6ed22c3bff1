package share

import (
	"errors"
	"fmt"
	"strings"
)

// Separator is the canonical share path separator.
const Separator = `\`

// ErrOutsideShare is returned when a path does not belong to the mounted share.
var ErrOutsideShare = errors.New("path outside share")

// Normalize replaces alternate separators with the canonical one.
func Normalize(path string) string {
	return strings.ReplaceAll(path, "/", Separator)
}

// Root builds the share root path \\server\share.
func Root(server, share string) string {
	return Separator + Separator + server + Separator + share
}

// Join appends name to dir.
func Join(dir, name string) string {
	dir = strings.TrimRight(Normalize(dir), Separator)

	return Normalize(dir + Separator + name)
}

// BaseName returns the last element of path.
// Trailing separators are ignored.
func BaseName(path string) string {
	path = strings.TrimRight(Normalize(path), Separator)
	if i := strings.LastIndex(path, Separator); i >= 0 {
		return path[i+1:]
	}

	return path
}

// RelPath strips root from path and returns the remainder without a leading
// separator. The share root itself maps to the empty string.
func RelPath(root, path string) (string, error) {
	root = strings.TrimRight(Normalize(root), Separator)
	path = strings.TrimRight(Normalize(path), Separator)

	if !strings.EqualFold(path, root) && !hasPrefixFold(path, root+Separator) {
		return "", fmt.Errorf("%w: %q is not under %q", ErrOutsideShare, path, root)
	}

	return strings.TrimPrefix(path[len(root):], Separator), nil
}

// hasPrefixFold is strings.HasPrefix ignoring case; SMB paths are case-insensitive.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
