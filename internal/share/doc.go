// Package share provides access to a remote SMB share.
//
// It defines the Client contract used by the scanner, helpers for
// share-style paths (\\server\share\sub\path) and an SMB2 session
// backed by go-smb2.
package share
