package object

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrNotFound is returned by Open and Delete for unknown keys.
var ErrNotFound = errors.New("object not found")

// ErrInvalidName is returned by Key for empty or traversing file names.
var ErrInvalidName = errors.New("invalid file name")

// Store saves and retrieves rendered documents by key.
type Store interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Key builds the storage key "<hashed owner>/<id>_<file name>". The owner is
// hashed so keys never expose student identifiers.
func Key(owner, id, fileName string) (string, error) {
	name, err := sanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	return path.Join(ownerDir(owner), id+"_"+name), nil
}

func ownerDir(owner string) string {
	sum := sha256.Sum256([]byte(owner))
	return hex.EncodeToString(sum[:])
}

// sanitizeFileName flattens path separators and rejects traversal.
func sanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidName
	}
	s := strings.TrimSpace(name)
	s = strings.NewReplacer("/", "_", "\\", "_").Replace(s)
	if s == "" {
		return "", ErrInvalidName
	}
	return s, nil
}
