package convert

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/b64webp/b64webp/internal/encode"
)

// EncodeFile reads the whole file at path and returns its bytes as standard,
// padded Base64 text.
func EncodeFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", newEncodeError(path, err)
	}
	defer file.Close() // nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		return "", newEncodeError(path, err)
	}

	return encode.EncodeBase64String(data), nil
}

func newEncodeError(path string, err error) *EncodeError {
	kind := ErrRead
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrFileNotFound
	}
	return &EncodeError{Kind: kind, Path: path, Err: err}
}
