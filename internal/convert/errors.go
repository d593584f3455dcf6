package convert

import (
	"errors"
	"fmt"
)

// Fixed message prefixes. Callers that only see the printed text branch on these.
const (
	FileNotFoundPrefix = "file not found"
	ReadErrorPrefix    = "error occurred"
)

var (
	ErrFileNotFound = errors.New(FileNotFoundPrefix)
	ErrRead         = errors.New(ReadErrorPrefix)

	ErrDecodeBase64 = errors.New("decode base64")
	ErrDecodeImage  = errors.New("decode image")
	ErrSave         = errors.New("save webp")
)

// EncodeError is returned by EncodeFile. Kind is ErrFileNotFound or ErrRead.
type EncodeError struct {
	Kind error
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Kind == ErrFileNotFound {
		return fmt.Sprintf("%s: check the path (%s)", FileNotFoundPrefix, e.Path)
	}
	return fmt.Sprintf("%s: %v", ReadErrorPrefix, e.Err)
}

func (e *EncodeError) Is(target error) bool {
	return target == e.Kind
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
