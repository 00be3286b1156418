package secretsource

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileOption configures a File source.
type FileOption func(*File)

// WithTrimSpace strips leading and trailing whitespace from the file contents,
// which covers secrets written with a trailing newline.
func WithTrimSpace() FileOption {
	return func(f *File) { f.trim = true }
}

// File reads the secret once at construction and serves the cached bytes.
// A leading byte order mark is dropped and a UTF-16 file is converted to
// UTF-8; any other content is kept byte for byte unless WithTrimSpace is set.
type File struct {
	path   string
	trim   bool
	secret []byte
}

// NewFile reads the secret stored at path.
// A missing file fails immediately with ErrFileNotFound.
func NewFile(path string, opts ...FileOption) (*File, error) {
	f := &File{path: path}
	for _, opt := range opts {
		opt(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrFileNotFound, err)
		}
		return nil, errors.Join(ErrUnavailable, err)
	}

	data, _, err = transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	if f.trim {
		data = bytes.TrimSpace(data)
	}
	if len(data) == 0 {
		return nil, ErrEmptySecret
	}

	f.secret = data
	return f, nil
}

// Path returns the file the secret was read from.
func (f *File) Path() string { return f.path }

// Provide returns the secret read at construction without touching the file again.
func (f *File) Provide(context.Context) ([]byte, error) {
	out := make([]byte, len(f.secret))
	copy(out, f.secret)
	return out, nil
}
