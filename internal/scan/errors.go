package scan

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Kind is a stable code for the reason a file was skipped
type Kind string

const (
	// KindUnreadable indicates the file could not be opened or read
	KindUnreadable Kind = "UNREADABLE_FILE"
	// KindBinary indicates the content is not valid UTF-8 text
	KindBinary Kind = "BINARY_FILE"
	// KindIgnoredExtension indicates the extension is on the ignore-list
	KindIgnoredExtension Kind = "IGNORED_EXTENSION"
)

var (
	ErrUnreadable       = errors.New("file is unreadable")
	ErrBinary           = errors.New("file is not text")
	ErrIgnoredExtension = errors.New("file extension is ignored")
)

// FileError reports why a single file was skipped. It never aborts a scan.
type FileError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind
func (e *FileError) Is(target error) bool {
	switch e.Kind {
	case KindUnreadable:
		return target == ErrUnreadable
	case KindBinary:
		return target == ErrBinary
	case KindIgnoredExtension:
		return target == ErrIgnoredExtension
	}
	return false
}

// ReadText reads the file at path and checks that it decodes as UTF-8
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Kind: KindUnreadable, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileError{Path: path, Kind: KindBinary}
	}
	return string(data), nil
}
