package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dgallion1/htmlextract/internal/parser"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindNotFound Kind = iota + 1 // input file does not exist
	KindRead                     // input exists but could not be read
	KindParse                    // markup could not be parsed or rendered
	KindWrite                    // output could not be encoded or written
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	case KindWrite:
		return "write"
	}
	return "unknown"
}

// Error is the only failure type returned by the runners.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrNoSections means the document had no heading with content. Nothing is written.
var ErrNoSections = errors.New("no content sections found")

// KindOf reports the Kind of err, or 0 if err is not a pipeline Error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// IsNotFound reports whether err is a missing-input failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, &Error{Kind: KindRead, Path: path, Err: err}
	}
	if err := parser.CheckUTF8(data); err != nil {
		return nil, &Error{Kind: KindRead, Path: path, Err: err}
	}
	return data, nil
}
