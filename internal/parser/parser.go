package parser

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("decode utf-8: invalid byte sequence")

// CheckUTF8 rejects input that is not valid UTF-8. Inputs are never
// transcoded or repaired.
func CheckUTF8(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	return nil
}

// Source converts raw input bytes into HTML markup.
type Source interface {
	ToHTML(src []byte) ([]byte, error)
}

// MarkdownExtensions lists extensions rendered through goldmark before parsing.
var MarkdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// ForFile returns the Source for a filename. Anything that is not Markdown
// is treated as HTML.
func ForFile(filename string) Source {
	ext := strings.ToLower(filepath.Ext(filename))
	if MarkdownExtensions[ext] {
		return &MarkdownSource{}
	}
	return &HTMLSource{}
}

// HTMLSource passes markup through unchanged.
type HTMLSource struct{}

func (s *HTMLSource) ToHTML(src []byte) ([]byte, error) {
	return src, nil
}
