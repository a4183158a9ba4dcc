package parser

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownSource renders Markdown to HTML using goldmark.
// GFM is enabled so pipe tables come out as <table> elements.
type MarkdownSource struct{}

func (s *MarkdownSource) ToHTML(src []byte) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
