package pipeline

import (
	"log/slog"

	"github.com/dgallion1/htmlextract/internal/output"
	"github.com/dgallion1/htmlextract/internal/parser"
)

// TextExtractor writes the plain text of one document to a file.
type TextExtractor struct {
	log *slog.Logger
}

func NewTextExtractor(log *slog.Logger) *TextExtractor {
	return &TextExtractor{log: log}
}

// TextResult describes a completed extraction.
type TextResult struct {
	Input  string
	Output string
	Bytes  int
}

// Run reads in, strips markup and writes the text to out. Nothing is
// written unless every step succeeds.
func (e *TextExtractor) Run(in, out string) (TextResult, error) {
	log := e.log.With("input", in, "output", out)

	src, err := readInput(in)
	if err != nil {
		log.Debug("read failed", "error", err)
		return TextResult{}, err
	}

	markup, err := parser.ForFile(in).ToHTML(src)
	if err != nil {
		return TextResult{}, &Error{Kind: KindParse, Path: in, Err: err}
	}

	text, err := parser.ExtractText(markup)
	if err != nil {
		return TextResult{}, &Error{Kind: KindParse, Path: in, Err: err}
	}

	if err := output.WriteFile(out, []byte(text)); err != nil {
		return TextResult{}, &Error{Kind: KindWrite, Path: out, Err: err}
	}

	log.Info("text extracted", "input_bytes", len(src), "output_bytes", len(text))
	return TextResult{Input: in, Output: out, Bytes: len(text)}, nil
}
