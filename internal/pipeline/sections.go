package pipeline

import (
	"log/slog"

	"github.com/dgallion1/htmlextract/internal/doctree"
	"github.com/dgallion1/htmlextract/internal/output"
	"github.com/dgallion1/htmlextract/internal/parser"
)

// SectionOptions controls how sections are written.
type SectionOptions struct {
	// Nested writes a heading outline instead of the flat list.
	Nested bool
}

// SectionParser writes the heading sections of one document to a file.
type SectionParser struct {
	log *slog.Logger
}

func NewSectionParser(log *slog.Logger) *SectionParser {
	return &SectionParser{log: log}
}

// SectionResult describes a completed parse.
type SectionResult struct {
	Input    string
	Output   string
	Sections int
}

// Run reads in, collects sections and writes them to out. It returns
// ErrNoSections without touching out when nothing qualifies.
func (p *SectionParser) Run(in, out string, opts SectionOptions) (SectionResult, error) {
	log := p.log.With("input", in, "output", out)

	src, err := readInput(in)
	if err != nil {
		log.Debug("read failed", "error", err)
		return SectionResult{}, err
	}

	markup, err := parser.ForFile(in).ToHTML(src)
	if err != nil {
		return SectionResult{}, &Error{Kind: KindParse, Path: in, Err: err}
	}

	sections, err := parser.ParseSections(markup)
	if err != nil {
		return SectionResult{}, &Error{Kind: KindParse, Path: in, Err: err}
	}
	if len(sections) == 0 {
		log.Warn("no sections with content")
		return SectionResult{Input: in, Output: out}, ErrNoSections
	}

	var doc any = sections
	if opts.Nested {
		doc = doctree.Nest(sections)
	}

	data, err := output.Encode(out, doc)
	if err != nil {
		return SectionResult{}, &Error{Kind: KindWrite, Path: out, Err: err}
	}
	if err := output.WriteFile(out, data); err != nil {
		return SectionResult{}, &Error{Kind: KindWrite, Path: out, Err: err}
	}

	log.Info("sections written", "sections", len(sections), "nested", opts.Nested)
	return SectionResult{Input: in, Output: out, Sections: len(sections)}, nil
}
