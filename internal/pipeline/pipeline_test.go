package pipeline

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/htmlextract/internal/doctree"
	"github.com/dgallion1/htmlextract/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func assertNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected no file at %s", path)
}

func TestTextExtractor_WritesVisibleText(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<style>body{color:red}</style><p>Visible text</p>`)
	out := filepath.Join(dir, "extracted_content.txt")

	res, err := NewTextExtractor(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out)
	require.NoError(t, err)
	assert.Equal(t, len("Visible text"), res.Bytes)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Visible text", string(got))
}

func TestTextExtractor_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "extracted_content.txt")

	_, err := NewTextExtractor(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(filepath.Join(dir, "nope.html"), out)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assertNoFile(t, out)
}

func TestTextExtractor_InputIsDirectory(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "extracted_content.txt")

	_, err := NewTextExtractor(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(dir, out)
	require.Error(t, err)
	assert.Equal(t, KindRead, KindOf(err))
	assertNoFile(t, out)
}

func TestTextExtractor_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<p>x</p>`)
	out := filepath.Join(dir, "missing", "out.txt")

	_, err := NewTextExtractor(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out)
	require.Error(t, err)
	assert.Equal(t, KindWrite, KindOf(err))

	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, out, pe.Path)
}

func TestTextExtractor_Idempotent(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", "<html><head><title>T</title></head><body><h1>A</h1>\n<p>b</p></body></html>")
	out := filepath.Join(dir, "out.txt")
	ex := NewTextExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := ex.Run(in, out)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = ex.Run(in, out)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSectionParser_WritesSections(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<h2>Intro</h2><p>Hello</p><h3>Sub</h3><p>World</p>`)
	out := filepath.Join(dir, "doc_sections.json")

	res, err := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out, SectionOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sections)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got []doctree.Section
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []doctree.Section{
		{Type: "h2", Title: "Intro", Content: []string{"<p>Hello</p>"}},
		{Type: "h3", Title: "Sub", Content: []string{"<p>World</p>"}},
	}, got)
}

func TestSectionParser_NoSections(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<p>No headings here.</p>`)
	out := filepath.Join(dir, "doc_sections.json")

	res, err := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out, SectionOptions{})
	assert.ErrorIs(t, err, ErrNoSections)
	assert.Zero(t, KindOf(err))
	assert.Zero(t, res.Sections)
	assertNoFile(t, out)
}

func TestSectionParser_NoSectionsKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<h1>A</h1><h2>B</h2>`)
	out := writeInput(t, dir, "doc_sections.json", "previous")

	_, err := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out, SectionOptions{})
	require.ErrorIs(t, err, ErrNoSections)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
}

func TestSectionParser_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "doc_sections.json")

	_, err := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(filepath.Join(dir, "..", "absent.html"), out, SectionOptions{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assertNoFile(t, out)
}

func TestSectionParser_Idempotent(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<h1>Überblick</h1><p>ä</p><ul><li>x</li></ul><h2>Next</h2><table><tr><td>1</td></tr></table>`)
	out := filepath.Join(dir, "doc_sections.json")
	p := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.Run(in, out, SectionOptions{})
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = p.Run(in, out, SectionOptions{})
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "Überblick")
}

func TestSectionParser_Nested(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", `<h2>Intro</h2><p>Hello</p><h3>Sub</h3><p>World</p>`)
	out := filepath.Join(dir, "outline.json")

	_, err := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out, SectionOptions{Nested: true})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got []*doctree.Node
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"<p>Hello</p>"}, got[0].Content)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "Sub", got[0].Children[0].Title)
}

func TestSectionParser_MarkdownInputYAMLOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "guide.md", "# Guide\n\nRead me.\n")
	out := filepath.Join(dir, "doc_sections.yaml")

	res, err := NewSectionParser(slog.New(slog.NewTextHandler(io.Discard, nil))).Run(in, out, SectionOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sections)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: h1")
	assert.Contains(t, string(data), "title: Guide")
	assert.Contains(t, string(data), "<p>Read me.</p>")
}

func TestError_Format(t *testing.T) {
	err := &Error{Kind: KindParse, Path: "doc.html", Err: errors.New("boom")}
	assert.Equal(t, "parse doc.html: boom", err.Error())
	assert.Equal(t, "boom", errors.Unwrap(err).Error())
}

func TestRunners_RejectInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "doc.html", "<h1>T\xff</h1><p>caf\xe9</p>")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	textOut := filepath.Join(dir, "extracted_content.txt")
	_, err := NewTextExtractor(log).Run(in, textOut)
	require.Error(t, err)
	assert.Equal(t, KindRead, KindOf(err))
	assert.ErrorIs(t, err, parser.ErrInvalidUTF8)
	assertNoFile(t, textOut)

	sectionsOut := filepath.Join(dir, "doc_sections.json")
	_, err = NewSectionParser(log).Run(in, sectionsOut, SectionOptions{})
	require.Error(t, err)
	assert.Equal(t, KindRead, KindOf(err))
	assert.ErrorIs(t, err, parser.ErrInvalidUTF8)
	assertNoFile(t, sectionsOut)
}
