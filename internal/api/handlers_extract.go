package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/dgallion1/htmlextract/internal/doctree"
	"github.com/dgallion1/htmlextract/internal/output"
	"github.com/dgallion1/htmlextract/internal/parser"
)

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	name, markup, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	text, err := parser.ExtractText(markup)
	if err != nil {
		s.log.Warn("text extraction failed", "filename", name, "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, text)
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	name, markup, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	sections, err := parser.ParseSections(markup)
	if err != nil {
		s.log.Warn("section parse failed", "filename", name, "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if len(sections) == 0 {
		jsonError(w, "no content sections found", http.StatusUnprocessableEntity)
		return
	}

	var doc any = sections
	if r.FormValue("nested") == "true" {
		doc = doctree.Nest(sections)
	}

	body, err := output.Encode("sections.json", doc)
	if err != nil {
		jsonError(w, "failed to encode sections", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// readUpload pulls the multipart "file" field and converts it to HTML.
// On failure it has already written the response.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer file.Close()

	name := filepath.Base(header.Filename)

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return "", nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return "", nil, false
	}

	if err := parser.CheckUTF8(data); err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return "", nil, false
	}

	markup, err := parser.ForFile(name).ToHTML(data)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return "", nil, false
	}
	return name, markup, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
