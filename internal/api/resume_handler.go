package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/normalize"
)

// ResumeHandler handles resume uploads and extraction
// @Summary Upload and parse a resume
// @Description Upload a PDF resume, extract its text, and return the normalized candidate record
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF)"
// @Success 200 {object} normalize.View
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /resume [post]
func (a *API) ResumeHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "invalid file type, only PDF files are allowed")
		return
	}

	doc, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse resume: %v", err))
		return
	}

	log.Printf("Resume parsed: %s (%d bytes text)", doc.Filename, len(doc.Text))

	if a.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "resume extraction is not configured")
		return
	}

	candidate, err := a.extractor.Extract(r.Context(), doc.Text)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Transport and schema failures both surface the causing message.
		writeError(w, http.StatusBadGateway, fmt.Sprintf("extraction failed: %v", err))
		return
	}

	view := normalize.Normalize(candidate)

	log.Printf("Extracted candidate %q in %dms", view.Name, time.Since(startTime).Milliseconds())
	writeJSON(w, http.StatusOK, view)
}
