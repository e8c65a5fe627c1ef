package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/normalize"
	"resume-portfolio/internal/site"
)

type generateRequest struct {
	Data  *normalize.View `json:"data"`
	Style string          `json:"style"`
}

type generateResponse struct {
	WebsiteID   string `json:"website_id"`
	PreviewURL  string `json:"preview_url"`
	DownloadURL string `json:"download_url"`
}

// GenerateWebsiteHandler generates a portfolio website
// @Summary Generate a portfolio website
// @Description Generate a themed static website from a normalized candidate record
// @Tags website
// @Accept json
// @Produce json
// @Param request body generateRequest true "Candidate data and optional style"
// @Success 200 {object} generateResponse
// @Failure 400 {object} map[string]string
// @Router /generate-website [post]
func (a *API) GenerateWebsiteHandler(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Data == nil || strings.TrimSpace(req.Data.Name) == "" {
		writeError(w, http.StatusBadRequest, "missing resume data")
		return
	}

	generated, err := a.generator.Generate(req.Data, req.Style)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("website generation failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		WebsiteID:   generated.ID,
		PreviewURL:  "/preview/" + generated.ID,
		DownloadURL: "/download/" + generated.ID,
	})
}

type modifyRequest struct {
	ComponentHTML string `json:"component_html"`
	Instructions  string `json:"instructions"`
	ComponentType string `json:"component_type"`
}

// ModifyComponentHandler edits one rendered component
// @Summary Edit a website component
// @Description Send one rendered HTML fragment plus instructions to the editing model and return the replacement markup
// @Tags website
// @Accept json
// @Produce json
// @Param request body modifyRequest true "Component markup, instructions, and component type"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /modify-component [post]
func (a *API) ModifyComponentHandler(w http.ResponseWriter, r *http.Request) {
	var req modifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if a.editor == nil {
		writeError(w, http.StatusServiceUnavailable, "component editing is not configured")
		return
	}

	modified, err := a.editor.EditComponent(r.Context(), req.ComponentHTML, req.Instructions, req.ComponentType)
	if err != nil {
		if errors.Is(err, llm.ErrMissingInput) {
			writeError(w, http.StatusBadRequest, "component_html, instructions and component_type are required")
			return
		}
		writeError(w, http.StatusBadGateway, fmt.Sprintf("component edit failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"modified_html": modified})
}

// PreviewHandler serves a generated site's markup
// @Summary Preview a generated website
// @Produce html
// @Param website_id path string true "Website identifier"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /preview/{website_id} [get]
func (a *API) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("website_id")
	markup, err := a.generator.Markup(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "website not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(markup); err != nil {
		log.Printf("ERROR: Failed to write preview for site %s: %v", id, err)
	}
}

// DownloadHandler streams a generated site as a zip archive
// @Summary Download a generated website
// @Produce application/zip
// @Param website_id path string true "Website identifier"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /download/{website_id} [get]
func (a *API) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("website_id")
	dir, err := a.generator.SiteDir(id)
	if err != nil {
		if errors.Is(err, site.ErrUnknownSite) {
			writeError(w, http.StatusNotFound, "website not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to resolve website")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "portfolio-"+id+".zip"))
	if err := site.WriteArchive(w, dir); err != nil {
		// Headers are already out; the broken archive is all we can signal.
		log.Printf("ERROR: Failed to stream archive for site %s: %v", id, err)
	}
}
