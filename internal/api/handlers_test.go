package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/normalize"
	"resume-portfolio/internal/resume"
	"resume-portfolio/internal/site"
)

type stubParser struct {
	doc   *resume.Document
	err   error
	calls int
}

func (p *stubParser) ParseFile(filename string, reader io.Reader) (*resume.Document, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.doc, nil
}

type stubExtractor struct {
	candidate *llm.Candidate
	err       error
	calls     int
}

func (e *stubExtractor) Extract(ctx context.Context, resumeText string) (*llm.Candidate, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.candidate, nil
}

type stubEditor struct {
	out   string
	err   error
	calls int
}

func (e *stubEditor) EditComponent(ctx context.Context, fragmentHTML, instructions, componentKind string) (string, error) {
	if strings.TrimSpace(fragmentHTML) == "" ||
		strings.TrimSpace(instructions) == "" ||
		strings.TrimSpace(componentKind) == "" {
		return "", llm.ErrMissingInput
	}
	e.calls++
	if e.err != nil {
		return "", e.err
	}
	return e.out, nil
}

func newTestRouter(t *testing.T, parser ResumeParser, extractor Extractor, editor Editor) http.Handler {
	t.Helper()
	generator, err := site.NewGenerator(t.TempDir())
	require.NoError(t, err)
	return NewRouter(NewAPI(parser, extractor, editor, generator))
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func janeDoe() *llm.Candidate {
	return &llm.Candidate{
		Name: "Jane Doe",
		Education: []llm.EducationEntry{
			{InstituteName: "State University", DegreeName: "BSc Physics", Marks: "8.5 CGPA"},
		},
		Skills: []string{"Go", "Rust"},
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
}

func TestResumeEndToEnd(t *testing.T) {
	parser := &stubParser{doc: &resume.Document{
		Filename: "jane.pdf",
		FileType: ".pdf",
		Text:     "Jane Doe, BSc Physics, Skills: Go, Rust",
	}}
	extractor := &stubExtractor{candidate: janeDoe()}
	router := newTestRouter(t, parser, extractor, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "jane.pdf", []byte("%PDF-1.4 fake")))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, extractor.calls)

	body := decodeBody(t, rec)
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, []interface{}{"Go", "Rust"}, body["skills"])

	education, ok := body["education"].([]interface{})
	require.True(t, ok)
	require.Len(t, education, 1)
	entry := education[0].(map[string]interface{})
	assert.Equal(t, "State University", entry["Institute_name"])
	assert.Equal(t, "BSc Physics", entry["Degree_name"])
	assert.Equal(t, "8.5 CGPA", entry["Marks"])
}

func TestResumeNoFile(t *testing.T) {
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, &stubEditor{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/resume", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "no file")
}

func TestResumeRejectsNonPDF(t *testing.T) {
	parser := &stubParser{}
	router := newTestRouter(t, parser, &stubExtractor{}, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "jane.docx", []byte("not a pdf")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, parser.calls, "non-PDF uploads must be rejected before parsing")
}

func TestResumeExtractionFailure(t *testing.T) {
	parser := &stubParser{doc: &resume.Document{Filename: "jane.pdf", Text: "some text"}}
	extractor := &stubExtractor{err: errors.New("Groq API status 429")}
	router := newTestRouter(t, parser, extractor, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "jane.pdf", []byte("%PDF-1.4 fake")))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "429")
}

func TestResumeExtractorNotConfigured(t *testing.T) {
	parser := &stubParser{doc: &resume.Document{Filename: "jane.pdf", Text: "some text"}}
	router := newTestRouter(t, parser, nil, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "jane.pdf", []byte("%PDF-1.4 fake")))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGeneratePreviewDownloadFlow(t *testing.T) {
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, &stubEditor{})

	view := normalize.Normalize(janeDoe())
	payload, err := json.Marshal(map[string]interface{}{"data": view, "style": "futuristic"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-website", bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	id, ok := body["website_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	assert.Equal(t, "/preview/"+id, body["preview_url"])
	assert.Equal(t, "/download/"+id, body["download_url"])

	// Preview serves the stored markup verbatim.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")

	// Download returns a zip holding exactly the three artifacts.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))

	reader, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 3)
}

func TestPreviewUnknownID(t *testing.T) {
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview/00000000-0000-0000-0000-000000000000", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/not-a-uuid", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateWebsiteRejectsBadBody(t *testing.T) {
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, &stubEditor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-website", strings.NewReader("{not json")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-website", strings.NewReader(`{"style":"playful"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "missing resume data")
}

func TestModifyComponent(t *testing.T) {
	editor := &stubEditor{out: `<span class="skill-tag" data-component="skill-tag" style="color:blue">Go</span>`}
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, editor)

	payload := `{"component_html":"<span data-component=\"skill-tag\">Go</span>","instructions":"make it blue","component_type":"skill-tag"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/modify-component", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, editor.calls)
	assert.Equal(t, editor.out, decodeBody(t, rec)["modified_html"])
}

func TestModifyComponentMissingInput(t *testing.T) {
	editor := &stubEditor{out: "irrelevant"}
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, editor)

	payload := `{"component_html":"","instructions":"make it blue","component_type":"skill-tag"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/modify-component", strings.NewReader(payload)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, editor.calls, "missing input must not reach the editing model")
}

func TestModifyComponentEditorFailure(t *testing.T) {
	editor := &stubEditor{err: errors.New("Gemini unavailable")}
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, editor)

	payload := `{"component_html":"<span>Go</span>","instructions":"make it blue","component_type":"skill-tag"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/modify-component", strings.NewReader(payload)))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "Gemini unavailable")
}

func TestModifyComponentEditorNotConfigured(t *testing.T) {
	router := newTestRouter(t, &stubParser{}, &stubExtractor{}, nil)

	payload := `{"component_html":"<span>Go</span>","instructions":"make it blue","component_type":"skill-tag"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/modify-component", strings.NewReader(payload)))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
