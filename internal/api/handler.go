package api

import (
	"context"
	"io"

	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/resume"
	"resume-portfolio/internal/site"
)

// ResumeParser extracts text from an uploaded resume file.
type ResumeParser interface {
	ParseFile(filename string, reader io.Reader) (*resume.Document, error)
}

// Extractor turns resume text into a validated candidate record. Implemented
// by llm.Service; handlers only see this interface so tests can stub the
// remote model.
type Extractor interface {
	Extract(ctx context.Context, resumeText string) (*llm.Candidate, error)
}

// Editor rewrites one rendered component per free-text instructions.
// Implemented by llm.Editor.
type Editor interface {
	EditComponent(ctx context.Context, fragmentHTML, instructions, componentKind string) (string, error)
}

type API struct {
	parser    ResumeParser
	extractor Extractor
	editor    Editor
	generator *site.Generator
}

// NewAPI wires the handlers. extractor and editor may be nil when the
// corresponding provider credential is absent; dependent endpoints then fail
// at call time.
func NewAPI(parser ResumeParser, extractor Extractor, editor Editor, generator *site.Generator) *API {
	return &API{
		parser:    parser,
		extractor: extractor,
		editor:    editor,
		generator: generator,
	}
}
