// Package resume handles uploaded resume files: each upload is written under
// a unique name in the uploads directory, its text is extracted, and the file
// is removed again before the handler responds, success or failure.
package resume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
)

type Parser struct {
	uploadsDir string
}

// Document is the text extracted from one uploaded resume.
type Document struct {
	Filename string
	FileType string
	FileSize int64
	Text     string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{
		uploadsDir: uploadsDir,
	}
}

// ParseFile persists the upload under a unique temporary name, extracts its
// text, and removes the temporary file regardless of outcome.
func (p *Parser) ParseFile(filename string, reader io.Reader) (*Document, error) {
	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	filePath := filepath.Join(p.uploadsDir, uuid.NewString()+"_"+filepath.Base(filename))
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(filePath)

	size, err := io.Copy(file, reader)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	if size == 0 {
		return nil, fmt.Errorf("uploaded file is empty")
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	var text string

	switch fileType {
	case ".pdf":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("could not extract text from document")
	}

	return &Document{
		Filename: filename,
		FileType: fileType,
		FileSize: size,
		Text:     text,
	}, nil
}
