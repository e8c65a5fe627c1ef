package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// Editor rewrites one rendered portfolio component through Gemini. The
// model's output is trusted as opaque markup; the only post-processing is
// stripping a wrapping code fence.
type Editor struct {
	client *genai.Client
	model  string
}

func NewEditor(ctx context.Context, apiKey, model string) (*Editor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Editor{client: client, model: model}, nil
}

// EditComponent sends one HTML fragment plus free-text instructions to the
// model and returns the replacement markup. All three inputs must be
// non-empty; otherwise it fails with ErrMissingInput before any remote call.
func (e *Editor) EditComponent(ctx context.Context, fragmentHTML, instructions, componentKind string) (string, error) {
	if strings.TrimSpace(fragmentHTML) == "" ||
		strings.TrimSpace(instructions) == "" ||
		strings.TrimSpace(componentKind) == "" {
		return "", ErrMissingInput
	}

	prompt := fmt.Sprintf(`You are an expert web developer editing one component of a portfolio website.

Component type: %s

Current HTML:
%s

Instructions: %s

Apply the instructions to the HTML above and return ONLY the complete modified HTML for this component. Keep the data-component attribute unchanged. Do not include explanations, markdown, or text before or after the HTML.`,
		componentKind, fragmentHTML, instructions)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	edited := stripFences(resp.Text())
	if edited == "" {
		return "", fmt.Errorf("%w: empty response from Gemini", ErrTransport)
	}

	log.Printf("Component edit produced %d bytes of markup", len(edited))
	return edited, nil
}

// stripFences removes a wrapping markdown code fence when the model ignores
// the plain-output instruction.
func stripFences(input string) string {
	clean := strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(clean, "```html"):
		clean = strings.TrimPrefix(clean, "```html")
	case strings.HasPrefix(clean, "```"):
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
