package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"resume-portfolio/pkg/httpclient"
)

const groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

// Service is the resume extraction client. It issues one Groq chat-completion
// request per call, constrained to JSON output, and validates the response
// against CandidateSchema before deserializing it.
type Service struct {
	apiKey  string
	model   string
	baseURL string
	client  *httpclient.Client
}

func NewService(apiKey, model string) *Service {
	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: groqEndpoint,
		client:  httpclient.New(120 * time.Second),
	}
}

// Extract parses resume text into a validated Candidate record. Empty input
// fails with ErrEmptyInput before any network call. Transport failures wrap
// ErrTransport; responses that do not conform to the schema wrap ErrSchema
// with the validation detail preserved.
func (s *Service) Extract(ctx context.Context, resumeText string) (*Candidate, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyInput
	}

	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role": "system",
				"content": "You are a resume parser that extracts information from resume.\n" +
					" The JSON object must use the schema: " + CandidateSchema,
			},
			{
				"role":    "user",
				"content": "use this " + resumeText,
			},
		},
		"temperature": 0,
		"stream":      false,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	log.Printf("Groq extraction request took %v", time.Since(startTime))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: Groq API status %d", ErrTransport, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("%w: Groq error: %s", ErrTransport, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response from Groq", ErrTransport)
	}

	return parseCandidate(result.Choices[0].Message.Content)
}

// parseCandidate validates raw model output against CandidateSchema and
// unmarshals it. Extra fields from the model are ignored.
func parseCandidate(content string) (*Candidate, error) {
	validation, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(CandidateSchema),
		gojsonschema.NewStringLoader(content),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
	}

	var candidate Candidate
	if err := json.Unmarshal([]byte(content), &candidate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return &candidate, nil
}
