package llm

import "errors"

var (
	// ErrEmptyInput is returned when extraction is asked to parse empty text.
	ErrEmptyInput = errors.New("empty resume text")

	// ErrMissingInput is returned by EditComponent when any of its inputs is empty.
	ErrMissingInput = errors.New("missing input")

	// ErrTransport wraps network/auth/rate-limit failures talking to a model provider.
	ErrTransport = errors.New("model transport failure")

	// ErrSchema wraps model responses that do not validate against the candidate schema.
	ErrSchema = errors.New("model response failed schema validation")
)
