package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditComponentMissingInput(t *testing.T) {
	// A zero-value editor has no client; reaching the remote call would panic,
	// so these cases double as proof that no network call is attempted.
	editor := &Editor{}

	cases := []struct {
		name                         string
		fragment, instructions, kind string
	}{
		{"empty fragment", "", "make it blue", "skill-tag"},
		{"empty instructions", "<span>Go</span>", "", "skill-tag"},
		{"empty kind", "<span>Go</span>", "make it blue", ""},
		{"whitespace only", "  ", "\t", "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := editor.EditComponent(context.Background(), tc.fragment, tc.instructions, tc.kind)
			assert.ErrorIs(t, err, ErrMissingInput)
		})
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `<div class="card">x</div>`, `<div class="card">x</div>`},
		{"html fence", "```html\n<div>x</div>\n```", "<div>x</div>"},
		{"bare fence", "```\n<div>x</div>\n```", "<div>x</div>"},
		{"surrounding whitespace", "  \n```html\n<div>x</div>\n```\n  ", "<div>x</div>"},
		{"no closing fence", "```html\n<div>x</div>", "<div>x</div>"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripFences(tc.input))
		})
	}
}
