package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": "b"}`, `{"a": "b"}`},
		{"plain fences", "```\n{\"a\": \"b\"}\n```", `{"a": "b"}`},
		{"json fences", "```json\n{\"a\": \"b\"}\n```", `{"a": "b"}`},
		{"surrounding whitespace", "  \n```json\n{}\n```\n ", "{}"},
		{"unterminated fence", "```json\n{\"a\": \"b\"}", `{"a": "b"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.in))
		})
	}
}
