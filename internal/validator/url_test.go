package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "HTTPS URL", input: "https://example.com", expected: true},
		{name: "HTTP URL with path", input: "http://example.com/path/to/resource", expected: true},
		{name: "URL with query params", input: "https://example.com?param=value&other=test", expected: true},
		{name: "URL with port", input: "http://localhost:8080/abc", expected: true},
		{name: "URL with unicode", input: "https://example.com/путь", expected: true},
		{name: "Non-HTTP scheme", input: "ftp://files.example.com/file.txt", expected: true},
		{name: "Not a URL", input: "not-a-url", expected: false},
		{name: "No scheme", input: "example.com", expected: false},
		{name: "No host", input: "https://", expected: false},
		{name: "Incomplete URL", input: "http:", expected: false},
		{name: "Only path", input: "/path/to/resource", expected: false},
		{name: "Empty string", input: "", expected: false},
		{name: "Spaces", input: "not a url at all", expected: false},
		{name: "Invalid escape", input: "http://example.com/%zz", expected: false},
		{name: "Control character", input: "http://example.com/\x7f", expected: false},
		{name: "Missing scheme with slashes", input: "//example.com", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidURL(tt.input))
		})
	}
}

func TestIsValidURL_DoesNotPanic(t *testing.T) {
	inputs := []string{
		"http://[::1",
		"http://%41:8080/",
		strings.Repeat("%", 1000),
		"::::",
		"\x00",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_ = IsValidURL(input)
		})
	}
}
