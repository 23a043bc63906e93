package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain digits", input: "5551234567", expected: "5551234567"},
		{name: "formatted number", input: "(555) 123-4567", expected: "5551234567"},
		{name: "with spaces and dashes", input: "555 123-4567", expected: "5551234567"},
		{name: "no digits", input: "abc", expected: ""},
		{name: "non-ascii digits dropped", input: "٥٥٥١٢٣٤٥٦٧", expected: ""},
		{name: "mixed scripts keep ascii only", input: "555١٢٣4567", expected: "5554567"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Digits(tt.input))
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain ten digits", input: "5551234567", expected: "(555) 123-4567"},
		{name: "already formatted", input: "(555) 123-4567", expected: "(555) 123-4567"},
		{name: "with separators", input: "555-123-4567", expected: "(555) 123-4567"},
		{name: "too short passes through", input: "12345", expected: "12345"},
		{name: "too long passes through", input: "15551234567", expected: "15551234567"},
		{name: "non-ascii digits pass through", input: "٥٥٥١٢٣٤٥٦٧", expected: "٥٥٥١٢٣٤٥٦٧"},
		{name: "empty passes through", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhoneNumber(tt.input))
		})
	}
}
