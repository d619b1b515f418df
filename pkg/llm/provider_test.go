package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"nil", nil, ""},
		{"plain string", "hello", "hello"},
		{"list of strings", []interface{}{"a", "b"}, "a\nb"},
		{"text key", map[string]interface{}{"text": "hi"}, "hi"},
		{"content key", map[string]interface{}{"content": "hi"}, "hi"},
		{
			"nested parts",
			map[string]interface{}{"parts": []interface{}{
				map[string]interface{}{"text": "first"},
				map[string]interface{}{"text": "second"},
			}},
			"first\nsecond",
		},
		{"number falls back to sprint", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoerceText(tt.input))
		})
	}
}
